package practice

import (
	"time"

	"github.com/nenadmarinkovic/sprachenwald/internal/config"
	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

const (
	day = 24 * time.Hour

	// A review card at least this far out with a healthy ease counts as mastered.
	masteredInterval = 21
	masteredEase     = 2.5
)

// schedule returns the card after grading it at now. It has no side effects.
func schedule(c domain.PracticeCard, grade domain.ReviewGrade, now time.Time, cfg config.PracticeConfig) domain.PracticeCard {
	var next domain.PracticeCard
	switch c.Status {
	case domain.LearningStatusLearning:
		next = scheduleLearning(c, grade, now, cfg)
	case domain.LearningStatusReview, domain.LearningStatusMastered:
		next = scheduleReview(c, grade, now, cfg)
	default:
		next = scheduleNew(c, grade, now, cfg)
	}

	next.Reviews = c.Reviews + 1
	next.LastReviewedAt = &now
	next.UpdatedAt = now
	return next
}

func scheduleNew(c domain.PracticeCard, grade domain.ReviewGrade, now time.Time, cfg config.PracticeConfig) domain.PracticeCard {
	steps := stepsOr(cfg.LearningSteps, time.Minute)
	c.EaseFactor = cfg.DefaultEaseFactor

	switch grade {
	case domain.ReviewGradeAgain:
		return learning(c, 0, now.Add(steps[0]))
	case domain.ReviewGradeHard:
		delay := steps[0]
		if len(steps) > 1 {
			delay = (steps[0] + steps[1]) / 2
		}
		return learning(c, 0, now.Add(delay))
	case domain.ReviewGradeEasy:
		return graduate(c, cfg.EasyInterval, now, cfg)
	default:
		if len(cfg.LearningSteps) > 1 {
			return learning(c, 1, now.Add(steps[1]))
		}
		return graduate(c, cfg.GraduatingInterval, now, cfg)
	}
}

// scheduleLearning walks the learning steps, or the relearning steps after a
// lapse. A lapsed card keeps its ease when it graduates again.
func scheduleLearning(c domain.PracticeCard, grade domain.ReviewGrade, now time.Time, cfg config.PracticeConfig) domain.PracticeCard {
	relearning := c.IntervalDays > 0
	steps := stepsOr(cfg.LearningSteps, time.Minute)
	if relearning {
		steps = stepsOr(cfg.RelearningSteps, time.Minute)
	}
	if !relearning {
		c.EaseFactor = cfg.DefaultEaseFactor
	}

	switch grade {
	case domain.ReviewGradeAgain:
		return learning(c, 0, now.Add(steps[0]))
	case domain.ReviewGradeHard:
		step := min(c.LearningStep, len(steps)-1)
		return learning(c, c.LearningStep, now.Add(steps[step]))
	case domain.ReviewGradeEasy:
		return graduate(c, cfg.EasyInterval, now, cfg)
	default:
		nextStep := c.LearningStep + 1
		if nextStep >= len(steps) {
			return graduate(c, cfg.GraduatingInterval, now, cfg)
		}
		return learning(c, nextStep, now.Add(steps[nextStep]))
	}
}

func scheduleReview(c domain.PracticeCard, grade domain.ReviewGrade, now time.Time, cfg config.PracticeConfig) domain.PracticeCard {
	ease := c.EaseFactor
	interval := c.IntervalDays

	switch grade {
	case domain.ReviewGradeAgain:
		c.EaseFactor = max(cfg.MinEaseFactor, ease-0.20)
		c.IntervalDays = max(1, int(float64(interval)*cfg.LapseNewInterval))
		c.Lapses++
		steps := stepsOr(cfg.RelearningSteps, 10*time.Minute)
		return learning(c, 0, now.Add(steps[0]))
	case domain.ReviewGradeHard:
		c.EaseFactor = max(cfg.MinEaseFactor, ease-0.15)
		interval = max(interval+1, int(float64(interval)*cfg.HardIntervalModifier))
	case domain.ReviewGradeEasy:
		c.EaseFactor = ease + 0.15
		interval = max(interval+1, int(float64(interval)*ease*cfg.EasyBonus*cfg.IntervalModifier))
	default:
		interval = max(interval+1, int(float64(interval)*ease*cfg.IntervalModifier))
	}

	interval = fuzz(min(interval, cfg.MaxIntervalDays))

	c.Status = domain.LearningStatusReview
	if interval >= masteredInterval && c.EaseFactor >= masteredEase {
		c.Status = domain.LearningStatusMastered
	}
	c.IntervalDays = interval
	c.LearningStep = 0
	c.NextReviewAt = now.Add(time.Duration(interval) * day)
	return c
}

func learning(c domain.PracticeCard, step int, due time.Time) domain.PracticeCard {
	c.Status = domain.LearningStatusLearning
	c.LearningStep = step
	c.NextReviewAt = due
	return c
}

func graduate(c domain.PracticeCard, intervalDays int, now time.Time, cfg config.PracticeConfig) domain.PracticeCard {
	c.Status = domain.LearningStatusReview
	c.IntervalDays = min(intervalDays, cfg.MaxIntervalDays)
	c.LearningStep = 0
	c.NextReviewAt = now.Add(time.Duration(c.IntervalDays) * day)
	return c
}

// fuzz spreads intervals of three days and more by up to 5%. It depends on
// the interval only, so equal inputs schedule equally.
func fuzz(interval int) int {
	if interval < 3 {
		return interval
	}
	spread := max(1, interval*5/100)
	return max(1, interval+interval%(spread*2+1)-spread)
}

func stepsOr(steps []time.Duration, fallback time.Duration) []time.Duration {
	if len(steps) == 0 {
		return []time.Duration{fallback}
	}
	return steps
}
