package domain

import (
	"slices"
	"strings"
)

// Quiz is a tagged variant; Type selects which fields are used and how an
// answer is checked.
type Quiz struct {
	Type          QuizType    `json:"type"`
	Question      string      `json:"question"`
	Options       []string    `json:"options,omitempty"`
	CorrectAnswer string      `json:"correctAnswer,omitempty"`
	AudioSrc      string      `json:"audioSrc,omitempty"`
	Pairs         []MatchPair `json:"pairs,omitempty"`
	Scrambled     []string    `json:"scrambled,omitempty"`
	CorrectOrder  []string    `json:"correctOrder,omitempty"`
}

// MatchPair is one prompt/answer pair of a match quiz.
type MatchPair struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

// QuizAnswer is a learner's submission. Choice serves multiple-choice, audio
// and fill-in-the-blank; Pairs maps prompt to answer for match; Order is the
// arranged sentence for sentence-order.
type QuizAnswer struct {
	Choice string            `json:"choice,omitempty"`
	Pairs  map[string]string `json:"pairs,omitempty"`
	Order  []string          `json:"order,omitempty"`
}

// PublicQuiz is the reader view of a quiz with every answer removed.
type PublicQuiz struct {
	Type      QuizType `json:"type"`
	Question  string   `json:"question"`
	Options   []string `json:"options,omitempty"`
	AudioSrc  string   `json:"audioSrc,omitempty"`
	Prompts   []string `json:"prompts,omitempty"`
	Answers   []string `json:"answers,omitempty"`
	Scrambled []string `json:"scrambled,omitempty"`
}

// Check reports whether the answer is correct.
func (q Quiz) Check(a QuizAnswer) bool {
	switch q.Type {
	case QuizMultipleChoice, QuizAudio:
		return a.Choice == q.CorrectAnswer
	case QuizFillInTheBlank:
		return strings.EqualFold(strings.TrimSpace(a.Choice), strings.TrimSpace(q.CorrectAnswer))
	case QuizMatch:
		if len(a.Pairs) != len(q.Pairs) {
			return false
		}
		for _, p := range q.Pairs {
			if a.Pairs[p.Prompt] != p.Answer {
				return false
			}
		}
		return true
	case QuizSentenceOrder:
		return slices.Equal(a.Order, q.CorrectOrder)
	}
	return false
}

// Public strips the answers. Match answers are listed sorted so their
// position reveals nothing.
func (q Quiz) Public() PublicQuiz {
	p := PublicQuiz{Type: q.Type, Question: q.Question}
	switch q.Type {
	case QuizMultipleChoice:
		p.Options = slices.Clone(q.Options)
	case QuizAudio:
		p.Options = slices.Clone(q.Options)
		p.AudioSrc = q.AudioSrc
	case QuizMatch:
		for _, pair := range q.Pairs {
			p.Prompts = append(p.Prompts, pair.Prompt)
			p.Answers = append(p.Answers, pair.Answer)
		}
		slices.Sort(p.Answers)
	case QuizSentenceOrder:
		p.Scrambled = slices.Clone(q.Scrambled)
	}
	return p
}

// Validate returns the field errors of a quiz, nil when it is well-formed.
func (q Quiz) Validate() []FieldError {
	var errs []FieldError
	if !q.Type.IsValid() {
		return append(errs, FieldError{Field: "type", Message: "unknown quiz type"})
	}
	if strings.TrimSpace(q.Question) == "" {
		errs = append(errs, FieldError{Field: "question", Message: "required"})
	}

	switch q.Type {
	case QuizMultipleChoice, QuizAudio:
		if len(q.Options) < 2 {
			errs = append(errs, FieldError{Field: "options", Message: "at least two options required"})
		}
		if !slices.Contains(q.Options, q.CorrectAnswer) {
			errs = append(errs, FieldError{Field: "correctAnswer", Message: "must be one of the options"})
		}
		if q.Type == QuizAudio && q.AudioSrc == "" {
			errs = append(errs, FieldError{Field: "audioSrc", Message: "required"})
		}
	case QuizFillInTheBlank:
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			errs = append(errs, FieldError{Field: "correctAnswer", Message: "required"})
		}
	case QuizMatch:
		if len(q.Pairs) == 0 {
			errs = append(errs, FieldError{Field: "pairs", Message: "at least one pair required"})
		}
		seen := make(map[string]bool, len(q.Pairs))
		for _, p := range q.Pairs {
			if seen[p.Prompt] {
				errs = append(errs, FieldError{Field: "pairs", Message: "duplicate prompt " + p.Prompt})
			}
			seen[p.Prompt] = true
		}
	case QuizSentenceOrder:
		if len(q.CorrectOrder) == 0 {
			errs = append(errs, FieldError{Field: "correctOrder", Message: "required"})
		}
		a, b := slices.Clone(q.Scrambled), slices.Clone(q.CorrectOrder)
		slices.Sort(a)
		slices.Sort(b)
		if !slices.Equal(a, b) {
			errs = append(errs, FieldError{Field: "scrambled", Message: "must be a permutation of correctOrder"})
		}
	}
	return errs
}
