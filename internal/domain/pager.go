package domain

import "github.com/google/uuid"

// Pager links a block to its neighbours in reading order.
type Pager struct {
	Prev *PagerLink `json:"prev,omitempty"`
	Next *PagerLink `json:"next,omitempty"`
}

// PagerLink identifies a neighbouring block.
type PagerLink struct {
	LessonSlug string    `json:"lessonSlug"`
	BlockSlug  string    `json:"blockSlug"`
	Title      string    `json:"title"`
	Type       BlockType `json:"type"`
}

// BuildPager walks lessons in order. Next is the following block of the same
// lesson, else the first block of the next lesson that has any; Prev mirrors it.
// lessons and each block list must already be sorted by Order.
func BuildPager(lessons []Lesson, blocks map[uuid.UUID][]Block, current Block) Pager {
	type pos struct {
		lesson Lesson
		block  Block
	}
	var flat []pos
	at := -1
	for _, l := range lessons {
		for _, b := range blocks[l.ID] {
			if b.ID == current.ID {
				at = len(flat)
			}
			flat = append(flat, pos{lesson: l, block: b})
		}
	}

	var p Pager
	if at < 0 {
		return p
	}
	link := func(x pos) *PagerLink {
		return &PagerLink{LessonSlug: x.lesson.Slug, BlockSlug: x.block.Slug, Title: x.block.Title, Type: x.block.Type}
	}
	if at > 0 {
		p.Prev = link(flat[at-1])
	}
	if at+1 < len(flat) {
		p.Next = link(flat[at+1])
	}
	return p
}
