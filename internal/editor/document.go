package editor

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// MarkType names an inline annotation.
type MarkType string

const (
	MarkInteractiveWord MarkType = "interactiveWord"
	MarkLink            MarkType = "link"
	MarkBold            MarkType = "bold"
	MarkItalic          MarkType = "italic"
	MarkStrike          MarkType = "strike"
	MarkCode            MarkType = "code"
)

// rank orders marks from outermost to innermost when serialized.
func (t MarkType) rank() int {
	switch t {
	case MarkInteractiveWord:
		return 0
	case MarkLink:
		return 1
	case MarkBold:
		return 2
	case MarkItalic:
		return 3
	case MarkStrike:
		return 4
	case MarkCode:
		return 5
	}
	return 6
}

func (t MarkType) IsValid() bool {
	return t.rank() < 6
}

// Mark is an annotation instance. Attrs is meaningful only for interactive
// words, Href only for links.
type Mark struct {
	Type  MarkType
	Attrs domain.InteractiveWordSpan
	Href  string
}

// HardBreak is the rune a line break inside a paragraph is stored as.
const HardBreak = '\u2028'


// BlockTag is the element a paragraph is rendered as.
type BlockTag string

// Consecutive list items of the same kind serialize as one list. A rule
// paragraph is a horizontal rule and carries no text of its own.
const (
	TagParagraph   BlockTag = "p"
	TagHeading1    BlockTag = "h1"
	TagHeading2    BlockTag = "h2"
	TagHeading3    BlockTag = "h3"
	TagHeading4    BlockTag = "h4"
	TagHeading5    BlockTag = "h5"
	TagHeading6    BlockTag = "h6"
	TagBlockquote  BlockTag = "blockquote"
	TagBulletItem  BlockTag = "bulletItem"
	TagOrderedItem BlockTag = "orderedItem"
	TagRule        BlockTag = "hr"
)

func (t BlockTag) IsValid() bool {
	switch t {
	case TagParagraph, TagHeading1, TagHeading2, TagHeading3, TagHeading4, TagHeading5, TagHeading6,
		TagBlockquote, TagBulletItem, TagOrderedItem, TagRule:
		return true
	}
	return false
}

func (t BlockTag) isListItem() bool {
	return t == TagBulletItem || t == TagOrderedItem
}

// Range is a half-open interval of document positions.
type Range struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (r Range) Empty() bool { return r.From >= r.To }

type markSpan struct {
	from, to int
	mark     Mark
}

// Document is rich text as runes plus an interval list of marks.
// Paragraphs are separated by '\n'; blocks holds one tag per paragraph.
// Invariants kept by normalize:
//   - no mark covers a '\n'
//   - marks of the same type never overlap
//   - adjacent equal marks are merged into one span
type Document struct {
	text   []rune
	blocks []BlockTag
	marks  []markSpan
}

func newDocument() *Document {
	return &Document{blocks: []BlockTag{TagParagraph}}
}

func (d *Document) clone() *Document {
	return &Document{
		text:   slices.Clone(d.text),
		blocks: slices.Clone(d.blocks),
		marks:  slices.Clone(d.marks),
	}
}

func (d *Document) equal(o *Document) bool {
	return slices.Equal(d.text, o.text) && slices.Equal(d.blocks, o.blocks) && slices.Equal(d.marks, o.marks)
}

// Len is the length in runes; valid positions are 0..Len().
func (d *Document) Len() int { return len(d.text) }

// Text returns the plain text with '\n' between paragraphs.
func (d *Document) Text() string { return string(d.text) }

func (d *Document) textBetween(from, to int) string {
	from, to = max(from, 0), min(to, len(d.text))
	if from >= to {
		return ""
	}
	return string(d.text[from:to])
}

func (d *Document) checkRange(from, to int) error {
	if from < 0 || to > len(d.text) || from > to {
		return fmt.Errorf("range [%d,%d) outside document of length %d", from, to, len(d.text))
	}
	return nil
}

// paragraphIndex returns the index of the paragraph containing pos.
func (d *Document) paragraphIndex(pos int) int {
	n := 0
	for _, r := range d.text[:pos] {
		if r == '\n' {
			n++
		}
	}
	return n
}

// paragraphStart returns the first position of the paragraph containing pos.
func (d *Document) paragraphStart(pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if d.text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

func (d *Document) insert(pos int, s []rune) error {
	if err := d.checkRange(pos, pos); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}

	if k := strings.Count(string(s), "\n"); k > 0 {
		pi := d.paragraphIndex(pos)
		next := TagParagraph
		if d.blocks[pi].isListItem() {
			next = d.blocks[pi]
		}
		d.blocks = slices.Insert(d.blocks, pi+1, slices.Repeat([]BlockTag{next}, k)...)
	}
	d.text = slices.Insert(d.text, pos, s...)

	n := len(s)
	for i := range d.marks {
		m := &d.marks[i]
		switch {
		case m.from >= pos:
			m.from += n
			m.to += n
		case m.to > pos:
			m.to += n
		}
	}
	d.normalize()
	return nil
}

func (d *Document) delete(from, to int) error {
	if err := d.checkRange(from, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	if k := strings.Count(string(d.text[from:to]), "\n"); k > 0 {
		pi := d.paragraphIndex(from)
		d.blocks = slices.Delete(d.blocks, pi+1, pi+1+k)
	}
	d.text = slices.Delete(d.text, from, to)

	n := to - from
	mapPos := func(p int) int {
		switch {
		case p <= from:
			return p
		case p < to:
			return from
		}
		return p - n
	}
	for i := range d.marks {
		d.marks[i].from = mapPos(d.marks[i].from)
		d.marks[i].to = mapPos(d.marks[i].to)
	}
	d.normalize()
	return nil
}

// addMark replaces every mark of the same type inside [from,to) with m.
func (d *Document) addMark(from, to int, m Mark) error {
	if err := d.checkRange(from, to); err != nil {
		return err
	}
	if !m.Type.IsValid() {
		return fmt.Errorf("unknown mark type %q", m.Type)
	}
	if m.Type == MarkLink && m.Href == "" {
		return errors.New("link without href")
	}
	if from == to {
		return nil
	}
	d.cutMark(from, to, m.Type)
	d.marks = append(d.marks, markSpan{from: from, to: to, mark: m})
	d.normalize()
	return nil
}

func (d *Document) removeMark(from, to int, t MarkType) error {
	if err := d.checkRange(from, to); err != nil {
		return err
	}
	d.cutMark(from, to, t)
	d.normalize()
	return nil
}

func (d *Document) cutMark(from, to int, t MarkType) {
	out := d.marks[:0:0]
	for _, m := range d.marks {
		if m.mark.Type != t || m.to <= from || m.from >= to {
			out = append(out, m)
			continue
		}
		if m.from < from {
			out = append(out, markSpan{from: m.from, to: from, mark: m.mark})
		}
		if m.to > to {
			out = append(out, markSpan{from: to, to: m.to, mark: m.mark})
		}
	}
	d.marks = out
}

func (d *Document) setBlock(from, to int, tag BlockTag) error {
	if err := d.checkRange(from, to); err != nil {
		return err
	}
	if !tag.IsValid() {
		return fmt.Errorf("unknown block tag %q", tag)
	}
	for i := d.paragraphIndex(from); i <= d.paragraphIndex(to); i++ {
		d.blocks[i] = tag
	}
	return nil
}

// markAt returns the mark of type t covering the character at index i.
func (d *Document) markAt(i int, t MarkType) (markSpan, bool) {
	for _, m := range d.marks {
		if m.mark.Type == t && m.from <= i && i < m.to {
			return m, true
		}
	}
	return markSpan{}, false
}

// covered reports whether every non-separator character in [from,to) carries t.
func (d *Document) covered(from, to int, t MarkType) bool {
	seen := false
	for i := from; i < to; i++ {
		if d.text[i] == '\n' {
			continue
		}
		seen = true
		if _, ok := d.markAt(i, t); !ok {
			return false
		}
	}
	return seen
}

func (d *Document) normalize() {
	var split []markSpan
	for _, m := range d.marks {
		start := m.from
		for i := m.from; i < m.to; i++ {
			if d.text[i] == '\n' {
				if start < i {
					split = append(split, markSpan{from: start, to: i, mark: m.mark})
				}
				start = i + 1
			}
		}
		if start < m.to {
			split = append(split, markSpan{from: start, to: m.to, mark: m.mark})
		}
	}

	slices.SortStableFunc(split, func(a, b markSpan) int {
		if r := a.mark.Type.rank() - b.mark.Type.rank(); r != 0 {
			return r
		}
		return a.from - b.from
	})

	merged := split[:0:0]
	for _, m := range split {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.mark == m.mark && last.to >= m.from {
				last.to = max(last.to, m.to)
				continue
			}
		}
		merged = append(merged, m)
	}

	slices.SortStableFunc(merged, func(a, b markSpan) int {
		if a.from != b.from {
			return a.from - b.from
		}
		return a.mark.Type.rank() - b.mark.Type.rank()
	})
	d.marks = merged
}
