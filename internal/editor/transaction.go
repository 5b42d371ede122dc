package editor

// Step is one document edit inside a transaction.
type Step interface {
	apply(d *Document) error
	// mapPos maps a position in the document before the step to one after it.
	mapPos(p int) int
}

// InsertStep inserts text at Pos. Newlines split paragraphs.
type InsertStep struct {
	Pos  int
	Text string
}

func (s InsertStep) apply(d *Document) error { return d.insert(s.Pos, []rune(s.Text)) }

func (s InsertStep) mapPos(p int) int {
	if p >= s.Pos {
		return p + len([]rune(s.Text))
	}
	return p
}

// DeleteStep removes [From,To). Removed separators join paragraphs.
type DeleteStep struct {
	From, To int
}

func (s DeleteStep) apply(d *Document) error { return d.delete(s.From, s.To) }

func (s DeleteStep) mapPos(p int) int {
	switch {
	case p <= s.From:
		return p
	case p < s.To:
		return s.From
	}
	return p - (s.To - s.From)
}

// AddMarkStep puts Mark over [From,To), replacing marks of the same type there.
type AddMarkStep struct {
	From, To int
	Mark     Mark
}

func (s AddMarkStep) apply(d *Document) error { return d.addMark(s.From, s.To, s.Mark) }

func (s AddMarkStep) mapPos(p int) int { return p }

// RemoveMarkStep strips marks of Type from [From,To).
type RemoveMarkStep struct {
	From, To int
	Type     MarkType
}

func (s RemoveMarkStep) apply(d *Document) error { return d.removeMark(s.From, s.To, s.Type) }

func (s RemoveMarkStep) mapPos(p int) int { return p }

// SetBlockStep retags every paragraph touched by [From,To].
type SetBlockStep struct {
	From, To int
	Tag      BlockTag
}

func (s SetBlockStep) apply(d *Document) error { return d.setBlock(s.From, s.To, s.Tag) }

func (s SetBlockStep) mapPos(p int) int { return p }

// Selection is a caret (Anchor == Head) or a range.
type Selection struct {
	Anchor int `json:"anchor"`
	Head   int `json:"head"`
}

// Caret returns an empty selection at pos.
func Caret(pos int) Selection { return Selection{Anchor: pos, Head: pos} }

func (s Selection) From() int   { return min(s.Anchor, s.Head) }
func (s Selection) To() int     { return max(s.Anchor, s.Head) }
func (s Selection) Empty() bool { return s.Anchor == s.Head }

func (s Selection) clamp(n int) Selection {
	c := func(p int) int { return min(max(p, 0), n) }
	return Selection{Anchor: c(s.Anchor), Head: c(s.Head)}
}

// Transaction is an ordered list of steps plus an optional new selection.
// Steps are applied to a copy of the document; the copy replaces the
// document only when every step succeeds. Without an explicit selection the
// current one is mapped through the steps.
type Transaction struct {
	Steps     []Step
	Selection *Selection
}

// DocChanged reports whether the transaction edits the document.
func (tx Transaction) DocChanged() bool { return len(tx.Steps) > 0 }

func (tx *Transaction) add(steps ...Step) *Transaction {
	tx.Steps = append(tx.Steps, steps...)
	return tx
}

func (tx *Transaction) setSelection(s Selection) *Transaction {
	tx.Selection = &s
	return tx
}
