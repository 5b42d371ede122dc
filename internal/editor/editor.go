// Package editor is an editable rich-text document with mark-based
// annotations. Interactive words are marks carrying an InteractiveWordSpan;
// the capability is switched on per instance through Config.
package editor

import (
	"regexp"
	"strings"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/markup"
)

// InteractiveWordExtension configures the interactive word mark of one
// editor instance. A nil rule disables that rule.
type InteractiveWordExtension struct {
	InputRule *regexp.Regexp
	PasteRule *regexp.Regexp
}

// NewInteractiveWordExtension returns the extension with the [[wort]] rules.
func NewInteractiveWordExtension() *InteractiveWordExtension {
	return &InteractiveWordExtension{
		InputRule: markup.InputRulePattern,
		PasteRule: markup.PasteRulePattern,
	}
}

// Config is passed to New.
type Config struct {
	// Content is the initial markup; empty means one empty paragraph.
	Content string
	// InteractiveWord enables interactive word commands and rules when non-nil.
	InteractiveWord *InteractiveWordExtension
	// OnTransaction is called after every committed transaction.
	OnTransaction func(Transaction)
}

// Panel is the side panel state: the interactive word under the selection.
type Panel struct {
	Visible bool                       `json:"visible"`
	Range   Range                      `json:"range"`
	Attrs   domain.InteractiveWordSpan `json:"attrs"`
	German  string                     `json:"german"`
}

// Editor owns one document and its selection. It belongs to a single
// authoring session and is not safe for concurrent use.
type Editor struct {
	doc   *Document
	sel   Selection
	ext   *InteractiveWordExtension
	onTx  func(Transaction)
	panel Panel
	// cached is the range the panel edits; ApplyAttrs re-resolves it.
	cached *Range
}

// New builds an editor over cfg.Content with a caret at the start.
func New(cfg Config) (*Editor, error) {
	doc := newDocument()
	if strings.TrimSpace(cfg.Content) != "" {
		var err error
		if doc, err = parseDocument(cfg.Content); err != nil {
			return nil, err
		}
	}
	e := &Editor{doc: doc, ext: cfg.InteractiveWord, onTx: cfg.OnTransaction}
	e.refresh()
	return e, nil
}

// Dispatch applies tx atomically and reports whether the document or the
// selection changed. A failing step leaves the editor untouched.
func (e *Editor) Dispatch(tx Transaction) bool {
	next := e.doc.clone()
	sel := e.sel
	for _, s := range tx.Steps {
		if err := s.apply(next); err != nil {
			return false
		}
		sel = Selection{Anchor: s.mapPos(sel.Anchor), Head: s.mapPos(sel.Head)}
	}
	sel = sel.clamp(next.Len())
	if tx.Selection != nil {
		sel = tx.Selection.clamp(next.Len())
	}

	changed := !next.equal(e.doc) || sel != e.sel
	e.doc, e.sel = next, sel
	e.refresh()
	if e.onTx != nil {
		e.onTx(tx)
	}
	return changed
}

func (e *Editor) Text() string         { return e.doc.Text() }
func (e *Editor) Selection() Selection { return e.sel }
func (e *Editor) Panel() Panel         { return e.panel }

// SetSelection moves the selection; positions are clamped to the document.
func (e *Editor) SetSelection(anchor, head int) bool {
	var tx Transaction
	return e.Dispatch(*tx.setSelection(Selection{Anchor: anchor, Head: head}))
}

// SelectedText returns the text under the selection.
func (e *Editor) SelectedText() string {
	return e.doc.textBetween(e.sel.From(), e.sel.To())
}

// InsertText replaces the selection with text and runs the input rule.
func (e *Editor) InsertText(text string) bool {
	if text == "" {
		return false
	}
	text = normalizeNewlines(text)
	from, to := e.sel.From(), e.sel.To()

	var tx Transaction
	if from < to {
		tx.add(DeleteStep{From: from, To: to})
	}
	tx.add(InsertStep{Pos: from, Text: text})
	caret := from + len([]rune(text))

	if !strings.Contains(text, "\n") {
		start := e.doc.paragraphStart(from)
		before := e.doc.textBetween(start, from) + text
		if word, at, ok := e.inputRuleMatch(before); ok {
			wordStart := start + at
			wordEnd := wordStart + len([]rune(word))
			tx.add(
				DeleteStep{From: wordStart, To: caret},
				InsertStep{Pos: wordStart, Text: word},
				AddMarkStep{From: wordStart, To: wordEnd, Mark: interactive(domain.InteractiveWordSpan{German: word})},
			)
			caret = wordEnd
		}
	}
	return e.Dispatch(*tx.setSelection(Caret(caret)))
}

// Paste inserts text at the selection and converts every [[wort]] run
// inside the pasted text into an interactive word.
func (e *Editor) Paste(text string) bool {
	if text == "" {
		return false
	}
	text = normalizeNewlines(text)
	from, to := e.sel.From(), e.sel.To()

	var tx Transaction
	if from < to {
		tx.add(DeleteStep{From: from, To: to})
	}
	tx.add(InsertStep{Pos: from, Text: text})
	caret := from + len([]rune(text))

	matches := e.pasteRuleMatches(text)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		start, end := from+m.start, from+m.end
		wordEnd := start + len([]rune(m.word))
		tx.add(
			DeleteStep{From: start, To: end},
			InsertStep{Pos: start, Text: m.word},
			AddMarkStep{From: start, To: wordEnd, Mark: interactive(domain.InteractiveWordSpan{German: m.word})},
		)
		caret -= (end - start) - (wordEnd - start)
	}
	return e.Dispatch(*tx.setSelection(Caret(caret)))
}

// DeleteSelection removes the selected text.
func (e *Editor) DeleteSelection() bool {
	if e.sel.Empty() {
		return false
	}
	var tx Transaction
	tx.add(DeleteStep{From: e.sel.From(), To: e.sel.To()})
	return e.Dispatch(*tx.setSelection(Caret(e.sel.From())))
}

// Backspace deletes the selection, or the character before the caret.
func (e *Editor) Backspace() bool {
	if !e.sel.Empty() {
		return e.DeleteSelection()
	}
	pos := e.sel.Head
	if pos == 0 {
		return false
	}
	var tx Transaction
	tx.add(DeleteStep{From: pos - 1, To: pos})
	return e.Dispatch(*tx.setSelection(Caret(pos - 1)))
}

// InsertHardBreak replaces the selection with a line break that stays
// inside the paragraph.
func (e *Editor) InsertHardBreak() bool {
	return e.InsertText(string(HardBreak))
}

// ToggleMark toggles a formatting mark over the selection.
func (e *Editor) ToggleMark(t MarkType) bool {
	if t == MarkInteractiveWord || t == MarkLink || !t.IsValid() || e.sel.Empty() {
		return false
	}
	from, to := e.sel.From(), e.sel.To()
	var tx Transaction
	if e.doc.covered(from, to, t) {
		tx.add(RemoveMarkStep{From: from, To: to, Type: t})
	} else {
		tx.add(AddMarkStep{From: from, To: to, Mark: Mark{Type: t}})
	}
	return e.Dispatch(tx)
}

// SetLink points the selection at href. A blank href removes links from
// the selection.
func (e *Editor) SetLink(href string) bool {
	if e.sel.Empty() {
		return false
	}
	from, to := e.sel.From(), e.sel.To()
	var tx Transaction
	if href = strings.TrimSpace(href); href == "" {
		tx.add(RemoveMarkStep{From: from, To: to, Type: MarkLink})
	} else {
		tx.add(AddMarkStep{From: from, To: to, Mark: Mark{Type: MarkLink, Href: href}})
	}
	return e.Dispatch(tx)
}

// SetBlock retags the paragraphs under the selection.
func (e *Editor) SetBlock(tag BlockTag) bool {
	if !tag.IsValid() {
		return false
	}
	var tx Transaction
	tx.add(SetBlockStep{From: e.sel.From(), To: e.sel.To(), Tag: tag})
	return e.Dispatch(tx)
}

// HTML serializes the document.
func (e *Editor) HTML() string {
	return e.doc.HTML()
}

func (e *Editor) refresh() {
	r, attrs, ok := e.panelRange()
	if !ok {
		e.panel = Panel{}
		e.cached = nil
		return
	}
	german := attrs.German
	if german == "" {
		german = e.doc.textBetween(r.From, r.To)
	}
	e.panel = Panel{Visible: true, Range: r, Attrs: attrs, German: german}
	e.cached = &r
}

func (e *Editor) panelRange() (Range, domain.InteractiveWordSpan, bool) {
	if e.ext == nil {
		return Range{}, domain.InteractiveWordSpan{}, false
	}
	if e.sel.Empty() {
		return e.MarkRangeAt(e.sel.Head)
	}
	m, ok := e.doc.markAt(e.sel.From(), MarkInteractiveWord)
	if !ok {
		return Range{}, domain.InteractiveWordSpan{}, false
	}
	return Range{From: m.from, To: m.to}, m.mark.Attrs, true
}

func normalizeNewlines(s string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(s)
}
