package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// AttrPatch is a partial attribute edit from the side panel. Nil fields keep
// the current value.
type AttrPatch struct {
	German       *string                 `json:"german,omitempty"`
	Translation  *string                 `json:"serbian,omitempty"`
	PartOfSpeech *domain.PartOfSpeech    `json:"partOfSpeech,omitempty"`
	Case         *domain.GrammaticalCase `json:"case,omitempty"`
	Article      *string                 `json:"article,omitempty"`
	IsVerb       *bool                   `json:"isVerb,omitempty"`
	Note         *string                 `json:"info,omitempty"`
	Example      *string                 `json:"example,omitempty"`
}

// Apply overlays the patch on s and recomputes the slug.
func (p AttrPatch) Apply(s domain.InteractiveWordSpan) domain.InteractiveWordSpan {
	if p.German != nil {
		s.German = strings.TrimSpace(*p.German)
	}
	if p.Translation != nil {
		s.Translation = *p.Translation
	}
	if p.PartOfSpeech != nil {
		s.PartOfSpeech = domain.ParsePartOfSpeech(string(*p.PartOfSpeech))
	}
	if p.Case != nil {
		s.Case = domain.ParseGrammaticalCase(string(*p.Case))
	}
	if p.Article != nil {
		s.Article = *p.Article
	}
	if p.IsVerb != nil {
		s.IsVerb = *p.IsVerb
	}
	if p.Note != nil {
		s.Note = *p.Note
	}
	if p.Example != nil {
		s.Example = strings.TrimSpace(*p.Example)
	}
	return s.WithSlug()
}

// Word is an interactive word range in the document.
type Word struct {
	Range Range                      `json:"range"`
	Attrs domain.InteractiveWordSpan `json:"attrs"`
	Text  string                     `json:"text"`
}

// Words lists the interactive word ranges in document order.
func (e *Editor) Words() []Word {
	var out []Word
	for _, m := range e.doc.marks {
		if m.mark.Type != MarkInteractiveWord {
			continue
		}
		out = append(out, Word{
			Range: Range{From: m.from, To: m.to},
			Attrs: m.mark.Attrs,
			Text:  e.doc.textBetween(m.from, m.to),
		})
	}
	return out
}

// MarkRangeAt returns the maximal interactive word range touching the caret
// position pos: the word after pos, else the word before it.
func (e *Editor) MarkRangeAt(pos int) (Range, domain.InteractiveWordSpan, bool) {
	if e.ext == nil || pos < 0 || pos > e.doc.Len() {
		return Range{}, domain.InteractiveWordSpan{}, false
	}
	m, ok := e.doc.markAt(pos, MarkInteractiveWord)
	if !ok && pos > 0 {
		m, ok = e.doc.markAt(pos-1, MarkInteractiveWord)
	}
	if !ok {
		return Range{}, domain.InteractiveWordSpan{}, false
	}
	return Range{From: m.from, To: m.to}, m.mark.Attrs, true
}

// SetInteractiveWordFromSelection marks the selection with German set to
// the trimmed selected text. Empty or blank selections are a no-op.
func (e *Editor) SetInteractiveWordFromSelection() bool {
	return e.SetInteractiveWord(domain.InteractiveWordSpan{})
}

// SetInteractiveWord marks the selection with attrs. An empty German is
// taken from the selected text; the slug is always derived.
func (e *Editor) SetInteractiveWord(attrs domain.InteractiveWordSpan) bool {
	from, to, ok := e.annotatableSelection()
	if !ok {
		return false
	}
	if strings.TrimSpace(attrs.German) == "" {
		attrs.German = domain.CollapseSpaces(e.doc.textBetween(from, to))
	}
	var tx Transaction
	tx.add(AddMarkStep{From: from, To: to, Mark: interactive(attrs)})
	return e.Dispatch(tx)
}

// ToggleInteractiveWord removes the mark when the whole selection already
// carries it, and sets it otherwise.
func (e *Editor) ToggleInteractiveWord(attrs domain.InteractiveWordSpan) bool {
	from, to, ok := e.annotatableSelection()
	if !ok {
		return false
	}
	if e.doc.covered(from, to, MarkInteractiveWord) {
		return e.UnsetInteractiveWord()
	}
	return e.SetInteractiveWord(attrs)
}

// UnsetInteractiveWord removes the mark from the selection, or from the
// whole word under the caret.
func (e *Editor) UnsetInteractiveWord() bool {
	if e.ext == nil {
		return false
	}
	r := Range{From: e.sel.From(), To: e.sel.To()}
	if r.Empty() {
		var ok bool
		if r, _, ok = e.MarkRangeAt(e.sel.Head); !ok {
			return false
		}
	}
	var tx Transaction
	tx.add(RemoveMarkStep{From: r.From, To: r.To, Type: MarkInteractiveWord})
	return e.Dispatch(tx)
}

// ApplyAttrs edits the word shown in the side panel. The cached range is
// resolved again first, then the mark is removed and re-added over the same
// range with the patch laid over the existing attributes.
func (e *Editor) ApplyAttrs(patch AttrPatch) bool {
	if e.ext == nil || e.cached == nil {
		return false
	}
	r := *e.cached
	m, ok := e.doc.markAt(r.From, MarkInteractiveWord)
	if !ok && r.To > 0 {
		m, ok = e.doc.markAt(r.To-1, MarkInteractiveWord)
	}
	if !ok {
		return false
	}

	merged := patch.Apply(m.mark.Attrs)
	if !merged.Valid() {
		return false
	}

	var tx Transaction
	tx.add(
		RemoveMarkStep{From: m.from, To: m.to, Type: MarkInteractiveWord},
		AddMarkStep{From: m.from, To: m.to, Mark: interactive(merged)},
	)
	changed := e.Dispatch(tx)
	e.cached = &Range{From: m.from, To: m.to}
	return changed
}

// annotatableSelection returns the selection shrunk to exclude surrounding
// whitespace; ok is false when nothing is left.
func (e *Editor) annotatableSelection() (int, int, bool) {
	if e.ext == nil || e.sel.Empty() {
		return 0, 0, false
	}
	from, to := e.sel.From(), e.sel.To()
	for from < to && unicode.IsSpace(e.doc.text[from]) {
		from++
	}
	for to > from && unicode.IsSpace(e.doc.text[to-1]) {
		to--
	}
	return from, to, from < to
}

func interactive(s domain.InteractiveWordSpan) Mark {
	return Mark{Type: MarkInteractiveWord, Attrs: s.WithSlug()}
}

// inputRuleMatch checks the paragraph text ending at the caret. at is the
// rune offset of the bracketed run inside before.
func (e *Editor) inputRuleMatch(before string) (word string, at int, ok bool) {
	if e.ext == nil || e.ext.InputRule == nil {
		return "", 0, false
	}
	loc := e.ext.InputRule.FindStringSubmatchIndex(before)
	if len(loc) < 4 || loc[2] < 0 {
		return "", 0, false
	}
	word = strings.TrimSpace(before[loc[2]:loc[3]])
	if word == "" {
		return "", 0, false
	}
	return word, utf8.RuneCountInString(before[:loc[0]]), true
}

type ruleMatch struct {
	start, end int
	word       string
}

// pasteRuleMatches finds bracketed runs inside one paragraph of text, in
// rune offsets.
func (e *Editor) pasteRuleMatches(text string) []ruleMatch {
	if e.ext == nil || e.ext.PasteRule == nil {
		return nil
	}
	var out []ruleMatch
	for _, loc := range e.ext.PasteRule.FindAllStringSubmatchIndex(text, -1) {
		if len(loc) < 4 || loc[2] < 0 {
			continue
		}
		inner := text[loc[2]:loc[3]]
		word := strings.TrimSpace(inner)
		if word == "" || strings.Contains(inner, "\n") {
			continue
		}
		out = append(out, ruleMatch{
			start: utf8.RuneCountInString(text[:loc[0]]),
			end:   utf8.RuneCountInString(text[:loc[1]]),
			word:  word,
		})
	}
	return out
}
