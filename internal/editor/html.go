package editor

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nenadmarinkovic/sprachenwald/internal/markup"
)

var formatElements = map[MarkType]atom.Atom{
	MarkBold:   atom.Strong,
	MarkItalic: atom.Em,
	MarkStrike: atom.S,
	MarkCode:   atom.Code,
}

var formatMarks = map[atom.Atom]MarkType{
	atom.Strong: MarkBold,
	atom.B:      MarkBold,
	atom.Em:     MarkItalic,
	atom.I:      MarkItalic,
	atom.S:      MarkStrike,
	atom.Strike: MarkStrike,
	atom.Del:    MarkStrike,
	atom.Code:   MarkCode,
}

var blockTags = map[atom.Atom]BlockTag{
	atom.P:          TagParagraph,
	atom.H1:         TagHeading1,
	atom.H2:         TagHeading2,
	atom.H3:         TagHeading3,
	atom.H4:         TagHeading4,
	atom.H5:         TagHeading5,
	atom.H6:         TagHeading6,
	atom.Blockquote: TagBlockquote,
	atom.Div:        TagParagraph,
}

var blockElements = map[BlockTag]atom.Atom{
	TagParagraph:  atom.P,
	TagHeading1:   atom.H1,
	TagHeading2:   atom.H2,
	TagHeading3:   atom.H3,
	TagHeading4:   atom.H4,
	TagHeading5:   atom.H5,
	TagHeading6:   atom.H6,
	TagBlockquote: atom.Blockquote,
}

var lineEnds = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", string(HardBreak), " ")

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
}

// HTML renders every paragraph as its block element. Interactive words are
// the outermost inline element, so each contiguous word range becomes one span.
func (d *Document) HTML() string {
	var b strings.Builder
	var list *html.Node
	flush := func() {
		if list != nil {
			_ = html.Render(&b, list)
			list = nil
		}
	}

	start := 0
	for _, tag := range d.blocks {
		end := start
		for end < len(d.text) && d.text[end] != '\n' {
			end++
		}
		switch {
		case tag.isListItem():
			kind := atom.Ul
			if tag == TagOrderedItem {
				kind = atom.Ol
			}
			if list != nil && list.DataAtom != kind {
				flush()
			}
			if list == nil {
				list = element(kind)
			}
			li := element(atom.Li)
			d.renderInline(li, start, end)
			list.AppendChild(li)
		case tag == TagRule:
			flush()
			b.WriteString("<hr>")
			// Text typed into a rule paragraph follows it as a plain paragraph.
			if start < end {
				p := element(atom.P)
				d.renderInline(p, start, end)
				_ = html.Render(&b, p)
			}
		default:
			flush()
			p := element(blockElements[tag])
			d.renderInline(p, start, end)
			_ = html.Render(&b, p)
		}
		start = end + 1
	}
	flush()
	// html.Render writes void elements as <br/>; text and attribute values are
	// escaped, so the literal can only be the element.
	return strings.ReplaceAll(b.String(), "<br/>", "<br>")
}

func (d *Document) renderInline(parent *html.Node, from, to int) {
	cuts := []int{from, to}
	for _, m := range d.marks {
		if m.from > from && m.from < to {
			cuts = append(cuts, m.from)
		}
		if m.to > from && m.to < to {
			cuts = append(cuts, m.to)
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	type open struct {
		mark Mark
		node *html.Node
	}
	var stack []open

	for i := 0; i+1 < len(cuts); i++ {
		a, b := cuts[i], cuts[i+1]
		var active []Mark
		for _, m := range d.marks {
			if m.from <= a && m.to >= b {
				active = append(active, m.mark)
			}
		}
		slices.SortStableFunc(active, func(x, y Mark) int { return x.Type.rank() - y.Type.rank() })

		keep := 0
		for keep < len(stack) && keep < len(active) && stack[keep].mark == active[keep] {
			keep++
		}
		stack = stack[:keep]

		for _, m := range active[keep:] {
			host := parent
			if len(stack) > 0 {
				host = stack[len(stack)-1].node
			}
			var n *html.Node
			switch m.Type {
			case MarkInteractiveWord:
				n = markup.Element(m.Attrs)
			case MarkLink:
				n = element(atom.A)
				n.Attr = []html.Attribute{{Key: "href", Val: m.Href}}
			default:
				n = element(formatElements[m.Type])
			}
			host.AppendChild(n)
			stack = append(stack, open{mark: m, node: n})
		}

		host := parent
		if len(stack) > 0 {
			host = stack[len(stack)-1].node
		}
		appendRunes(host, d.text[a:b])
	}
}

// appendRunes adds text to host, turning hard breaks into <br>.
func appendRunes(host *html.Node, rs []rune) {
	for {
		i := slices.Index(rs, HardBreak)
		if i < 0 {
			break
		}
		if i > 0 {
			host.AppendChild(&html.Node{Type: html.TextNode, Data: string(rs[:i])})
		}
		host.AppendChild(element(atom.Br))
		rs = rs[i+1:]
	}
	if len(rs) > 0 {
		host.AppendChild(&html.Node{Type: html.TextNode, Data: string(rs)})
	}
}

type leadingText struct {
	s     string
	marks []Mark
}

type docBuilder struct {
	doc *Document
	// open is true while inline content belongs to the last paragraph.
	open  bool
	empty bool
	// list is the item tag given to <li> inside the current list element.
	list BlockTag
	// lead is whitespace at the start of the open paragraph. It is dropped
	// when a nested block element takes over the paragraph.
	lead []leadingText
}

// parseDocument reads stored markup. Known block elements become
// paragraphs; stray inline content at the top level gets an implicit <p>.
func parseDocument(content string) (*Document, error) {
	nodes, err := markup.ParseFragment(content)
	if err != nil {
		return nil, err
	}
	b := &docBuilder{doc: &Document{}}
	for _, n := range nodes {
		b.node(n, nil)
	}
	b.close()
	if len(b.doc.blocks) == 0 {
		b.doc.blocks = []BlockTag{TagParagraph}
	}
	b.doc.normalize()
	return b.doc, nil
}

func (b *docBuilder) startParagraph(tag BlockTag) {
	b.lead = nil
	if b.open && b.empty {
		if last := len(b.doc.blocks) - 1; b.doc.blocks[last] != TagBlockquote && !b.doc.blocks[last].isListItem() {
			b.doc.blocks[last] = tag
		}
		return
	}
	if len(b.doc.blocks) > 0 {
		b.doc.text = append(b.doc.text, '\n')
	}
	b.doc.blocks = append(b.doc.blocks, tag)
	b.open, b.empty = true, true
}

// close ends the open paragraph. A paragraph holding only whitespace keeps it.
func (b *docBuilder) close() {
	if b.open && b.empty {
		b.flushLead()
	}
	b.open = false
	b.lead = nil
}

func (b *docBuilder) flushLead() {
	for _, l := range b.lead {
		b.append(l.s, l.marks)
	}
	b.lead = nil
}

func (b *docBuilder) append(s string, marks []Mark) {
	rs := []rune(s)
	pos := len(b.doc.text)
	b.doc.text = append(b.doc.text, rs...)
	for _, m := range marks {
		b.doc.marks = append(b.doc.marks, markSpan{from: pos, to: pos + len(rs), mark: m})
	}
	b.empty = false
}

func (b *docBuilder) text(s string, marks []Mark) {
	s = lineEnds.Replace(s)
	if s == "" {
		return
	}
	blank := strings.TrimSpace(s) == ""
	if !b.open {
		if blank {
			return
		}
		b.startParagraph(TagParagraph)
	}
	if b.empty && blank {
		b.lead = append(b.lead, leadingText{s: s, marks: marks})
		return
	}
	b.flushLead()
	b.append(s, marks)
}

func (b *docBuilder) node(n *html.Node, marks []Mark) {
	switch n.Type {
	case html.TextNode:
		b.text(n.Data, marks)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Ul, atom.Ol:
		outer := b.list
		b.list = TagBulletItem
		if n.DataAtom == atom.Ol {
			b.list = TagOrderedItem
		}
		b.children(n, marks)
		b.list = outer
		return
	case atom.Li:
		tag := b.list
		if tag == "" {
			tag = TagBulletItem
		}
		b.startParagraph(tag)
		b.children(n, marks)
		b.close()
		return
	case atom.Hr:
		b.close()
		b.startParagraph(TagRule)
		b.open = false
		return
	case atom.Br:
		if !b.open {
			b.startParagraph(TagParagraph)
		}
		b.flushLead()
		b.append(string(HardBreak), marks)
		return
	}

	if tag, ok := blockTags[n.DataAtom]; ok {
		b.startParagraph(tag)
		b.children(n, marks)
		b.close()
		return
	}

	if span, ok := markup.Decode(n); ok && !hasMark(marks, MarkInteractiveWord) {
		marks = append(slices.Clone(marks), Mark{Type: MarkInteractiveWord, Attrs: span})
	} else if t, ok := formatMarks[n.DataAtom]; ok && !hasMark(marks, t) {
		marks = append(slices.Clone(marks), Mark{Type: t})
	} else if href := linkTarget(n); href != "" && !hasMark(marks, MarkLink) {
		marks = append(slices.Clone(marks), Mark{Type: MarkLink, Href: href})
	}
	b.children(n, marks)
}

func (b *docBuilder) children(n *html.Node, marks []Mark) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.node(c, marks)
	}
}

func linkTarget(n *html.Node) string {
	if n.DataAtom != atom.A {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "href" {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func hasMark(marks []Mark, t MarkType) bool {
	return slices.ContainsFunc(marks, func(m Mark) bool { return m.Type == t })
}
