// Package authoring runs rich-text editor commands for clients that do not
// embed the editor themselves. Every call is stateless: the client sends the
// current markup and selection and gets the edited document back.
package authoring

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
	"github.com/nenadmarinkovic/sprachenwald/internal/editor"
	"github.com/nenadmarinkovic/sprachenwald/internal/markup"
	"github.com/nenadmarinkovic/sprachenwald/pkg/ctxutil"
)

// Command names one editor operation.
type Command string

const (
	CommandSelect    Command = "select"
	CommandInsert    Command = "insert"
	CommandPaste     Command = "paste"
	CommandBackspace Command = "backspace"
	CommandDelete    Command = "delete"
	CommandMark      Command = "mark"
	CommandToggle    Command = "toggle"
	CommandUnset     Command = "unset"
	CommandApply     Command = "apply"
	CommandFormat    Command = "format"
	CommandBlock     Command = "block"
	CommandLink      Command = "link"
	CommandBreak     Command = "break"
)

// Input is one command against a document.
type Input struct {
	HTML      string
	Selection editor.Selection
	Command   Command
	// Text is inserted by insert and paste.
	Text string
	// Attrs are set by mark and toggle.
	Attrs domain.InteractiveWordSpan
	// Patch is laid over the word under the selection by apply.
	Patch editor.AttrPatch
	// Format is the formatting mark toggled by format.
	Format editor.MarkType
	// Block is the paragraph tag set by block.
	Block editor.BlockTag
	// Href is the link target set by link; empty removes the link.
	Href string
}

// Result is the document after the command.
type Result struct {
	HTML      string
	Selection editor.Selection
	Panel     editor.Panel
	Words     []editor.Word
	Changed   bool
}

// Service runs editor commands.
type Service struct {
	sanitizer *markup.Sanitizer
	maxBytes  int
	log       *slog.Logger
}

// NewService creates a new authoring service. maxBytes caps the incoming
// markup; zero disables the check.
func NewService(log *slog.Logger, maxBytes int) *Service {
	return &Service{
		sanitizer: markup.NewSanitizer(),
		maxBytes:  maxBytes,
		log:       log.With("service", "authoring"),
	}
}

// Run applies one command. A command that cannot apply, such as marking an
// empty selection, returns input.HTML byte for byte with Changed=false.
func (s *Service) Run(ctx context.Context, input Input) (Result, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return Result{}, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return Result{}, domain.ErrForbidden
	}
	if s.maxBytes > 0 && len(input.HTML) > s.maxBytes {
		return Result{}, domain.NewValidationError("html", fmt.Sprintf("max %d bytes", s.maxBytes))
	}

	ed, err := editor.New(editor.Config{
		Content:         s.sanitizer.Sanitize(input.HTML),
		InteractiveWord: editor.NewInteractiveWordExtension(),
	})
	if err != nil {
		return Result{}, domain.NewValidationError("html", "cannot parse markup")
	}
	ed.SetSelection(input.Selection.Anchor, input.Selection.Head)

	changed, err := apply(ed, input)
	if err != nil {
		return Result{}, err
	}

	s.log.DebugContext(ctx, "editor command",
		slog.String("command", string(input.Command)),
		slog.Bool("changed", changed),
	)

	out := input.HTML
	if changed {
		out = ed.HTML()
	}
	return Result{
		HTML:      out,
		Selection: ed.Selection(),
		Panel:     ed.Panel(),
		Words:     ed.Words(),
		Changed:   changed,
	}, nil
}

func apply(ed *editor.Editor, in Input) (bool, error) {
	switch Command(strings.ToLower(string(in.Command))) {
	case CommandSelect:
		return false, nil
	case CommandInsert:
		return ed.InsertText(in.Text), nil
	case CommandPaste:
		return ed.Paste(in.Text), nil
	case CommandBackspace:
		return ed.Backspace(), nil
	case CommandDelete:
		return ed.DeleteSelection(), nil
	case CommandMark:
		return ed.SetInteractiveWord(in.Attrs), nil
	case CommandToggle:
		return ed.ToggleInteractiveWord(in.Attrs), nil
	case CommandUnset:
		return ed.UnsetInteractiveWord(), nil
	case CommandApply:
		return ed.ApplyAttrs(in.Patch), nil
	case CommandFormat:
		if !in.Format.IsValid() || in.Format == editor.MarkInteractiveWord || in.Format == editor.MarkLink {
			return false, domain.NewValidationError("format", "unknown formatting mark")
		}
		return ed.ToggleMark(in.Format), nil
	case CommandBlock:
		if !in.Block.IsValid() {
			return false, domain.NewValidationError("block", "unknown paragraph tag")
		}
		return ed.SetBlock(in.Block), nil
	case CommandLink:
		return ed.SetLink(in.Href), nil
	case CommandBreak:
		return ed.InsertHardBreak(), nil
	}
	return false, domain.NewValidationError("command", fmt.Sprintf("unknown command %q", in.Command))
}
