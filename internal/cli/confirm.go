package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/focset/internal/core"
)

// ConfirmModel is a Yes/No dialog for a single part warning.
// No is preselected.
type ConfirmModel struct {
	warning core.Warning
	yes     bool
	done    bool
}

func NewConfirmModel(w core.Warning) ConfirmModel {
	return ConfirmModel{warning: w}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.yes = true
		m.done = true

		return m, tea.Quit

	case "n", "N", "esc", "q", "ctrl+c":
		m.yes = false
		m.done = true

		return m, tea.Quit

	case "left", "right", "tab", "shift+tab", "h", "l":
		m.yes = !m.yes

	case "enter":
		m.done = true

		return m, tea.Quit
	}

	return m, nil
}

// Decision is Proceed only when the dialog was closed on Yes.
func (m ConfirmModel) Decision() core.Decision {
	if m.done && m.yes {
		return core.Proceed
	}

	return core.Abort
}

func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}

	yes, no := blurredStyle.Render("[ Yes ]"), focusedStyle.Render("[ No ]")
	if m.yes {
		yes, no = focusedStyle.Render("[ Yes ]"), blurredStyle.Render("[ No ]")
	}

	body := warningStyle.Render("Warning") + "\n\n" +
		blurredStyle.Render(fmt.Sprintf("Part %d: %s", m.warning.Slot+1, m.warning.Part)) + "\n\n" +
		m.warning.Message + "\n\n" + yes + "  " + no

	return docStyle.Render(dialogStyle.Render(body) + "\n" +
		helpStyle.Render("y/n: answer • ←/→: switch • enter: confirm • esc: no"))
}

// TeaConfirmer answers each warning with its own dialog program.
type TeaConfirmer struct {
	Options []tea.ProgramOption
}

func (c TeaConfirmer) Confirm(ctx context.Context, w core.Warning) (core.Decision, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, c.Options...)

	final, err := tea.NewProgram(NewConfirmModel(w), opts...).Run()
	if err != nil {
		return core.Abort, fmt.Errorf("warning dialog: %w", err)
	}

	m, ok := final.(ConfirmModel)
	if !ok {
		return core.Abort, nil
	}

	return m.Decision(), nil
}

// LineConfirmer asks on a plain line based prompt. Anything but y or yes
// declines.
type LineConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *LineConfirmer) Confirm(ctx context.Context, w core.Warning) (core.Decision, error) {
	if err := ctx.Err(); err != nil {
		return core.Abort, err
	}

	_, _ = fmt.Fprintf(c.out, "Warning (part %d, %s): %s\nProceed? [y/N]: ", w.Slot+1, w.Part, w.Message)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return core.Abort, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return core.Proceed, nil
	default:
		return core.Abort, nil
	}
}
