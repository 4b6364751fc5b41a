package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/focset/internal/catalog"
	"github.com/inovacc/focset/internal/core"
	"github.com/inovacc/focset/internal/model"
)

const fmtRow = " %-18s %s\n"

// Focus order: executable, body part, the class toggles, the display name,
// the part slots and finally the submit button.
const (
	fieldExe = iota
	fieldBodyPart
	fieldClassFirst
)

var (
	fieldName      = fieldClassFirst + len(model.Specialties)
	fieldPartFirst = fieldName + 1
	fieldSubmit    = fieldPartFirst + model.MaxParts
)

// FormModel is the part entry form. It quits once the user submits a
// selection that passes validation, or cancels.
type FormModel struct {
	focusIndex int
	exe        textinput.Model
	name       textinput.Model
	bodyPart   int
	classes    []bool
	parts      []string

	picker   *partList
	browsing bool
	files    filepicker.Model

	status    string
	statusErr bool

	width, height int
	submitted     bool
	quitting      bool
}

// NewFormModel builds the form, prefilled with executable and sel. A zero
// selection yields the defaults: the first body part and part name, every
// other slot Null.
func NewFormModel(executable string, sel model.PartSelection) FormModel {
	m := FormModel{
		classes: make([]bool, len(model.Specialties)),
		parts:   make([]string, model.MaxParts),
		files:   newExePicker(executable),
	}

	m.exe = textinput.New()
	m.exe.Placeholder = "path to the game executable"
	m.exe.Cursor.Style = cursorStyle
	m.exe.CharLimit = 1024
	m.exe.Width = 60
	m.exe.SetValue(executable)

	m.name = textinput.New()
	m.name.Placeholder = "in game name"
	m.name.Cursor.Style = cursorStyle
	m.name.CharLimit = 128
	m.name.Width = 40
	m.name.SetValue(sel.DisplayName)

	if i := slices.Index(model.BodyParts, sel.BodyPart); i >= 0 {
		m.bodyPart = i
	}

	for _, sp := range sel.Specialties {
		if i := slices.Index(model.Specialties, sp); i >= 0 {
			m.classes[i] = true
		}
	}

	for slot := range m.parts {
		m.parts[slot] = catalog.SlotChoices(slot)[0]
		if slot < len(sel.PartNames) && sel.PartNames[slot] != "" {
			m.parts[slot] = sel.PartNames[slot]
		}
	}

	m.setFocus(fieldExe)

	return m
}

func newExePicker(executable string) filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".exe"}
	fp.AutoHeight = false
	fp.Height = 15

	dir := ""
	if executable != "" {
		dir = filepath.Dir(executable)
	}

	if info, err := os.Stat(dir); dir == "" || err != nil || !info.IsDir() {
		dir, _ = os.UserHomeDir()
	}

	if dir != "" {
		fp.CurrentDirectory = dir
	}

	return fp
}

// WithStatus sets the line shown under the submit button.
func (m FormModel) WithStatus(msg string, isErr bool) FormModel {
	m.status = msg
	m.statusErr = isErr

	return m
}

// Submitted reports whether the form closed on a valid submission.
func (m FormModel) Submitted() bool {
	return m.submitted
}

func (m FormModel) Executable() string {
	return strings.TrimSpace(m.exe.Value())
}

// Selection returns the form contents. Every slot is included, empty ones
// as Null.
func (m FormModel) Selection() model.PartSelection {
	sel := model.PartSelection{
		BodyPart:    model.BodyParts[m.bodyPart],
		DisplayName: m.name.Value(),
		PartNames:   slices.Clone(m.parts),
	}

	for i, on := range m.classes {
		if on {
			sel.Specialties = append(sel.Specialties, model.Specialties[i])
		}
	}

	return sel
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		if size.Height > 8 {
			m.files.Height = size.Height - 8
		}

		if m.picker != nil {
			h, v := docStyle.GetFrameSize()
			m.picker.list.SetSize(size.Width-h, size.Height-v)
		}
	}

	switch {
	case m.browsing:
		return m.updateBrowser(msg)
	case m.picker != nil:
		return m.updatePicker(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	switch s := key.String(); s {
	case "ctrl+c", "esc":
		m.quitting = true

		return m, tea.Quit

	case "ctrl+s":
		return m.submit()

	case "ctrl+o":
		m.browsing = true

		return m, m.files.Init()

	case "tab", "down", "shift+tab", "up":
		if s == "up" || s == "shift+tab" {
			return m, m.setFocus(m.focusIndex - 1)
		}

		return m, m.setFocus(m.focusIndex + 1)

	case "left", "right":
		step := 1
		if s == "left" {
			step = -1
		}

		switch {
		case m.focusIndex == fieldBodyPart:
			m.bodyPart = wrap(m.bodyPart+step, len(model.BodyParts))

			return m, nil
		case m.isPartField():
			m.cyclePart(m.focusIndex-fieldPartFirst, step)

			return m, nil
		}

	case " ":
		switch {
		case m.isClassField():
			i := m.focusIndex - fieldClassFirst
			m.classes[i] = !m.classes[i]

			return m, nil
		case m.isPartField():
			return m.openPicker(), nil
		}

	case "enter":
		switch {
		case m.focusIndex == fieldSubmit:
			return m.submit()
		case m.isClassField():
			i := m.focusIndex - fieldClassFirst
			m.classes[i] = !m.classes[i]

			return m, nil
		case m.isPartField():
			return m.openPicker(), nil
		}

		return m, m.setFocus(m.focusIndex + 1)
	}

	return m, m.updateInputs(msg)
}

func (m FormModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.quitting = true

			return m, tea.Quit
		case "esc", "q":
			m.browsing = false

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.files, cmd = m.files.Update(msg)

	if didSelect, path := m.files.DidSelectFile(msg); didSelect {
		m.exe.SetValue(path)
		m.browsing = false
		m.status = ""

		return m, cmd
	}

	if didSelect, path := m.files.DidSelectDisabledFile(msg); didSelect {
		m.status = fmt.Sprintf("%s is not an executable", filepath.Base(path))
		m.statusErr = true
	}

	return m, cmd
}

func (m FormModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.picker.filtering() {
		switch key.String() {
		case "ctrl+c":
			m.quitting = true

			return m, tea.Quit

		case "esc":
			if m.picker.list.FilterState() == list.Unfiltered {
				m.picker = nil

				return m, nil
			}

		case "enter":
			if name, ok := m.picker.selected(); ok {
				m.parts[m.picker.slot] = name
			}

			m.picker = nil

			return m, nil
		}
	}

	p, cmd := m.picker.update(msg)
	m.picker = &p

	return m, cmd
}

func (m FormModel) openPicker() FormModel {
	p := newPartList(m.focusIndex-fieldPartFirst, m.parts[m.focusIndex-fieldPartFirst], m.width, m.height)
	m.picker = &p

	return m
}

// submit checks the selection and keeps the form open with the error
// notice when it is rejected.
func (m FormModel) submit() (tea.Model, tea.Cmd) {
	if err := core.Validate(m.Selection(), m.Executable()); err != nil {
		m.status = core.UserMessage(err)
		m.statusErr = true

		return m, nil
	}

	m.submitted = true

	return m, tea.Quit
}

func (m *FormModel) cyclePart(slot, step int) {
	choices := catalog.SlotChoices(slot)

	i := slices.Index(choices, m.parts[slot])
	if i < 0 {
		i = 0
	} else {
		i = wrap(i+step, len(choices))
	}

	m.parts[slot] = choices[i]
}

func (m FormModel) isClassField() bool {
	return m.focusIndex >= fieldClassFirst && m.focusIndex < fieldName
}

func (m FormModel) isPartField() bool {
	return m.focusIndex >= fieldPartFirst && m.focusIndex < fieldSubmit
}

func (m *FormModel) setFocus(i int) tea.Cmd {
	m.focusIndex = wrap(i, fieldSubmit+1)

	var cmd tea.Cmd

	for _, in := range []*textinput.Model{&m.exe, &m.name} {
		in.Blur()
		in.PromptStyle = noStyle
		in.TextStyle = noStyle
	}

	var focused *textinput.Model

	switch m.focusIndex {
	case fieldExe:
		focused = &m.exe
	case fieldName:
		focused = &m.name
	}

	if focused != nil {
		cmd = focused.Focus()
		focused.PromptStyle = focusedStyle
		focused.TextStyle = focusedStyle
	}

	return cmd
}

func (m *FormModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds [2]tea.Cmd

	// Only the focused input reacts to keys.
	m.exe, cmds[0] = m.exe.Update(msg)
	m.name, cmds[1] = m.name.Update(msg)

	return tea.Batch(cmds[:]...)
}

func (m FormModel) View() string {
	if m.quitting || m.submitted {
		return ""
	}

	if m.browsing {
		return docStyle.Render(headerStyle.Render("Select the game executable") + "\n\n" +
			m.files.View() + "\n" +
			helpStyle.Render("enter: select • esc: back"))
	}

	if m.picker != nil {
		return m.picker.view()
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Part Entry Generator") + "\n")
	b.WriteString(blurredStyle.Render("Fill in the entry and press Submit") + "\n\n")

	b.WriteString(fmt.Sprintf(fmtRow, m.label(fieldExe, "Game executable:"), m.exe.View()))
	b.WriteString(fmt.Sprintf(fmtRow, m.label(fieldBodyPart, "Body part:"),
		m.choice(fieldBodyPart, model.BodyParts[m.bodyPart].String())))

	classes := make([]string, len(model.Specialties))
	for i, sp := range model.Specialties {
		box := "[ ]"
		if m.classes[i] {
			box = "[x]"
		}

		style := noStyle
		if m.focusIndex == fieldClassFirst+i {
			style = focusedStyle
		}

		classes[i] = style.Render(box + " " + string(sp))
	}

	b.WriteString(fmt.Sprintf(fmtRow, blurredStyle.Render("Classes:"), strings.Join(classes, "  ")))
	b.WriteString(fmt.Sprintf(fmtRow, m.label(fieldName, "In game name:"), m.name.View()))
	b.WriteString("\n")

	for slot, name := range m.parts {
		field := fieldPartFirst + slot

		value := m.choice(field, name)
		if res := catalog.Resolve(name); res.NeedsConfirmation() {
			value += " " + warningStyle.Render("!")
		}

		b.WriteString(fmt.Sprintf(fmtRow, m.label(field, fmt.Sprintf("Part %d:", slot+1)), value))
	}

	button := blurredButton
	if m.focusIndex == fieldSubmit {
		button = focusedButton
	}

	b.WriteString(fmt.Sprintf("\n %s\n\n", button))

	if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}

		b.WriteString(" " + style.Render(m.status) + "\n\n")
	}

	b.WriteString(helpStyle.Render(" tab/shift+tab: navigate • ←/→: change • space: toggle/pick • ctrl+o: browse • ctrl+s: submit • esc: quit"))

	return b.String()
}

func (m FormModel) label(field int, text string) string {
	if m.focusIndex == field {
		return focusedStyle.Render(text)
	}

	return blurredStyle.Render(text)
}

func (m FormModel) choice(field int, value string) string {
	if m.focusIndex == field {
		return focusedStyle.Render("< " + value + " >")
	}

	return "  " + value
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
