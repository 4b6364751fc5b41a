package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/focset/internal/catalog"
)

type partItem struct {
	name    string
	warning bool
}

func (i partItem) FilterValue() string { return i.name }

type partDelegate struct{}

func (d partDelegate) Height() int                             { return 1 }
func (d partDelegate) Spacing() int                            { return 0 }
func (d partDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d partDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(partItem)
	if !ok {
		return
	}

	str := i.name
	if i.warning {
		str += " " + warningStyle.Render("!")
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + s[0])
		}
	}

	_, _ = fmt.Fprint(w, fn(str))
}

// partList is the filterable chooser opened from a part slot.
type partList struct {
	list list.Model
	slot int
}

func newPartList(slot int, current string, width, height int) partList {
	choices := catalog.SlotChoices(slot)
	items := make([]list.Item, len(choices))
	selected := 0

	for i, name := range choices {
		_, special := catalog.Special(name)
		if renamed, ok := catalog.Renamed(name); ok {
			_, special = catalog.Special(renamed)
		}

		items[i] = partItem{name: name, warning: special}

		if name == current {
			selected = i
		}
	}

	if width == 0 {
		width = 40
	}

	if height == 0 {
		height = 20
	}

	l := list.New(items, partDelegate{}, width, height)
	l.Title = fmt.Sprintf("Part %d", slot+1)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Select(selected)

	return partList{list: l, slot: slot}
}

// filtering reports whether keys currently go to the filter input.
func (p partList) filtering() bool {
	return p.list.FilterState() == list.Filtering
}

func (p partList) selected() (string, bool) {
	i, ok := p.list.SelectedItem().(partItem)
	if !ok {
		return "", false
	}

	return i.name, true
}

func (p partList) update(msg tea.Msg) (partList, tea.Cmd) {
	var cmd tea.Cmd

	p.list, cmd = p.list.Update(msg)

	return p, cmd
}

func (p partList) view() string {
	return docStyle.Render(p.list.View())
}
