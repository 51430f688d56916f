package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

var huhTheme = huh.ThemeCharm()

// chooserModel is a single-choice menu. The chosen option index is in
// result after done is set.
type chooserModel struct {
	form   *huh.Form
	result *int
	done   bool
	quit   bool
}

func newChooserModel(title, desc string, labels []string) chooserModel {
	result := new(int)

	opts := make([]huh.Option[int], len(labels))
	for i, l := range labels {
		opts[i] = huh.NewOption(l, i)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Description(desc).
				Options(opts...).
				Value(result),
		),
	).WithTheme(huhTheme)

	return chooserModel{form: form, result: result}
}

func (m chooserModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m chooserModel) Update(msg tea.Msg) (chooserModel, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.done = true
	case huh.StateAborted:
		m.quit = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m chooserModel) View() string {
	return m.form.View()
}

// selectorModel is a multi-choice menu over option indices. Entries
// marked as defaults start selected.
type selectorModel struct {
	form   *huh.Form
	result *[]int
	done   bool
	quit   bool
}

func newSelectorModel(title string, labels []string, preselected []int) selectorModel {
	// heap-allocated so the form's captured pointer stays valid
	result := &[]int{}
	*result = append(*result, preselected...)

	opts := make([]huh.Option[int], len(labels))
	for i, l := range labels {
		opts[i] = huh.NewOption(l, i)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title(title).
				Description("space: toggle  •  enter: confirm  •  /: filter  •  q: quit").
				Options(opts...).
				Filterable(true).
				Value(result),
		),
	).WithTheme(huhTheme).WithHeight(20)

	return selectorModel{form: form, result: result}
}

func (m selectorModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m selectorModel) Update(msg tea.Msg) (selectorModel, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.done = true
	case huh.StateAborted:
		m.quit = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m selectorModel) View() string {
	return m.form.View()
}

func (m selectorModel) selectedIndices() []int {
	if m.result == nil {
		return nil
	}
	return *m.result
}
