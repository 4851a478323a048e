package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bakerskart/kart/internal/tui/styles"
)

// Field describes a single form input
type Field struct {
	Label       string
	Placeholder string
	Secret      bool
	Value       string
}

// Form is a vertical stack of labelled text inputs
type Form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	width  int
	theme  styles.Theme
}

// NewForm builds a form from field definitions, focusing the first input
func NewForm(title string, theme styles.Theme, fields ...Field) Form {
	labels := make([]string, len(fields))
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 120
		ti.Width = 40
		ti.Prompt = ""
		ti.PlaceholderStyle = theme.Dim
		if f.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		if f.Value != "" {
			ti.SetValue(f.Value)
		}
		labels[i] = f.Label
		inputs[i] = ti
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return Form{
		title:  title,
		labels: labels,
		inputs: inputs,
		theme:  theme,
	}
}

// SetSize sets the rendered width
func (f *Form) SetSize(width int) {
	f.width = width
	for i := range f.inputs {
		f.inputs[i].Width = width - 20
	}
}

// Values returns the current value of every field in order
func (f Form) Values() []string {
	vals := make([]string, len(f.inputs))
	for i := range f.inputs {
		vals[i] = strings.TrimSpace(f.inputs[i].Value())
	}
	return vals
}

// Update moves focus with tab/shift+tab and reports enter on the last
// field (or any field while only one exists) as submission
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateFocused(msg), false
	}

	switch keyMsg.String() {
	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.inputs))
		return f, nil, false
	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
		return f, nil, false
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return f, nil, true
		}
		f.setFocus(f.focus + 1)
		return f, nil, false
	}

	return f, f.updateFocused(msg), false
}

func (f *Form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *Form) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// View renders the form
func (f Form) View() string {
	var b strings.Builder

	b.WriteString(f.theme.Title.Render(f.title))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, l := range f.labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	for i := range f.inputs {
		label := styles.Pad(f.labels[i], labelWidth)
		if i == f.focus {
			b.WriteString(f.theme.Accent.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(f.theme.FormLabel.Render(label))
		b.WriteString("  ")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(f.theme.Dim.Render("tab: next field · enter: submit · esc: back"))

	return lipgloss.NewStyle().Width(f.width).Render(b.String())
}
