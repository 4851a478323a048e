package styles

import "github.com/charmbracelet/lipgloss"

// Palette holds the raw colors for a theme
type Palette struct {
	Name       string
	Accent     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	DimGray    lipgloss.Color
	LightGray  lipgloss.Color
	Text       lipgloss.Color
	Green      lipgloss.Color
	Red        lipgloss.Color
	Yellow     lipgloss.Color
}

// Winter is the default light-accent palette
func Winter() Palette {
	return Palette{
		Name:       "winter",
		Accent:     lipgloss.Color("#057AFF"),
		Background: lipgloss.Color("#FFFFFF"),
		Surface:    lipgloss.Color("#E2E8F0"),
		DimGray:    lipgloss.Color("#6B7280"),
		LightGray:  lipgloss.Color("#9CA3AF"),
		Text:       lipgloss.Color("#394E6A"),
		Green:      lipgloss.Color("#10B981"),
		Red:        lipgloss.Color("#EF4444"),
		Yellow:     lipgloss.Color("#F59E0B"),
	}
}

// Dracula is the dark palette
func Dracula() Palette {
	return Palette{
		Name:       "dracula",
		Accent:     lipgloss.Color("#BD93F9"),
		Background: lipgloss.Color("#282A36"),
		Surface:    lipgloss.Color("#44475A"),
		DimGray:    lipgloss.Color("#6272A4"),
		LightGray:  lipgloss.Color("#B0B8D8"),
		Text:       lipgloss.Color("#F8F8F2"),
		Green:      lipgloss.Color("#50FA7B"),
		Red:        lipgloss.Color("#FF5555"),
		Yellow:     lipgloss.Color("#F1FA8C"),
	}
}

// Theme is a set of pre-built styles derived from a palette
type Theme struct {
	Palette Palette

	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style

	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style

	Badge    lipgloss.Style
	DimBadge lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	FormLabel  lipgloss.Style
	FormPrompt lipgloss.Style
}

// NewTheme builds a theme from a palette
func NewTheme(p Palette) Theme {
	return Theme{
		Palette: p,

		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent),
		InactiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.DimGray),

		Title:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.LightGray),
		Dim:      lipgloss.NewStyle().Foreground(p.DimGray),
		Accent:   lipgloss.NewStyle().Foreground(p.Accent),
		Error:    lipgloss.NewStyle().Foreground(p.Red),
		Success:  lipgloss.NewStyle().Foreground(p.Green),
		Warning:  lipgloss.NewStyle().Foreground(p.Yellow),

		SelectedItem: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 1),
		NormalItem: lipgloss.NewStyle().
			Foreground(p.LightGray).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(p.Background).
			Background(p.Accent).
			Padding(0, 1),
		DimBadge: lipgloss.NewStyle().
			Foreground(p.LightGray).
			Background(p.Surface).
			Padding(0, 1),

		HelpKey:  lipgloss.NewStyle().Foreground(p.Accent),
		HelpDesc: lipgloss.NewStyle().Foreground(p.DimGray),

		FormLabel: lipgloss.NewStyle().Foreground(p.LightGray),
		FormPrompt: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
	}
}

// ForName returns the theme for a stored theme name, defaulting to winter
func ForName(name string) Theme {
	if name == "dracula" {
		return NewTheme(Dracula())
	}
	return NewTheme(Winter())
}

// SpinnerFrames are the frames used for inline spinners
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// Pad pads a string to the given width
func Pad(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + spaces(width-len(r))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
