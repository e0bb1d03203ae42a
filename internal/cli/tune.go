package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mverdi/wallplan/internal/model"
)

var (
	tuneSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	tuneDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newTuneCmd creates the tune command, an interactive terminal view where
// spacing and stud counts can be adjusted while placements update live.
func newTuneCmd() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Interactively tune spacing and stud counts",
		Long: `Tune opens a terminal view with live recomputation: every key press
rebuilds the full configuration, so positions, height compositions, and
narrow block warnings always reflect the current values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.resolve()
			if err != nil {
				return err
			}
			// Start from a resolved spacing so the first adjustment is
			// relative to a concrete value, not the suggestion sentinel.
			if in.SpacingMm == 0 {
				cats, err := model.ClassifyBlocks(in.Blocks)
				if err != nil {
					return err
				}
				in.SpacingMm = model.SuggestSpacing(cats)
			}

			p := tea.NewProgram(newTuneModel(in))
			final, err := p.Run()
			if err != nil {
				return err
			}

			m := final.(tuneModel)
			if cfg, err := model.BuildConfig(m.input); err == nil {
				printNewline()
				printConfig(cfg)
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

// tuneModel is the bubbletea model for the live tuner. It keeps only the
// raw input; the configuration is rebuilt on every View so the display can
// never drift from what compute would produce.
type tuneModel struct {
	input  model.AssemblyInput
	cursor int // selected category, 0..2
}

func newTuneModel(in model.AssemblyInput) tuneModel {
	return tuneModel{input: in}
}

func (m tuneModel) Init() tea.Cmd {
	return nil
}

func (m tuneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < 2 {
				m.cursor++
			}
		case "left", "h":
			if m.input.SpacingMm > 1 {
				m.input.SpacingMm--
			}
		case "right", "l":
			m.input.SpacingMm++
		case "H":
			if m.input.SpacingMm > 10 {
				m.input.SpacingMm -= 10
			}
		case "L":
			m.input.SpacingMm += 10
		case "+", "=":
			m.adjustCount(1)
		case "-", "_":
			m.adjustCount(-1)
		}
	}
	return m, nil
}

// adjustCount changes the requested stud count of the selected category,
// keeping it at least 1.
func (m *tuneModel) adjustCount(delta int) {
	id := model.CategoryIDs[m.cursor]
	count := m.input.Counts.For(id) + delta
	if count < 1 {
		count = 1
	}
	switch id {
	case model.CategoryLarge:
		m.input.Counts.Large = count
	case model.CategoryMedium:
		m.input.Counts.Medium = count
	default:
		m.input.Counts.Small = count
	}
}

func (m tuneModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tune Assembly"))
	b.WriteString("\n")
	b.WriteString(tuneDimStyle.Render("←/→ spacing ±1  shift ±10  ↑/↓ category  +/- studs  ⏎ accept  q quit"))
	b.WriteString("\n\n")

	cfg, err := model.BuildConfig(m.input)
	if err != nil {
		b.WriteString(fmt.Sprintf("Spacing: %s mm\n\n", StyleHighlight.Render(fmt.Sprintf("%.0f", m.input.SpacingMm))))
		b.WriteString(styleIconError.Render(iconError) + " " + err.Error() + "\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Spacing: %s mm    Studs per course: %s\n\n",
		StyleHighlight.Render(fmt.Sprintf("%.0f", cfg.SpacingMm)),
		StyleHighlight.Render(fmt.Sprintf("%d", cfg.StudsPerCourse()))))

	rows := [][]string{}
	for i, id := range model.CategoryIDs {
		p := cfg.Placement(id)
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor + id.String(),
			fmt.Sprintf("%.0f x %.0f", p.Category.WidthMm, p.Category.HeightMm),
			fmt.Sprintf("%d / %d", len(p.PositionsMm), p.RequestedCount),
			formatPositions(p.PositionsMm),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tuneDimStyle).
		Headers("Category", "Block (mm)", "Studs", "Offsets (mm)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == m.cursor {
				return tuneSelectedStyle
			}
			return lipgloss.NewStyle()
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	for _, w := range cfg.Warnings() {
		b.WriteString(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(w.String()) + "\n")
	}

	return b.String()
}
