package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
	"github.com/matzehuels/ringlayout/pkg/render/ring/styles"
	"github.com/matzehuels/ringlayout/pkg/scene"
)

const (
	clusteringStep = 0.05
	radiusStep     = 0.05 // fraction of the current radius
	minRadiusStep  = 1.0

	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 2.0

	defaultPreviewCols = 64
	defaultPreviewRows = 24
	previewChrome      = 14 // lines used by the title, help and stats table
)

var (
	previewGuideStyle = lipgloss.NewStyle().Foreground(colorDim)
	previewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	previewHeadStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "preview [scene]",
		Short: "Explore a scene's layout interactively in the terminal",
		Long: `Open an interactive terminal preview of a scene.

Keys:
  ←/→ or h/l   decrease/increase the clustering factor
  ↓/↑ or j/k   shrink/grow the radius
  r            reset to the scene's parameters
  q, esc       quit

Every change recomputes the layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{ScenePath: args[0]}
			c.applyLayoutFlags(cmd, &flags, &opts)

			sc, err := pipeline.LoadScene(opts)
			if err != nil {
				return err
			}
			c.Logger.Debug("preview", "scene", sc.Name, "items", sc.Counts().Total())

			p := tea.NewProgram(newPreviewModel(sc), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			if m, ok := final.(previewModel); ok {
				params := m.layout.Params.Normalized()
				printInfo("Last parameters: clustering %.2f, radius %.1f", params.Clustering, params.Radius)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// previewModel - Interactive layout preview
// =============================================================================

// previewModel is the bubbletea model behind `ringlayout preview`. It owns a
// private copy of the scene and recomputes the layout whenever clustering or
// radius change.
type previewModel struct {
	scene   scene.Scene
	initial scene.Scene
	layout  circle.Layout
	cols    int
	rows    int
}

func newPreviewModel(sc *scene.Scene) previewModel {
	m := previewModel{
		scene:   *sc,
		initial: *sc,
		cols:    defaultPreviewCols,
		rows:    defaultPreviewRows,
	}
	m.recompute()
	return m
}

func (m *previewModel) recompute() {
	m.layout = m.scene.Layout()
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l":
			m.setClustering(m.layout.Params.Clustering + clusteringStep)
		case "left", "h":
			m.setClustering(m.layout.Params.Clustering - clusteringStep)
		case "up", "k":
			m.setRadius(m.layout.Params.Radius + m.radiusDelta())
		case "down", "j":
			m.setRadius(m.layout.Params.Radius - m.radiusDelta())
		case "r":
			m.scene = m.initial
			m.recompute()
		}
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width-2, 16)
		m.rows = max(msg.Height-previewChrome, 8)
	}
	return m, nil
}

// setClustering stores k rounded to the step grid so repeated presses land
// exactly on 0 and 1.
func (m *previewModel) setClustering(k float64) {
	k = math.Round(k/clusteringStep) * clusteringStep
	m.scene.Clustering = circle.ClampClustering(k)
	m.recompute()
}

func (m *previewModel) setRadius(r float64) {
	r = math.Max(r, 0)
	m.scene.Radius = &r
	m.recompute()
}

func (m previewModel) radiusDelta() float64 {
	return math.Max(m.layout.Params.Radius*radiusStep, minRadiusStep)
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.scene.Name))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("←/→ clustering  ↑/↓ radius  r reset  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.canvas())
	b.WriteString("\n")
	b.WriteString(m.statsTable())
	b.WriteString("\n")
	return b.String()
}

// canvas plots the guide circle and one glyph per item on a character grid.
// Item glyphs are the section's letter in the section's color.
func (m previewModel) canvas() string {
	grid := make([][]string, m.rows)
	for r := range grid {
		grid[r] = make([]string, m.cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	p := m.layout.Params
	extent := p.Radius
	for _, it := range m.layout.Items {
		extent = math.Max(extent, it.Center.Distance(p.Center)+it.Diameter/2)
	}
	if extent <= 0 {
		extent = 1
	}
	// Fit 2*extent into the grid, keeping circles round on screen.
	scaleY := float64(m.rows-1) / (2 * extent)
	scaleY = math.Min(scaleY, float64(m.cols-1)/(2*extent*cellAspect))
	scaleX := scaleY * cellAspect

	plot := func(x, y float64) (int, int, bool) {
		col := int(math.Round(float64(m.cols-1)/2 + (x-p.Center.X)*scaleX))
		row := int(math.Round(float64(m.rows-1)/2 + (y-p.Center.Y)*scaleY))
		if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
			return 0, 0, false
		}
		return row, col, true
	}

	if p.Radius > 0 {
		steps := max(int(2*math.Pi*p.Radius*scaleX), 16)
		for i := range steps {
			a := float64(i) / float64(steps) * circle.FullCircle
			if r, c, ok := plot(p.Center.X+p.Radius*math.Cos(a), p.Center.Y+p.Radius*math.Sin(a)); ok {
				grid[r][c] = previewGuideStyle.Render("·")
			}
		}
	}
	for _, it := range m.layout.Items {
		if r, c, ok := plot(it.Center.X, it.Center.Y); ok {
			grid[r][c] = sectionGlyph(it.ID.Section)
		}
	}

	lines := make([]string, m.rows)
	for r, row := range grid {
		lines[r] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func sectionGlyph(section int) string {
	letter := string(rune('A' + section%26))
	return lipgloss.NewStyle().Foreground(lipgloss.Color(styles.SectionColor(section))).Bold(true).Render(letter)
}

func (m previewModel) statsTable() string {
	p := m.layout.Params
	overlaps := m.layout.OverlapCount()
	rows := [][]string{
		{"Items", fmt.Sprintf("%d", m.layout.Len())},
		{"Sections", fmt.Sprintf("%d", m.layout.SectionCount())},
		{"Clustering", fmt.Sprintf("%.2f", p.Clustering)},
		{"Radius", fmt.Sprintf("%.1f", p.Radius)},
		{"Center", fmt.Sprintf("%.1f, %.1f", p.Center.X, p.Center.Y)},
		{"Overlaps", fmt.Sprintf("%d", overlaps)},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return previewHeadStyle
			}
			if row == len(rows)-1 && overlaps > 0 {
				return StyleWarning
			}
			return StyleValue
		})
	return t.Render()
}
