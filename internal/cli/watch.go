package cli

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/forcelayout/pkg/force"
	"github.com/matzehuels/forcelayout/pkg/graph"
	"github.com/matzehuels/forcelayout/pkg/pipeline"
	"github.com/matzehuels/forcelayout/pkg/vector"
)

const (
	watchTick     = 33 * time.Millisecond
	canvasWidth   = 80 // default canvas size until the terminal reports one
	canvasHeight  = 24
	chromeHeight  = 4 // title, status and help lines around the canvas
	minCanvasSide = 5

	glyphNode   = "●"
	glyphPinned = "◆"
	glyphEdge   = "·"
)

// Canvas styles
var (
	nodeStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	pinnedStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	edgeStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// watchCommand creates the watch command, an interactive terminal view of a
// running simulation.
func (c *CLI) watchCommand() *cobra.Command {
	var sim simFlags

	cmd := &cobra.Command{
		Use:   "watch [graph.json]",
		Short: "Watch a graph settle in the terminal",
		Long: `Watch a graph settle in the terminal.

Each frame advances the 2D simulation by one step and redraws the nodes on a
character canvas scaled to the current bounding box.

Keys: space pauses, r scatters the free nodes again, q quits. Clicking the
canvas pins or releases the node closest to the pointer.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeGraphFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := sim.resolve(cmd)
			if err != nil {
				return err
			}
			g, err := loadGraph(ctx, args[0])
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}

			opts := pipeline.FromConfig(cfg.Simulation)
			e := force.New2D(g, opts.Stiffness, opts.Repulsion, opts.Damping, opts.EngineOptions()...)
			m := newWatchModel(e, opts.TimeStep, opts.Seed)

			final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
			if err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("watch: %w", err)
			}
			if wm, ok := final.(watchModel); ok {
				printInfo("Stopped after %d steps, energy %.4g", wm.steps, wm.energy)
			}
			return nil
		},
	}

	sim.register(cmd, false)
	return cmd
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(watchTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// watchModel is the bubbletea model driving a 2D engine one step per tick.
type watchModel struct {
	engine *force.Engine2D
	dt     float64
	rng    *rand.Rand

	width, height int
	paused        bool
	steps         int
	energy        float64
}

func newWatchModel(e *force.Engine2D, dt float64, seed uint64) watchModel {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return watchModel{
		engine: e,
		dt:     dt,
		rng:    rand.New(rand.NewPCG(seed, seed+1)),
		width:  canvasWidth,
		height: canvasHeight,
		energy: e.TotalEnergy(),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.scatter()
			m.energy = m.engine.TotalEnergy()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.togglePin(msg.Y-1, msg.X) // the title takes the first line
		}
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minCanvasSide)
		m.height = max(msg.Height-chromeHeight, minCanvasSide)
	case tickMsg:
		if !m.paused {
			m.engine.Calculate(m.dt)
			m.steps++
			m.energy = m.engine.TotalEnergy()
		}
		return m, tick()
	}
	return m, nil
}

// scatter moves every free node to a fresh random position at rest.
func (m watchModel) scatter() {
	space := m.engine.Space()
	m.engine.EachNode(func(n *graph.Node, p *force.Particle[vector.Vec2]) {
		if n.Pinned {
			return
		}
		p.Position = space.Random(m.rng)
		p.Velocity = space.Zero()
	})
}

// togglePin flips the pin of the node nearest to a canvas cell.
func (m watchModel) togglePin(row, col int) {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return
	}
	box := m.engine.BoundingBox()
	size := box.Size()
	at := vector.Vec2{
		X: box.BottomLeftFront.X + float64(col)/float64(m.width-1)*size.X,
		Y: box.TopRightBack.Y - float64(row)/float64(m.height-1)*size.Y,
	}
	if n, _, _ := m.engine.Nearest(at); n != nil {
		n.Pinned = !n.Pinned
	}
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName + " watch"))
	b.WriteString("\n")
	b.WriteString(strings.Join(m.canvas(), "\n"))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space pause  r scatter  click pin  q quit"))

	return b.String()
}

func (m watchModel) status() string {
	state := styleUnsettled.Render("running")
	switch {
	case m.paused:
		state = StyleWarning.Render("paused")
	case m.engine.Converged():
		state = styleSettled.Render(iconSettled)
	}
	return StyleDim.Render("step ") + StyleNumber.Render(fmt.Sprint(m.steps)) +
		StyleDim.Render("  energy ") + StyleNumber.Render(fmt.Sprintf("%.4g", m.energy)) +
		StyleDim.Render("  ") + state
}

// canvas draws edges and nodes on an m.width by m.height character grid
// spanning the engine's bounding box, y axis pointing up.
func (m watchModel) canvas() []string {
	cells := make([][]string, m.height)
	for i := range cells {
		cells[i] = make([]string, m.width)
		for j := range cells[i] {
			cells[i][j] = " "
		}
	}

	box := m.engine.BoundingBox()
	project := func(p vector.Vec2) (row, col int, ok bool) {
		size := box.Size()
		if size.X <= 0 || size.Y <= 0 || !p.IsFinite() {
			return 0, 0, false
		}
		col = int(math.Round((p.X - box.BottomLeftFront.X) / size.X * float64(m.width-1)))
		row = int(math.Round((box.TopRightBack.Y - p.Y) / size.Y * float64(m.height-1)))
		if row < 0 || row >= m.height || col < 0 || col >= m.width {
			return 0, 0, false
		}
		return row, col, true
	}

	edge := edgeStyle.Render(glyphEdge)
	m.engine.EachEdge(func(_ *graph.Edge, s *force.Spring[vector.Vec2]) {
		from, to := s.Point1.Position, s.Point2.Position
		// Sample roughly one point per cell along the segment.
		n := max(m.width, m.height)
		for i := 1; i < n; i++ {
			t := float64(i) / float64(n)
			if row, col, ok := project(from.Add(to.Sub(from).Scale(t))); ok {
				cells[row][col] = edge
			}
		}
	})

	node, pinned := nodeStyle.Render(glyphNode), pinnedStyle.Render(glyphPinned)
	m.engine.EachNode(func(n *graph.Node, p *force.Particle[vector.Vec2]) {
		row, col, ok := project(p.Position)
		if !ok {
			return
		}
		if n.Pinned {
			cells[row][col] = pinned
		} else {
			cells[row][col] = node
		}
	})

	lines := make([]string, m.height)
	for i, row := range cells {
		lines[i] = strings.Join(row, "")
	}
	return lines
}
