// Package tui is the interactive terminal sandbox: pick a scene, watch
// it run, spawn bodies and adjust gravity and time scale live.
package tui

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/physlab/internal/body"
	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/metrics"
	"github.com/san-kum/physlab/internal/sandbox"
	"github.com/san-kum/physlab/internal/shape"
	"github.com/san-kum/physlab/internal/vec"
	"github.com/san-kum/physlab/internal/world"
)

const (
	stateMenu = iota
	stateSim
)

const frameDt = 1.0 / 60.0

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	state    int
	cursor   int
	scenes   []string
	selected string

	w         *world.World
	canvas    *canvas
	paused    bool
	timeScale float64
	simTime   float64

	rng    *rand.Rand
	width  int
	height int
	status string
}

func newModel() model {
	scenes := config.ListPresets()
	// Stable menu order regardless of map iteration.
	sort.Strings(scenes)
	return model{
		state:     stateMenu,
		scenes:    scenes,
		canvas:    newCanvas(),
		timeScale: 1.0,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		width:     80,
		height:    24,
	}
}

// RunInteractive launches the sandbox TUI and blocks until quit.
func RunInteractive() error {
	p := tea.NewProgram(newModel())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim {
			return m, nil
		}
		if !m.paused {
			m.w.Step(sandbox.ClampDt(frameDt * m.timeScale))
			m.simTime += frameDt * m.timeScale
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateMenu {
		return m.menuKey(msg)
	}
	return m.simKey(msg)
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.scenes)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.scenes[m.cursor]
		if err := m.loadScene(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.state = stateSim
		m.paused = false
		m.simTime = 0
		return m, tick()
	}
	return m, nil
}

func (m *model) loadScene() error {
	sc := config.GetPreset(m.selected)
	if sc == nil {
		return fmt.Errorf("unknown scene %q", m.selected)
	}
	w, err := sc.BuildWorld()
	if err != nil {
		return err
	}
	m.w = w
	return nil
}

func (m model) simKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		m.status = ""
	case "p", " ":
		m.paused = !m.paused
	case "r":
		if err := m.loadScene(); err != nil {
			m.status = err.Error()
		}
		m.simTime = 0
	case "s":
		m.spawn(shape.Sphere)
	case "b":
		m.spawn(shape.Box)
	case "c":
		m.spawn(shape.Cylinder)
	case "g":
		m.w.Gravity.Y -= 1
	case "G":
		m.w.Gravity.Y += 1
	case "+", "=":
		if m.timeScale < 4 {
			m.timeScale *= 2
		}
	case "-":
		if m.timeScale > 0.25 {
			m.timeScale /= 2
		}
	}
	return m, nil
}

func (m *model) spawn(kind shape.Kind) {
	var s shape.Shape
	var err error
	switch kind {
	case shape.Sphere:
		s, err = shape.NewSphere(0.3 + m.rng.Float64()*0.4)
	case shape.Box:
		s, err = shape.NewBox(0.6 + m.rng.Float64()*0.8)
	case shape.Cylinder:
		s, err = shape.NewCylinder(0.3+m.rng.Float64()*0.3, 0.8+m.rng.Float64()*0.6)
	default:
		return
	}
	if err != nil {
		m.status = err.Error()
		return
	}

	span := m.w.Bounds.X/2 - 1
	pos := vec.New((m.rng.Float64()*2-1)*span, m.w.Bounds.Y-2, (m.rng.Float64()*2-1)*span)
	b := body.New(s, pos, 0.5+m.rng.Float64()*2)
	b.Restitution = 0.3 + m.rng.Float64()*0.5
	b.Friction = m.rng.Float64() * 0.5
	m.w.AddBody(b)
}

func (m model) View() string {
	if m.state == stateMenu {
		return m.menuView()
	}
	return m.simView()
}

func (m model) menuView() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render("physlab") + white.Render(" — rigid body sandbox") + "\n\n")
	for i, name := range m.scenes {
		cursor := "  "
		style := dim
		if i == m.cursor {
			cursor = green.Render("> ")
			style = white
		}
		sb.WriteString(cursor + style.Render(name) + "\n")
	}
	sb.WriteString("\n" + dimmer.Render("enter: start   j/k: move   q: quit") + "\n")
	if m.status != "" {
		sb.WriteString(yellow.Render(m.status) + "\n")
	}
	return sb.String()
}

func (m model) simView() string {
	m.canvas.draw(m.w)

	var sb strings.Builder
	sb.WriteString(cyan.Render("physlab") + dim.Render(" · "+m.selected) + "\n")
	sb.WriteString(canvasStyle.Render(m.canvas.String()) + "\n")

	state := green.Render("running")
	if m.paused {
		state = yellow.Render("paused")
	}
	sb.WriteString(fmt.Sprintf("%s  t=%s  bodies=%s  collisions=%s  ke=%s  g=%s  x%s\n",
		state,
		white.Render(fmt.Sprintf("%.1fs", m.simTime)),
		white.Render(fmt.Sprintf("%d", m.w.BodyCount())),
		magenta.Render(fmt.Sprintf("%d", m.w.CollisionCount())),
		white.Render(fmt.Sprintf("%.1f", metrics.Total(m.w))),
		white.Render(fmt.Sprintf("%.1f", m.w.Gravity.Y)),
		white.Render(fmt.Sprintf("%.2g", m.timeScale))))
	sb.WriteString(dimmer.Render("s/b/c: spawn   space: pause   r: reset   g/G: gravity   +/-: speed   esc: menu   q: quit"))
	if m.status != "" {
		sb.WriteString("\n" + yellow.Render(m.status))
	}
	return sb.String()
}
