package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/physics"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/round"
)

// RoundFactory builds a fresh round controller for seed.
type RoundFactory func(seed int64) *round.Controller

// Options configures a terminal session.
type Options struct {
	Left     registry.Player
	Right    registry.Player
	NewRound RoundFactory
	Runtime  core.RuntimeConfig
	Record   bool
	Logger   *log.Logger
}

// Session is what a finished terminal session leaves behind. Frames are
// only kept when recording; they cover the round started with Seed.
type Session struct {
	Seed        int64
	Frames      []round.Frame
	PointsLeft  int
	PointsRight int
}

// Model is the Bubble Tea model for a pong session.
type Model struct {
	opts     Options
	ctrl     *round.Controller
	seed     int64
	recorder *round.Recorder
	screen   *core.Screen
	keys     KeyMap
	mapper   *KeyMapper
	help     help.Model
	input    core.SeatInput
	logger   *log.Logger
	lastTick time.Time
	paused   bool
	quitting bool
}

// NewModel creates a model and its first round.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	m := Model{
		opts:   opts,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		keys:   keys,
		mapper: NewKeyMapper(keys, soloSeat(opts.Left, opts.Right)),
		help:   help.New(),
		input:  core.NewSeatInput(),
		logger: logger,
	}
	m.startRound(opts.Runtime.Seed)
	return m
}

// soloSeat returns the side of the only keyboard player, or SideNone.
func soloSeat(left, right registry.Player) physics.Side {
	_, l := left.(registry.InputReceiver)
	_, r := right.(registry.InputReceiver)
	switch {
	case l && !r:
		return physics.SideLeft
	case r && !l:
		return physics.SideRight
	default:
		return physics.SideNone
	}
}

func (m *Model) startRound(seed int64) {
	m.seed = seed
	m.ctrl = m.opts.NewRound(seed)
	if m.opts.Record {
		m.recorder = round.NewRecorder(0)
	}
	m.logger.Info("round started",
		"seed", seed,
		"left", m.opts.Left.ID(),
		"right", m.opts.Right.ID())
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	side, action := m.mapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionRestart:
		m.startRound(m.seed + 1)
		m.paused = false
	case core.ActionUp, core.ActionDown:
		m.input.Set(side, action)
	}
	return m, nil
}

// handleTick advances the round by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if !m.paused {
		res := m.step(m.opts.Runtime.StepDelta(elapsed))
		if res.Scored != physics.SideNone {
			left, right := m.ctrl.Points()
			m.logger.Info("point", "crossed", res.Scored, "left", left, "right", right)
		}
	}
	m.input.Clear()

	return m, tickCmd(m.opts.Runtime.TickInterval())
}

// step asks both players for their intent and feeds one frame to the round.
func (m *Model) step(delta float64) round.StepResult {
	view := m.ctrl.View()
	frame := round.Frame{
		Delta: delta,
		Left:  m.intent(physics.SideLeft, m.opts.Left, view),
		Right: m.intent(physics.SideRight, m.opts.Right, view),
	}
	if m.recorder != nil {
		m.recorder.Record(frame)
	}
	return m.ctrl.Step(frame)
}

func (m *Model) intent(side physics.Side, p registry.Player, view round.View) physics.Direction {
	if r, ok := p.(registry.InputReceiver); ok {
		r.Feed(m.input.Side(side))
	}
	return p.Intent(side, view)
}

// Session returns the seed, frames and points of the current round.
func (m Model) Session() Session {
	s := Session{Seed: m.seed}
	s.PointsLeft, s.PointsRight = m.ctrl.Points()
	if m.recorder != nil {
		s.Frames = m.recorder.Frames()
	}
	return s
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.ctrl.Snapshot())
	if m.paused {
		DrawMessage(m.screen, "PAUSED", "p to resume")
	}

	return RenderScreen(m.screen) + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// Run starts the Bubble Tea program and returns the finished session.
func Run(opts Options) (Session, error) {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Session{}, fmt.Errorf("tui: run: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Session{}, fmt.Errorf("tui: unexpected model %T", final)
	}
	return m.Session(), nil
}
