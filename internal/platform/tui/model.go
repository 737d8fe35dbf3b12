package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cosmic-collision/internal/breakout"
	"github.com/vovakirdan/cosmic-collision/internal/config"
	"github.com/vovakirdan/cosmic-collision/internal/core"
	"github.com/vovakirdan/cosmic-collision/internal/difficulty"
)

// phase is where the player is in the session.
type phase int

const (
	phasePicker phase = iota
	phasePlaying
	phasePaused
	phaseGameOver
)

func (p phase) String() string {
	switch p {
	case phasePicker:
		return "picker"
	case phasePlaying:
		return "playing"
	case phasePaused:
		return "paused"
	case phaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Options configure a session.
type Options struct {
	World config.WorldConfig

	// Tier skips the picker when set.
	Tier *difficulty.Tier

	// Seed for the world RNG. Zero picks a new seed per game.
	Seed int64

	// TickRate in frames per second. Zero means 60.
	TickRate int

	// Logger receives gameplay events. Nil discards.
	Logger *log.Logger

	// Width and Height are the initial terminal size.
	Width, Height int
}

// Model is the Bubble Tea model of one Cosmic Collision session: a tier
// picker followed by games on the chosen tier.
type Model struct {
	opts    Options
	runtime core.RuntimeConfig
	logger  *log.Logger

	phase  phase
	picker tierPicker
	keys   KeyMap
	help   help.Model

	world *breakout.World
	clock *breakout.ManualClock
	held  heldInput
	tier  difficulty.Tier

	screen   *core.Screen
	err      error
	quitting bool
}

// NewModel creates a session model.
func NewModel(opts Options) Model {
	rc := core.DefaultConfig()
	if opts.Width > 0 {
		rc.ScreenW = opts.Width
	}
	if opts.Height > 0 {
		rc.ScreenH = opts.Height
	}
	if opts.TickRate > 0 {
		rc.TickRate = opts.TickRate
	}
	rc.Seed = opts.Seed

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = rc.ScreenW

	m := Model{
		opts:    opts,
		runtime: rc,
		logger:  logger,
		picker:  newTierPicker(opts.World, rc.ScreenH),
		keys:    DefaultKeyMap(),
		help:    h,
		screen:  core.NewScreen(rc.ScreenW, max(1, rc.ScreenH-1)),
	}
	if opts.Tier != nil {
		m = m.startGame(*opts.Tier)
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		// The bottom row holds the help line.
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phasePicker:
		switch action {
		case core.ActionUp:
			m.picker.Up()
		case core.ActionDown:
			m.picker.Down()
		case core.ActionConfirm, core.ActionLaunch:
			m = m.startGame(m.picker.Selected())
		}

	case phasePlaying:
		switch action {
		case core.ActionLeft, core.ActionRight, core.ActionLaunch:
			m.held.press(action)
		case core.ActionPause:
			m.phase = phasePaused
			m.held.reset()
		case core.ActionRestart:
			m.world.RestartLevel()
			m.held.reset()
		case core.ActionBack:
			m.phase = phasePicker
		}

	case phasePaused:
		switch action {
		case core.ActionPause, core.ActionConfirm:
			m.phase = phasePlaying
		case core.ActionRestart:
			m.world.RestartLevel()
			m.phase = phasePlaying
		case core.ActionBack:
			m.phase = phasePicker
		}

	case phaseGameOver:
		switch action {
		case core.ActionRestart, core.ActionConfirm:
			m = m.startGame(m.tier)
		case core.ActionBack:
			m.phase = phasePicker
		}
	}
	return m, nil
}

// handleTick advances the world one frame while playing. The manual clock
// only moves here, so pausing freezes effect timers.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase == phasePlaying && m.world != nil {
		dt := time.Second / time.Duration(m.runtime.TickRate)
		m.clock.Advance(dt)
		m.world.Update(dt.Seconds(), m.held.next())

		if m.world.GameOver() {
			m.phase = phaseGameOver
			m.held.reset()
			m.logger.Info("game over",
				"tier", m.tier,
				"score", m.world.Score(),
				"level", m.world.Level(),
			)
		}
	}
	return m, tickCmd(m.runtime.TickRate)
}

// startGame builds a fresh world on tier t. On failure the model stays on
// the picker and shows the error.
func (m Model) startGame(t difficulty.Tier) Model {
	seed := m.runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := &breakout.ManualClock{}
	world := breakout.NewWorld(m.opts.World,
		breakout.WithClock(clock),
		breakout.WithRand(breakout.NewSimpleRNG(seed)),
		breakout.WithLogger(m.logger),
	)
	if err := world.Start(t); err != nil {
		m.err = err
		m.phase = phasePicker
		return m
	}

	m.logger.Debug("new game", "tier", t, "seed", seed)
	m.err = nil
	m.world = world
	m.clock = clock
	m.tier = t
	m.held.reset()
	m.phase = phasePlaying
	return m
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.phase == phasePicker {
		v := m.picker.View(m.runtime.ScreenW)
		if m.err != nil {
			errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
			v += "\n" + centerText(errStyle.Render(m.err.Error()), m.runtime.ScreenW)
		}
		return v + "\n" + centerText(m.help.View(PickerHelp{KeyMap: m.keys}), m.runtime.ScreenW)
	}

	drawWorld(m.screen, m.world)
	if tooSmall(m.screen) {
		return RenderScreen(m.screen)
	}
	switch m.phase {
	case phasePaused:
		drawOverlay(m.screen, core.ColorBrightYellow,
			" PAUSED ",
			" p resume  r restart level  esc tiers ",
		)
	case phaseGameOver:
		drawOverlay(m.screen, core.ColorBrightRed,
			" GAME OVER ",
			fmt.Sprintf(" score %d  level %d ", m.world.Score(), m.world.Level()),
			" r play again  esc tiers  q quit ",
		)
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
