// Package display provides a terminal preview of the overlay using Bubble
// Tea.
//
// The [Preview] type is a domain.Surface that projects lanes onto the
// terminal grid, so the overlay can be watched where no compositor is
// available. A text input at the bottom hands typed comments to a submit
// callback; Esc or Ctrl+C calls the quit callback.
package display

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/logger"
	"github.com/hammamikhairi/commentscreen/internal/storage"
)

// Compile-time interface check.
var _ domain.Surface = (*Preview)(nil)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))
)

// Option configures the preview.
type Option func(*Preview)

// WithSubmit sets the callback for typed comments.
func WithSubmit(fn func(text string)) Option {
	return func(p *Preview) {
		p.onSubmit = fn
	}
}

// WithQuit sets the callback for the quit key. Without one the preview
// just exits.
func WithQuit(fn func()) Option {
	return func(p *Preview) {
		p.onQuit = fn
	}
}

// WithFrameInterval sets how often the preview redraws.
func WithFrameInterval(d time.Duration) Option {
	return func(p *Preview) {
		if d > 0 {
			p.frameInterval = d
		}
	}
}

// Preview is the terminal surface.
type Preview struct {
	log           *logger.Logger
	visuals       *storage.VisualSet
	frameInterval time.Duration
	onSubmit      func(string)
	onQuit        func()
	isTerminal    func() bool

	mu      sync.Mutex
	region  domain.Rect
	created bool
	program *tea.Program
}

// New creates a preview. Call Create then Run (blocking).
func New(log *logger.Logger, opts ...Option) *Preview {
	p := &Preview{
		log:           log,
		visuals:       storage.NewVisualSet(),
		frameInterval: 50 * time.Millisecond,
		isTerminal:    func() bool { return term.IsTerminal(os.Stdout.Fd()) },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Create checks for a terminal and records the virtual screen region.
// Window attributes have no terminal equivalent and are ignored.
func (p *Preview) Create(region domain.Rect, _ domain.SurfaceOptions) error {
	if !p.isTerminal() {
		return domain.ErrPlatformUnavailable
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.created {
		return domain.ErrAlreadyPresented
	}
	p.region = region
	p.created = true
	p.log.Info("terminal preview of %s", region)
	return nil
}

// Attach starts drawing v.
func (p *Preview) Attach(v domain.Visual) { p.visuals.Attach(v) }

// Detach stops drawing the lane.
func (p *Preview) Detach(id domain.LaneID) { p.visuals.Detach(id) }

// Sync moves the lane's visual to rect.
func (p *Preview) Sync(id domain.LaneID, rect domain.Rect) { p.visuals.Sync(id, rect) }

// Destroy drops every visual and ends Run.
func (p *Preview) Destroy() error {
	p.mu.Lock()
	prog := p.program
	p.created = false
	p.mu.Unlock()

	p.visuals.Reset()
	if prog != nil {
		prog.Quit()
	}
	return nil
}

// Run starts the Bubble Tea event loop and blocks until quit.
func (p *Preview) Run() error {
	ti := textinput.New()
	ti.Prompt = "comment> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = inputStyle
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	cols, rows := 80, 24
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		cols, rows = w, h
	}

	p.mu.Lock()
	if !p.created {
		// Destroyed before the loop started.
		p.mu.Unlock()
		return nil
	}
	m := model{
		p:      p,
		region: p.region,
		input:  ti,
		width:  cols,
		height: rows,
	}
	p.program = tea.NewProgram(m, tea.WithAltScreen())
	prog := p.program
	p.mu.Unlock()

	_, err := prog.Run()

	p.mu.Lock()
	p.program = nil
	p.mu.Unlock()
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	p      *Preview
	region domain.Rect
	input  textinput.Model
	width  int
	height int
}

type frameMsg time.Time

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.frameCmd())
}

func (m model) frameCmd() tea.Cmd {
	return tea.Tick(m.p.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			onQuit := m.p.onQuit
			if onQuit == nil {
				return m, tea.Quit
			}
			// Runs outside Update: onQuit ends up calling Destroy, which
			// sends to the program.
			return m, func() tea.Msg {
				onQuit()
				return nil
			}
		case tea.KeyEnter:
			v := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if v == "" || m.p.onSubmit == nil {
				return m, nil
			}
			onSubmit := m.p.onSubmit
			return m, func() tea.Msg {
				onSubmit(v)
				return nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		const promptLen = 9 // "comment> "
		if msg.Width > promptLen {
			m.input.Width = msg.Width - promptLen
		}
		return m, nil

	case frameMsg:
		return m, m.frameCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	// Two rows for the separator and the prompt.
	rows := m.height - 2
	f := project(m.p.visuals.Snapshot(), m.region, m.width, rows)

	var b strings.Builder
	b.WriteString(f.render())
	b.WriteByte('\n')
	b.WriteString(borderStyle.Render(strings.Repeat("─", max(m.width, 0))))
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}
