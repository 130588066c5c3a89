package hal

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TerminalConfig controls the terminal host.
type TerminalConfig struct {
	Options
	FPS int
}

// RunTerminal draws the framebuffer into the terminal with half-block cells
// and feeds terminal mouse and key events to the app. It blocks until the
// user quits or the app's step returns an error.
//
// Log lines would corrupt the screen, so Options.Log should point at a file
// or io.Discard.
func RunTerminal(newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	h := newHost(cfg.Options)
	m := newTermModel(h, newApp(h), time.Second/time.Duration(cfg.FPS))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	_, err := p.Run()
	if stopErr := h.aud.Stop(); err == nil {
		err = stopErr
	}
	if err != nil {
		return err
	}
	return m.err
}

type frameMsg struct{}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9a948a"))

type termModel struct {
	h     *hostHAL
	step  func() error
	frame time.Duration
	err   error

	cols, rows int
	grid       cellGrid

	focused bool
	pressed bool
	px, py  int

	cells map[uint32]string
}

func newTermModel(h *hostHAL, step func() error, frame time.Duration) *termModel {
	return &termModel{
		h:       h,
		step:    step,
		frame:   frame,
		focused: true,
		cells:   make(map[uint32]string),
	}
}

func (m *termModel) Init() tea.Cmd {
	return m.tick()
}

func (m *termModel) tick() tea.Cmd {
	return tea.Tick(m.frame, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.h.t.step(1)
		if m.step != nil {
			if err := m.step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.grid = newCellGrid(m.h.fb.width, m.h.fb.height, m.cols, m.rows-1)

	case tea.FocusMsg:
		m.focused = true

	case tea.BlurMsg:
		m.focused = false
		m.updatePointer()

	case tea.MouseMsg:
		if m.grid.scale == 0 {
			return m, nil
		}
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.pressed = true
		case msg.Action == tea.MouseActionRelease:
			m.pressed = false
		case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		default:
			return m, nil
		}
		m.px, m.py = m.grid.pixel(msg.X, msg.Y)
		m.updatePointer()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			m.h.kbd.emit(KeyEvent{Code: KeyEnter, Press: true})
		case "esc":
			m.h.kbd.emit(KeyEvent{Code: KeyEscape, Press: true})
		case "backspace":
			m.h.kbd.emit(KeyEvent{Code: KeyBackspace, Press: true})
		case "delete":
			m.h.kbd.emit(KeyEvent{Code: KeyDelete, Press: true})
		default:
			if msg.Type == tea.KeyRunes {
				for _, r := range msg.Runes {
					m.h.kbd.emit(KeyEvent{Press: true, Rune: r})
				}
			}
		}
	}
	return m, nil
}

func (m *termModel) updatePointer() {
	var contacts []contact
	if m.pressed {
		contacts = []contact{{x: m.px, y: m.py}}
	}
	m.h.ptr.update(contacts, m.focused)
}

func (m *termModel) View() string {
	g := m.grid
	if g.scale == 0 {
		return "terminal too small"
	}
	fb := m.h.fb
	s := g.scale
	w := ceilDiv(fb.width, s)
	rows := ceilDiv(fb.height, 2*s)

	var b strings.Builder
	for cy := 0; cy < rows; cy++ {
		x := s / 2
		yTop := 2*cy*s + s/2
		for cx := 0; cx < w; cx++ {
			b.WriteString(m.cell(fb.pixelAt(x, yTop), fb.pixelAt(x, yTop+s)))
			x += s
		}
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.Render("drag a digit to the stopper · c clear · q quit"))
	return b.String()
}

// cell renders an upper half block with top as foreground and bottom as
// background.
func (m *termModel) cell(top, bottom uint16) string {
	key := uint32(top)<<16 | uint32(bottom)
	if s, ok := m.cells[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(top))).
		Background(lipgloss.Color(hexColor(bottom))).
		Render("▀")
	m.cells[key] = s
	return s
}

func hexColor(p uint16) string {
	r, g, b := RGB888(p)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// cellGrid maps terminal cells to framebuffer pixels. Each cell shows two
// vertically stacked samples scale pixels apart; scale is the smallest
// integer step that fits the whole framebuffer.
type cellGrid struct {
	scale int
}

func newCellGrid(fbWidth, fbHeight, cols, rows int) cellGrid {
	if cols <= 0 || rows <= 0 || fbWidth <= 0 || fbHeight <= 0 {
		return cellGrid{}
	}
	s := max(ceilDiv(fbWidth, cols), ceilDiv(fbHeight, 2*rows), 1)
	return cellGrid{scale: s}
}

// pixel returns the framebuffer pixel at the centre of cell (cx, cy).
func (g cellGrid) pixel(cx, cy int) (x, y int) {
	return cx*g.scale + g.scale/2, 2*cy*g.scale + g.scale
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
