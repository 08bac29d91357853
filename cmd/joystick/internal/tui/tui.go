// Package tui drives a stick from terminal mouse events.
//
// Each terminal cell shows two vertically stacked pixels using an upper half
// block, so a cols x rows terminal hosts a cols x 2*rows surface with roughly
// square pixels.
package tui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/joystick/cmd/joystick/internal/host"
	"github.com/go-drift/joystick/pkg/gestures"
	"github.com/go-drift/joystick/pkg/graphics"
	"github.com/go-drift/joystick/pkg/widgets"
)

// Pointer is the pointer id used for the mouse.
const Pointer int64 = 1

const (
	// statusRows is the number of terminal rows reserved below the stick.
	statusRows = 1
	halfBlock  = "▀"
)

var (
	status = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	active = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

type cellKey struct {
	top, bottom color.RGBA
}

// Model is a bubbletea model hosting a single stick.
type Model struct {
	host    *host.Host
	cols    int
	rows    int
	pressed bool
	styles  map[cellKey]lipgloss.Style
}

// New returns a model whose surface is sized by the first WindowSizeMsg.
func New(opts host.Options) *Model {
	if opts.Size.IsEmpty() {
		opts.Size = graphics.Size{Width: widgets.DefaultJoystickSize, Height: widgets.DefaultJoystickSize}
	}
	return &Model{
		host:   host.New(opts),
		styles: make(map[cellKey]lipgloss.Style),
	}
}

// Host returns the hosted stick.
func (m *Model) Host() *host.Host {
	return m.host
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < statusRows+1 {
		rows = statusRows + 1
	}
	m.cols, m.rows = cols, rows
	size := graphics.Size{Width: float64(cols), Height: float64((rows - statusRows) * 2)}
	density := min(size.Width, size.Height) / widgets.DefaultJoystickSize
	m.host.Resize(size, density)
}

// PixelAt maps a terminal cell to the center of its pixel pair.
func PixelAt(x, y int) graphics.Offset {
	return graphics.Offset{X: float64(x) + 0.5, Y: float64(y*2) + 1}
}

func (m *Model) mouse(msg tea.MouseMsg) {
	pos := PixelAt(msg.X, msg.Y)
	ev := gestures.PointerEvent{PointerID: Pointer, Position: pos}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.pressed {
			return
		}
		m.pressed = true
		ev.Phase = gestures.PointerPhaseDown
	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		ev.Phase = gestures.PointerPhaseMove
	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		ev.Phase = gestures.PointerPhaseUp
	default:
		return
	}
	m.host.Dispatch(ev)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.cols == 0 {
		return "waiting for terminal size..."
	}
	img := m.host.Frame()
	var b strings.Builder
	pixelRows := (m.rows - statusRows) * 2
	for y := 0; y < pixelRows; y += 2 {
		for x := 0; x < m.cols; x++ {
			b.WriteString(m.style(pixel(img, x, y), pixel(img, x, y+1)).Render(halfBlock))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m *Model) style(top, bottom color.RGBA) lipgloss.Style {
	key := cellKey{top: top, bottom: bottom}
	if s, ok := m.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(top))).
		Background(lipgloss.Color(hex(bottom)))
	m.styles[key] = s
	return s
}

func (m *Model) statusLine() string {
	stick := m.host.Stick()
	state := stick.State()
	dir := stick.Direction()
	phase := status.Render(state.Phase.String())
	if m.pressed {
		phase = active.Render(state.Phase.String())
	}
	return phase + status.Render(fmt.Sprintf("  x=%+.2f y=%+.2f  q to quit", dir.X, dir.Y))
}

func pixel(img *image.RGBA, x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return color.RGBA{}
	}
	return img.RGBAAt(x, y)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Run starts the program on the terminal until the user quits or ctx ends.
func Run(ctx context.Context, opts host.Options) error {
	p := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
