package ui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hailam/fenboard/internal/board"
	"github.com/hailam/fenboard/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
)

// StatusHeight is the height of the status bar under the board.
const StatusHeight = 48

var (
	background = color.RGBA{40, 44, 52, 255}    // Dark gray
	textColor  = color.RGBA{220, 220, 220, 255} // Light gray
	dimText    = color.RGBA{150, 150, 150, 255}
)

// ErrNoPositions is returned when the viewer is started with nothing to show.
var ErrNoPositions = errors.New("no positions to view")

// Entry is a named position shown by the viewer.
type Entry struct {
	Name     string
	Position *board.Position
}

// Options configure the viewer window.
type Options struct {
	Render render.Options
	Title  string
	Logger zerolog.Logger
}

// browser holds the navigation state, independent of Ebitengine.
type browser struct {
	entries []Entry
	index   int
	flip    bool
	coords  bool
}

// apply performs a navigation action and reports whether the view changed.
func (b *browser) apply(a action) bool {
	n := len(b.entries)
	prev := *b
	switch a {
	case actionNext:
		b.index = (b.index + 1) % n
	case actionPrev:
		b.index = (b.index + n - 1) % n
	case actionFirst:
		b.index = 0
	case actionLast:
		b.index = n - 1
	case actionFlip:
		b.flip = !b.flip
	case actionCoordinates:
		b.coords = !b.coords
	}
	return b.index != prev.index || b.flip != prev.flip || b.coords != prev.coords
}

func (b *browser) current() Entry {
	return b.entries[b.index]
}

// title is the first status line.
func (b *browser) title() string {
	e := b.current()
	pos := e.Position
	s := fmt.Sprintf("%s  [%d/%d]  %s to move", e.Name, b.index+1, len(b.entries), pos.SideToMove)
	if b.flip {
		s += "  (flipped)"
	}
	return s
}

// Game implements ebiten.Game for browsing positions.
type Game struct {
	browser
	opts  render.Options
	board *ebiten.Image
	dirty bool
	log   zerolog.Logger
}

// NewGame creates a viewer over entries.
func NewGame(entries []Entry, opts Options) (*Game, error) {
	if len(entries) == 0 {
		return nil, ErrNoPositions
	}
	for _, e := range entries {
		if e.Position == nil {
			return nil, fmt.Errorf("entry %q has no position", e.Name)
		}
	}
	return &Game{
		browser: browser{
			entries: entries,
			flip:    opts.Render.Flip,
			coords:  opts.Render.Coordinates,
		},
		opts:  opts.Render,
		dirty: true,
		log:   opts.Logger,
	}, nil
}

func (g *Game) renderOptions() render.Options {
	o := g.opts
	o.Flip = g.flip
	o.Coordinates = g.coords
	return o
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	a := pollAction()
	if a == actionQuit {
		return ebiten.Termination
	}
	if a != actionNone && g.apply(a) {
		g.dirty = true
		g.log.Debug().Str("name", g.current().Name).Bool("flip", g.flip).Msg("view changed")
	}
	if !g.dirty {
		return nil
	}

	img, err := render.Image(g.current().Position, g.renderOptions())
	if err != nil {
		return fmt.Errorf("render %q: %w", g.current().Name, err)
	}
	if g.board != nil {
		g.board.Deallocate()
	}
	g.board = ebiten.NewImageFromImage(img)
	g.dirty = false
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.board == nil {
		return
	}
	screen.DrawImage(g.board, nil)

	pos := g.current().Position
	w, h := g.renderOptions().Size()
	drawText(screen, g.title(), boldFace, 8, float64(h)+6, textColor)
	drawText(screen, pos.FEN(), regularFace, 8, float64(h)+26, dimText)

	hash := fmt.Sprintf("%016x", pos.Hash())
	hw, _ := MeasureText(hash, regularFace)
	drawText(screen, hash, regularFace, float64(w)-hw-8, float64(h)+8, dimText)
}

// Layout implements ebiten.Game. The logical screen is the board image
// plus the status bar; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.renderOptions().Size()
	return w, h + StatusHeight
}

func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// Run opens the viewer window and blocks until it is closed.
func Run(entries []Entry, opts Options) error {
	g, err := NewGame(entries, opts)
	if err != nil {
		return err
	}
	title := opts.Title
	if title == "" {
		title = "fenboard"
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	opts.Logger.Info().Int("positions", len(entries)).Msg("viewer started")
	return ebiten.RunGame(g)
}
