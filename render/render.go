// Package render rasterizes a maze.Grid, optionally overlaid with a search
// path and the set of explored cells, and marks start and goal with arrows.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
)

// ErrNilGrid is returned when no grid is given.
var ErrNilGrid = errors.New("render: grid is nil")

// Palette used for every image.
var (
	WallColor     = color.RGBA{0, 0, 0, 255}
	FreeColor     = color.RGBA{255, 255, 255, 255}
	PathColor     = color.RGBA{220, 60, 60, 255}
	ExploredColor = color.RGBA{200, 220, 255, 255}
	StartColor    = color.RGBA{40, 180, 70, 255}
	GoalColor     = color.RGBA{100, 120, 255, 255}
)

const (
	// DefaultCellSize is the side of one grid cell in pixels.
	DefaultCellSize = 8
	// arrows are only drawn when a cell is at least this wide
	minArrowCell = 4
)

// Option configures Image.
type Option func(*options)

type options struct {
	cell     int
	explored []maze.Position
}

// WithCellSize sets the pixel side of one cell. Panics if n < 1.
func WithCellSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("render: WithCellSize(%d)", n))
	}
	return func(o *options) { o.cell = n }
}

// WithExplored shades the given cells, e.g. those collected by
// search.WithOnVisit.
func WithExplored(ps []maze.Position) Option {
	return func(o *options) { o.explored = ps }
}

// gridImage is a lazily evaluated image.Image over a grid.
type gridImage struct {
	grid     *maze.Grid
	cell     int
	path     map[maze.Position]bool
	explored map[maze.Position]bool
}

func (gi *gridImage) ColorModel() color.Model { return color.RGBAModel }

func (gi *gridImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, gi.grid.Cols()*gi.cell, gi.grid.Rows()*gi.cell)
}

func (gi *gridImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(gi.Bounds()) {
		return color.Transparent
	}
	p := maze.Pos(y/gi.cell, x/gi.cell)
	switch {
	case gi.grid.Cell(p) == maze.Wall:
		return WallColor
	case gi.path[p]:
		return PathColor
	case gi.explored[p]:
		return ExploredColor
	}
	return FreeColor
}

// Image draws g. sol may be nil; an empty solution draws no path.
func Image(g *maze.Grid, sol *search.Solution, opts ...Option) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := options{cell: DefaultCellSize}
	for _, opt := range opts {
		opt(&o)
	}

	base := &gridImage{
		grid:     g,
		cell:     o.cell,
		path:     make(map[maze.Position]bool),
		explored: make(map[maze.Position]bool, len(o.explored)),
	}
	if sol != nil {
		for _, p := range sol.Positions() {
			base.path[p] = true
		}
	}
	for _, p := range o.explored {
		base.explored[p] = true
	}

	pic := image_utils.NewCompositeImage()
	if err := pic.AddImage(image_utils.ToRGBA(base), image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: base image: %w", err)
	}
	if o.cell >= minArrowCell {
		if err := addArrow(pic, image_utils.RightArrow(StartColor), g.Start(), o.cell); err != nil {
			return nil, fmt.Errorf("render: start arrow: %w", err)
		}
		if err := addArrow(pic, image_utils.DownArrow(GoalColor), g.Goal(), o.cell); err != nil {
			return nil, fmt.Errorf("render: goal arrow: %w", err)
		}
	}

	return image_utils.ToRGBA(pic), nil
}

// layer is the part of the composite image addArrow needs.
type layer interface {
	AddImage(pic image.Image, offset image.Point) error
}

// addArrow scales arrow to one cell and places it over p.
func addArrow(pic layer, arrow image.Image, p maze.Position, cell int) error {
	scaled := image_utils.ResizeImage(arrow, cell, cell)
	return pic.AddImage(scaled, image.Pt(p.Col*cell, p.Row*cell))
}

// WritePNG draws g and encodes it as PNG into w.
func WritePNG(w io.Writer, g *maze.Grid, sol *search.Solution, opts ...Option) error {
	img, err := Image(g, sol, opts...)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
