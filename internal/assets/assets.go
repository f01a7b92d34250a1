// Package assets loads the runner's sprites.
//
// A sprite is a small block of text art. Spaces are transparent, and the
// renderer scales a sprite to whatever box it is drawn into, so the art only
// fixes proportions, not size.
package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/sync/errgroup"
)

//go:embed sprites/*.txt
var embedded embed.FS

// Names of the sprites every game needs.
const (
	Run1     = "run1"
	Run2     = "run2"
	Ground   = "ground"
	Elevated = "elevated"
)

// Required lists the sprites Load must find, in load order.
var Required = []string{Run1, Run2, Ground, Elevated}

// ErrEmptySprite is returned for a sprite file without any visible cells.
var ErrEmptySprite = errors.New("assets: sprite is empty")

// Sprite is a rectangular block of runes.
type Sprite struct {
	Name  string
	rows  [][]rune
	width int
}

// Width returns the sprite width in cells.
func (s Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in cells.
func (s Sprite) Height() int {
	return len(s.rows)
}

// At returns the rune at (x, y), or a space outside the sprite.
func (s Sprite) At(x, y int) rune {
	if y < 0 || y >= len(s.rows) || x < 0 || x >= len(s.rows[y]) {
		return ' '
	}
	return s.rows[y][x]
}

// Sample returns the rune nearest to the normalized coordinate (u, v),
// where both run over [0, 1).
func (s Sprite) Sample(u, v float64) rune {
	if s.width == 0 || len(s.rows) == 0 {
		return ' '
	}
	return s.At(int(u*float64(s.width)), int(v*float64(len(s.rows))))
}

// Parse builds a sprite from text art. Trailing blank lines are dropped and
// short lines are padded with spaces.
func Parse(name, text string) (Sprite, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	sp := Sprite{Name: name}
	for _, line := range lines {
		row := []rune(line)
		sp.width = max(sp.width, len(row))
		sp.rows = append(sp.rows, row)
	}
	if sp.width == 0 {
		return Sprite{}, fmt.Errorf("%w: %s", ErrEmptySprite, name)
	}
	for i, row := range sp.rows {
		for len(row) < sp.width {
			row = append(row, ' ')
		}
		sp.rows[i] = row
	}
	return sp, nil
}

// Sprites is the complete set the game draws with.
type Sprites struct {
	Run      [2]Sprite
	Ground   Sprite
	Elevated Sprite
}

// Embedded returns the built-in sprite files.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}

// Load reads every required sprite from fsys (files named <name>.txt) in
// parallel. It returns only when all sprites are ready; the first failure
// cancels the remaining reads and is returned.
func Load(ctx context.Context, fsys fs.FS) (Sprites, error) {
	loaded := make([]Sprite, len(Required))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range Required {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, name+".txt")
			if err != nil {
				return fmt.Errorf("assets: cannot load sprite %q: %w", name, err)
			}
			sp, err := Parse(name, string(data))
			if err != nil {
				return err
			}
			loaded[i] = sp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Sprites{}, err
	}

	return Sprites{
		Run:      [2]Sprite{loaded[0], loaded[1]},
		Ground:   loaded[2],
		Elevated: loaded[3],
	}, nil
}
