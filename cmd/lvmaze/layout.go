package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvmaze/compress"
	"github.com/katalvlaran/lvmaze/maze"
)

// fileCodec is the codec used for --compressed files.
const fileCodec = compress.Alternating

// readGrid loads a maze byte layout, optionally compressed, from path.
func readGrid(path string, compressed bool) (*maze.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		r = compress.NewReader(f, fileCodec)
	}
	layout, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	g, err := maze.Decode(layout)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return g, nil
}

// writeGrid stores g's byte layout at path, optionally compressed.
func writeGrid(path string, g *maze.Grid, compressed bool) (err error) {
	layout, err := g.MarshalBinary()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !compressed {
		_, err = f.Write(layout)
		return err
	}
	cw := compress.NewWriter(f, fileCodec)
	if _, err = cw.Write(layout); err != nil {
		return err
	}
	return cw.Close()
}
