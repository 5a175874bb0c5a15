// Copyright (c) 2026 Harry Huang
package mosaic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadTiles reads a tile file from path.
func LoadTiles(path string) (*Tileset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ts, err := ParseTiles(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	modLog().Info().
		Str("path", path).
		Int("tiles", ts.Len()).
		Int("tileWidth", ts.TileWidth()).
		Msg("Tiles loaded")
	return ts, nil
}

// ParseTiles reads blocks of the form
//
//	Tile 2311:
//	..##.#..#.
//	##..#.....
//
// separated by blank lines.
func ParseTiles(r io.Reader) (*Tileset, error) {
	var tiles []Tile
	var cur *Tile

	flush := func() {
		if cur != nil {
			tiles = append(tiles, *cur)
			cur = nil
		}
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			flush()
			continue
		}

		if strings.HasPrefix(line, TILE_HEADER) {
			flush()
			id, err := parseTileHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			cur = &Tile{ID: id}
			continue
		}

		if cur == nil {
			return nil, fmt.Errorf("line %d: pixel row before tile header", lineNo)
		}
		cur.Rows = append(cur.Rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	return NewTileset(tiles)
}

func parseTileHeader(line string) (int64, error) {
	raw := strings.TrimSuffix(strings.TrimPrefix(line, TILE_HEADER), ":")
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad tile header %q: %w", line, err)
	}
	return id, nil
}
