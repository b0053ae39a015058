// Package assets embeds the piece artwork and synthesizes the sound effects.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessview/internal/board"
)

//go:embed pieces/*.svg
var pieceFiles embed.FS

// PiecePath returns the embedded asset name for p, e.g. "pieces/wN.svg".
func PiecePath(p board.Piece) string {
	c := "w"
	if p.Color == board.Black {
		c = "b"
	}
	return fmt.Sprintf("pieces/%s%s.svg", c, (board.Piece{Color: board.White, Kind: p.Kind}).String())
}

// RasterizePiece renders the piece SVG into a size×size RGBA image.
func RasterizePiece(p board.Piece, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rasterize %v: size %d", p, size)
	}
	name := PiecePath(p)
	data, err := pieceFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", name, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}
