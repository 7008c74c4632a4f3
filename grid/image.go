// seehuhn.de/go/cells - shared cell buffers and line rasterisation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package grid

import (
	"image"
	"image/png"
	"os"
)

// Gray copies a byte-valued grid into a grayscale image, interpreting
// each cell as an intensity from 0 (black) to 255 (white).
func Gray(g *Grid[uint8]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		row := img.Pix[y*img.Stride:][:g.width]
		for x := range row {
			row[x] = g.arr.GetUnchecked(x + y*g.width)
		}
	}
	return img
}

// WritePNG saves a byte-valued grid as a grayscale PNG file.
func WritePNG(g *Grid[uint8], path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, Gray(g))
}
