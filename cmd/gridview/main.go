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

// Gridview shows a rendered scene in the terminal, mapping cell
// intensity to shading characters.  Press q, Esc or Ctrl-C to quit.
//
// Usage:
//
//	gridview [-scene name | -file scene.yml]
package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/cells/grid"
	"seehuhn.de/go/cells/internal/scene"
)

// shades maps intensity to characters of increasing visual weight.
var shades = []rune(" .:-=+*#%@")

func main() {
	name := flag.String("scene", "fan", "name of a built-in scene")
	file := flag.String("file", "", "YAML scene file (overrides -scene)")
	flag.Parse()

	var sc *scene.Scene
	var err error
	if *file != "" {
		sc, err = scene.Load(*file)
	} else {
		var ok bool
		sc, ok = scene.Lookup(*name)
		if !ok {
			log.Fatalf("unknown scene %q", *name)
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	g, err := scene.Render(sc)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	draw(screen, g)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, g)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				ev.Rune() == 'q' {
				return
			}
		}
	}
}

func draw(screen tcell.Screen, g *grid.Grid[uint8]) {
	screen.Clear()
	termW, termH := screen.Size()
	w := min(g.Width(), termW)
	h := min(g.Height(), termH)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := g.Get(x, y)
			ch := shades[int(v)*len(shades)/256]
			screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
		}
	}
	screen.Show()
}
