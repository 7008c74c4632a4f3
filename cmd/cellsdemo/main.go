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

// Cellsdemo renders a line-drawing scene to a grayscale PNG file.
//
// Usage:
//
//	cellsdemo [-scene name | -file scene.yml] [-o out.png]
//	cellsdemo -list
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/cells/grid"
	"seehuhn.de/go/cells/internal/scene"
)

func main() {
	name := flag.String("scene", "cross", "name of a built-in scene")
	file := flag.String("file", "", "YAML scene file (overrides -scene)")
	out := flag.String("o", "scene.png", "output PNG file")
	list := flag.Bool("list", false, "list built-in scenes and exit")
	flag.Parse()

	if *list {
		for _, category := range slices.Sorted(maps.Keys(scene.All)) {
			for _, sc := range scene.All[category] {
				fmt.Printf("%s/%s (%dx%d, %d segments)\n",
					category, sc.Name, sc.Width, sc.Height, len(sc.Segments))
			}
		}
		return
	}

	sc, err := loadScene(*file, *name)
	if err != nil {
		log.Fatal(err)
	}

	g, err := scene.Render(sc)
	if err != nil {
		log.Fatal(err)
	}
	if err := grid.WritePNG(g, *out); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%dx%d)\n", *out, g.Width(), g.Height())
}

func loadScene(file, name string) (*scene.Scene, error) {
	if file != "" {
		return scene.Load(file)
	}
	sc, ok := scene.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (try -list)", name)
	}
	return sc, nil
}
