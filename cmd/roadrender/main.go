package main

import (
	"flag"
	"fmt"
	"os"

	mapmachine "github.com/shengy90/map-machine"
)

var (
	osmFileName = flag.String("file", "my_map.osm.pbf", "Filename of *.osm.pbf file (it has to be compressed)")
	out         = flag.String("out", "my_map.svg", "Filename of output SVG document")
	width       = flag.Float64("width", 1000, "Width of output SVG document")
	height      = flag.Float64("height", 1000, "Height of output SVG document")
	unitsPerKm  = flag.Float64("zoom", 1000, "Drawing units per kilometer on the ground")
	blur        = flag.Bool("blur", false, "Blur borders of bridges")
	captions    = flag.Bool("captions", false, "Draw road names along the lines")
	verbose     = flag.Bool("verbose", false, "Print tag parsing warnings and timings")
	dumpGeoJSON = flag.Bool("geojson", false, "Print GeoJSON of projected road geometry to stdout")
)

func main() {
	flag.Parse()

	cfg := mapmachine.DefaultRoadsConfiguration()
	cfg.UnitsPerKm = *unitsPerKm
	cfg.Verbose = *verbose

	roads, projector, err := mapmachine.ImportRoadsFromOSMFile(*osmFileName, cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	sink := mapmachine.NewSVGSink(*width, *height)
	roads.Draw(sink, projector, mapmachine.RenderOptions{
		Blur:     *blur,
		Captions: *captions,
	})

	outFile, err := os.Create(*out)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := sink.WriteTo(outFile); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *dumpGeoJSON {
		for _, road := range roads.Roads() {
			fmt.Println(road.GeoJSON())
		}
	}
}
