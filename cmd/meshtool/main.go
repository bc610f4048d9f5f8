// meshtool is a CLI utility for inspecting and subdividing geospatial
// line geometry so it follows the curvature of the globe.
package main

import (
	"flag"
	"fmt"
	gomath "math"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/globemesh/internal/config"
	"github.com/Faultbox/globemesh/internal/feature"
	"github.com/Faultbox/globemesh/internal/geo"
	"github.com/Faultbox/globemesh/internal/locator"
	"github.com/Faultbox/globemesh/internal/logger"
	"github.com/Faultbox/globemesh/internal/mesh"
	"github.com/Faultbox/globemesh/internal/subdivide"
	"github.com/Faultbox/globemesh/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "subdivide", "sub":
		cmdSubdivide(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - geodesic mesh subdivision utility

Usage:
  meshtool <command> [options]

Commands:
  info <file.geojson>                Show geometry statistics
  subdivide <file.geojson>           Refine geometry to a granularity

Subdivide options:
  -config <path>       Config file (default ./meshtool.yaml if present)
  -granularity <deg>   Max angular edge span in degrees
  -max-elements <n>    Max index elements per output buffer
  -origin <lon,lat>    Emit vertices in a local tangent frame at this point
  -debug               Enable debug logging

Examples:
  meshtool info coastline.geojson
  meshtool subdivide -granularity 0.5 coastline.geojson
  meshtool subdivide -origin 11.57,48.14 route.geojson`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info <file.geojson>")
		os.Exit(1)
	}

	cfg := config.Default()
	m, err := feature.LoadFile(args[0], cfg.Globe.RadiusMeters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	segments := 0
	maxSpan := 0.0
	length := 0.0
	m.EachLine(func(a, b math.Vec3, _ bool) {
		segments++
		if g := geo.AngularSeparation(a, b); g > maxSpan {
			maxSpan = g
		}
		length += geo.SurfaceDistance(a, b)
	})

	fmt.Printf("Vertices:        %d\n", len(m.VertexArray()))
	fmt.Printf("Segments:        %d\n", segments)
	fmt.Printf("Max edge span:   %.4f deg\n", maxSpan*180/gomath.Pi)
	fmt.Printf("Surface length:  %.1f km\n", length/1000)
}

func cmdSubdivide(args []string) {
	fs := flag.NewFlagSet("subdivide", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	granularity := fs.Float64("granularity", 0, "max angular edge span in degrees")
	maxElements := fs.Int("max-elements", 0, "max index elements per buffer")
	origin := fs.String("origin", "", "lon,lat of the local tangent frame")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool subdivide [options] <file.geojson>")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *granularity > 0 {
		cfg.Subdivision.GranularityDeg = *granularity
	}
	if *maxElements > 0 {
		cfg.Subdivision.MaxElementsPerBuffer = *maxElements
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	m, err := feature.LoadFile(fs.Arg(0), cfg.Globe.RadiusMeters)
	if err != nil {
		logger.Error("loading geometry failed", zap.Error(err))
		os.Exit(1)
	}

	world2local := math.Identity()
	local2world := math.Identity()
	if *origin != "" {
		lon, lat, err := parseOrigin(*origin)
		if err != nil {
			logger.Error("bad -origin", zap.Error(err))
			os.Exit(1)
		}
		loc := locator.NewGeocentric(lon, lat, cfg.Globe.RadiusMeters)
		world2local = loc.WorldToLocal()
		local2world = loc.LocalToWorld()

		// feature geometry arrives in world coordinates; move it into
		// the local frame the output is requested in
		verts := m.VertexArray()
		for i := range verts {
			verts[i] = world2local.TransformVec3(verts[i])
		}
	}

	vertsIn := len(m.VertexArray())
	elementsIn := totalElements(m)

	s := subdivide.New(world2local, local2world)
	s.SetMaxElementsPerBuffer(cfg.Subdivision.MaxElementsPerBuffer)
	s.Run(cfg.GranularityRad(), m)

	logger.Info("subdivision complete",
		zap.Float64("granularity_deg", cfg.Subdivision.GranularityDeg),
		zap.Int("vertices_in", vertsIn),
		zap.Int("vertices_out", len(m.VertexArray())),
		zap.Int("elements_in", elementsIn),
		zap.Int("elements_out", totalElements(m)),
		zap.Int("buffers", m.NumPrimitiveSets()))
}

func totalElements(m *mesh.Mesh) int {
	n := 0
	for i := 0; i < m.NumPrimitiveSets(); i++ {
		n += m.PrimitiveSet(i).Len()
	}
	return n
}

func parseOrigin(s string) (lon, lat float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want lon,lat, got %q", s)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[0]), "%f", &lon); err != nil {
		return 0, 0, fmt.Errorf("bad longitude %q: %w", parts[0], err)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[1]), "%f", &lat); err != nil {
		return 0, 0, fmt.Errorf("bad latitude %q: %w", parts[1], err)
	}
	return lon, lat, nil
}
