// roadmesh builds road meshes from the command line without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/roadspline/internal/config"
	"github.com/Faultbox/roadspline/internal/editor"
	"github.com/Faultbox/roadspline/internal/engine/debug"
	"github.com/Faultbox/roadspline/internal/engine/road"
	"github.com/Faultbox/roadspline/internal/logger"
	"github.com/Faultbox/roadspline/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "stats", "info":
		cmdStats(args)
	case "obj", "export":
		cmdOBJ(args)
	case "preview", "png":
		cmdPreview(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`roadmesh - ribbon mesh builder

Usage:
  roadmesh <command> [options] [x,y,z ...]

Commands:
  stats   [options] <points>        Show control points, edges and mesh size
  obj     [options] <points>        Write the mesh as Wavefront OBJ
  preview [options] <points>        Render a top-down PNG of the mesh

Points are x,y,z arguments in path order, relative to -origin.
Road settings can be overridden with -road-width, -uv-scale, -smoothness.

Examples:
  roadmesh stats 0,0,0 0,0,10 10,0,20
  roadmesh obj -o road.obj -origin 100,0,50 0,0,0 0,0,10
  roadmesh preview -o road.png -size 1024 0,0,0 0,0,10 10,0,20`)
}

// commonFlags are shared by every command.
type commonFlags struct {
	fs     *flag.FlagSet
	config config.Flags
	origin string
	output string
}

func newFlags(name, defaultOutput string) *commonFlags {
	c := &commonFlags{fs: flag.NewFlagSet(name, flag.ExitOnError)}
	c.config.Register(c.fs)
	c.fs.StringVar(&c.origin, "origin", "0,0,0", "World position of the path origin")
	c.fs.StringVar(&c.output, "o", defaultOutput, "Output file (- for stdout)")
	return c
}

// session builds the road from flags and arguments. Errors are fatal.
func (c *commonFlags) session() *editor.Session {
	cfg, err := config.Load(&c.config)
	if err != nil {
		fatal(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal(err)
	}

	origin, err := math.ParseVec3(c.origin)
	if err != nil {
		fatal(err)
	}
	points, err := math.ParseVec3s(c.fs.Args())
	if err != nil {
		fatal(err)
	}
	if len(points) == 0 {
		fatal(fmt.Errorf("no control points given"))
	}
	s, err := editor.FromPoints(cfg.Road.Settings(), origin, points, logger.Log)
	if err != nil {
		fatal(err)
	}
	return s
}

// create opens the output, or stdout for "-".
func (c *commonFlags) create() *os.File {
	if c.output == "-" {
		return os.Stdout
	}
	f, err := os.Create(c.output)
	if err != nil {
		fatal(err)
	}
	return f
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	logger.Sync()
	os.Exit(1)
}

func cmdStats(args []string) {
	c := newFlags("stats", "-")
	c.fs.Parse(args)
	s := c.session()
	defer logger.Sync()

	p := s.Path()
	st := p.Settings()
	mesh := s.Mesh()

	fmt.Printf("Settings:    width=%.3f uv_scaling=%.3f smoothness=%.3f\n", st.Width, st.UVScaling, st.Smoothness)
	fmt.Printf("Origin:      %v\n", p.Origin())
	fmt.Printf("Points:      %d\n", p.Len())
	fmt.Printf("Vertices:    %d\n", mesh.VertexCount())
	fmt.Printf("Triangles:   %d\n", mesh.TriangleCount())
	if mesh.VertexCount() > 0 {
		lo, hi := mesh.Bounds()
		fmt.Printf("Bounds:      %v - %v\n", lo, hi)
	}

	fmt.Println()
	fmt.Printf("%-4s %-28s %8s %8s\n", "ID", "POSITION", "SEG-PREV", "SEG-NEXT")
	for _, cp := range p.Points() {
		fmt.Printf("%-4d %-28s %8d %8d\n", cp.ID, formatVec(cp), cp.SegmentsToPrevious, cp.SegmentsToNext)
	}
}

func formatVec(cp road.ControlPoint) string {
	v := cp.Position
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

func cmdOBJ(args []string) {
	c := newFlags("obj", "road.obj")
	name := c.fs.String("name", "road", "Object name")
	c.fs.Parse(args)
	s := c.session()
	defer logger.Sync()

	f := c.create()
	if err := road.WriteOBJ(f, s.Mesh(), *name); err != nil {
		fatal(err)
	}
	if f != os.Stdout {
		if err := f.Close(); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %d triangles to %s\n", s.Mesh().TriangleCount(), c.output)
	}
}

func cmdPreview(args []string) {
	c := newFlags("preview", "road.png")
	size := c.fs.Int("size", 512, "Image width and height in pixels")
	c.fs.Parse(args)
	s := c.session()
	defer logger.Sync()

	opts := debug.DefaultPreviewOptions()
	opts.Width, opts.Height = *size, *size
	img := debug.Preview(s.Mesh(), s.Path().Points(), opts)

	f := c.create()
	if err := debug.WritePNG(f, img); err != nil {
		fatal(err)
	}
	if f != os.Stdout {
		if err := f.Close(); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %dx%d preview to %s\n", opts.Width, opts.Height, c.output)
	}
}
