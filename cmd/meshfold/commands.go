package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chewxy/math32"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/Faultbox/meshfold/internal/config"
	"github.com/Faultbox/meshfold/internal/logger"
	"github.com/Faultbox/meshfold/internal/report"
	"github.com/Faultbox/meshfold/pkg/formats"
	"github.com/Faultbox/meshfold/pkg/unfold"
)

// stdinPath names standard input as the mesh source.
const stdinPath = "-"

var errNoInput = errors.New("no STL file given, mesh.path is not set and stdin is a terminal")

// Replaced in tests.
var (
	stdin      io.Reader = os.Stdin
	stdinPiped           = func() bool {
		fd := os.Stdin.Fd()
		return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	}
)

// meshPath picks the file argument, falling back to mesh.path and then to
// stdin when something is piped into it.
func meshPath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Mesh.Path != "" {
		return cfg.Mesh.Path, nil
	}
	if stdinPiped() {
		return stdinPath, nil
	}
	return "", errNoInput
}

func displayName(path string) string {
	if path == stdinPath {
		return "(stdin)"
	}
	return path
}

func loadTriangles(path string) (*formats.STL, []unfold.Triangle, error) {
	var (
		stl *formats.STL
		err error
	)
	if path == stdinPath {
		stl, err = formats.ReadSTL(stdin)
	} else {
		stl, err = formats.LoadSTL(path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", displayName(path), err)
	}

	logger.Debug("loaded mesh", zap.String("path", displayName(path)), zap.Int("faces", len(stl.Faces)))
	return stl, unfold.FromSTL(stl), nil
}

func cmdGroups(cfg *config.Config, args []string) error {
	path, err := meshPath(cfg, args)
	if err != nil {
		return err
	}

	stl, tris, err := loadTriangles(path)
	if err != nil {
		return err
	}

	var opts unfold.Options
	if cfg.Analysis.Trace {
		logger.Header(stl.Name())
		logger.TriangleCount(len(tris))
		opts.OnAdjacency = logger.AdjacencyTracer()
	}
	groups := unfold.FindGroups(tris, &opts)
	logger.Info("found groups", zap.Int("triangles", len(tris)), zap.Int("groups", len(groups)))

	rep := report.Build(stl.Name(), tris, groups, report.Options{
		CountVertices: cfg.Analysis.CountVertices,
		IncludeEvents: cfg.Analysis.IncludeEvents,
		MinGroupSize:  cfg.Analysis.MinGroupReport,
	})

	return writeOutput(cfg.Output.Path, func(w io.Writer) error {
		return report.Write(w, rep, cfg.Output.Format)
	})
}

func cmdInfo(cfg *config.Config, args []string) error {
	path, err := meshPath(cfg, args)
	if err != nil {
		return err
	}

	stl, tris, err := loadTriangles(path)
	if err != nil {
		return err
	}

	unique := -1
	if cfg.Analysis.CountVertices {
		unique = len(unfold.IndexVertices(tris).Vertices)
	}
	lo, hi := stl.Bounds()

	shortest, longest := math32.Inf(1), float32(0)
	var area float32
	for _, t := range tris {
		for _, l := range t.EdgeLengths() {
			shortest = math32.Min(shortest, l)
			longest = math32.Max(longest, l)
		}
		area += t.Area()
	}

	return writeOutput(cfg.Output.Path, func(w io.Writer) error {
		fmt.Fprintf(w, "File:      %s\n", displayName(path))
		fmt.Fprintf(w, "Header:    %s\n", stl.Name())
		fmt.Fprintf(w, "Triangles: %d\n", len(tris))
		if unique >= 0 {
			fmt.Fprintf(w, "Vertices:  %d unique\n", unique)
		}
		if len(tris) > 0 {
			fmt.Fprintf(w, "Edges:     %.4g .. %.4g\n", shortest, longest)
			fmt.Fprintf(w, "Area:      %.4g\n", area)
		}
		_, err := fmt.Fprintf(w, "Bounds:    %v .. %v\n", lo, hi)
		return err
	})
}

// writeOutput runs write against stdout, or against path when it is set.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("report written", zap.String("path", path))
	return nil
}
