package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshfold/internal/config"
)

// Write renders r to w in the given format (text, json or yaml).
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, r)
	case config.FormatYAML:
		return writeYAML(w, r)
	case config.FormatText, "":
		return writeText(w, r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// JSON encodes r as indented JSON.
func JSON(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func writeJSON(w io.Writer, r *Report) error {
	data, err := JSON(r)
	if err != nil {
		return fmt.Errorf("encoding JSON report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

func writeYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding YAML report: %w", err)
	}
	return enc.Close()
}

func writeText(w io.Writer, r *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Mesh:      %s\n", r.Name)
	fmt.Fprintf(&b, "Triangles: %d\n", r.Triangles)
	if r.UniqueVertices > 0 {
		fmt.Fprintf(&b, "Vertices:  %d unique\n", r.UniqueVertices)
	}
	if r.Bounds != nil {
		fmt.Fprintf(&b, "Bounds:    %v .. %v\n", r.Bounds.Min, r.Bounds.Max)
	}
	fmt.Fprintf(&b, "Groups:    %d", r.GroupCount)
	if r.HiddenGroups > 0 {
		fmt.Fprintf(&b, " (%d below size limit not shown)", r.HiddenGroups)
	}
	b.WriteString("\n")

	for _, g := range r.Groups {
		fmt.Fprintf(&b, "\n#%d  seed %d  size %d  area %.4g  edges %.4g..%.4g\n",
			g.Index, g.Seed, g.Size, g.Area, g.MinEdge, g.MaxEdge)
		fmt.Fprintf(&b, "  triangles: %v\n", g.Triangles)
		for _, a := range g.Adjacency {
			fmt.Fprintf(&b, "  %s%d.%d -> %d\n", strings.Repeat("  ", a.Depth), a.Source, a.Edge, a.Target)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
