//go:build ignore

// This program generates the test STL files for unit tests.
// Run with: go run generate_stl.go
package main

import (
	"bytes"
	"encoding/binary"
	"os"
)

type face struct {
	normal   [3]float32
	vertices [3][3]float32
	attr     uint16
}

func write(path, header string, faces []face) {
	var buf bytes.Buffer

	h := make([]byte, 80)
	copy(h, header)
	buf.Write(h)

	binary.Write(&buf, binary.LittleEndian, uint32(len(faces)))
	for _, f := range faces {
		binary.Write(&buf, binary.LittleEndian, f.normal)
		binary.Write(&buf, binary.LittleEndian, f.vertices)
		binary.Write(&buf, binary.LittleEndian, f.attr)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		panic(err)
	}
}

func main() {
	a := [3]float32{0, 0, 0}
	b := [3]float32{1, 0, 0}
	c := [3]float32{0, 1, 0}
	d := [3]float32{0, 0, 1}

	// Closed tetrahedron, outward winding, zero normals
	write("tetrahedron.stl", "tetrahedron", []face{
		{vertices: [3][3]float32{a, c, b}},
		{vertices: [3][3]float32{a, b, d}},
		{vertices: [3][3]float32{a, d, c}},
		{vertices: [3][3]float32{b, c, d}},
	})

	// Two triangles far apart from each other
	write("islands.stl", "two islands", []face{
		{normal: [3]float32{0, 0, 1}, vertices: [3][3]float32{a, b, c}, attr: 1},
		{normal: [3]float32{0, 0, 1}, vertices: [3][3]float32{{10, 10, 0}, {11, 10, 0}, {10, 11, 0}}, attr: 2},
	})
}
