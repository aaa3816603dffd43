// Package formats provides parsers for binary mesh file formats.
// STL (stereolithography) binary format parser.
package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/Faultbox/meshfold/pkg/encoding"
)

// STL layout sizes in bytes.
const (
	STLHeaderSize = 80
	stlPrefixSize = STLHeaderSize + 4
	stlFaceSize   = 50
)

// STL format errors.
var (
	ErrTruncatedSTLData = errors.New("truncated STL data")
	ErrASCIISTL         = errors.New("ASCII STL is not supported, expected binary STL")
	ErrSTLTooLarge      = errors.New("STL data exceeds size limit")
)

var gzipMagic = []byte{0x1f, 0x8b}

// STLFace is one 50-byte triangle record.
type STLFace struct {
	Normal   [3]float32    // Facet normal, may be zero
	Vertices [3][3]float32 // Corners in winding order
	Attr     uint16        // Attribute byte count, opaque
}

// STL represents a parsed binary STL file.
type STL struct {
	Header [STLHeaderSize]byte
	Faces  []STLFace
}

// NewSTL builds an STL with the given header text and faces.
func NewSTL(name string, faces []STLFace) *STL {
	stl := &STL{Faces: faces}
	copy(stl.Header[:], encoding.UTF8ToFixedString(name, STLHeaderSize))
	return stl
}

// Name returns the header as UTF-8 text.
func (s *STL) Name() string {
	return encoding.FixedStringToUTF8(s.Header[:])
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (s *STL) Bounds() (min, max [3]float32) {
	if len(s.Faces) == 0 {
		return min, max
	}

	min = s.Faces[0].Vertices[0]
	max = s.Faces[0].Vertices[0]

	for _, face := range s.Faces {
		for _, v := range face.Vertices {
			for axis := 0; axis < 3; axis++ {
				if v[axis] < min[axis] {
					min[axis] = v[axis]
				}
				if v[axis] > max[axis] {
					max[axis] = v[axis]
				}
			}
		}
	}

	return min, max
}

// ParseSTL parses a binary STL file from raw bytes.
// Bytes after the last declared face are ignored.
func ParseSTL(data []byte) (*STL, error) {
	if len(data) < stlPrefixSize {
		if isASCIISTL(data) {
			return nil, ErrASCIISTL
		}
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncatedSTLData, len(data), stlPrefixSize)
	}

	count := binary.LittleEndian.Uint32(data[STLHeaderSize:stlPrefixSize])
	need := int64(stlPrefixSize) + int64(count)*stlFaceSize
	if int64(len(data)) < need {
		if isASCIISTL(data) {
			return nil, ErrASCIISTL
		}
		return nil, fmt.Errorf("%w: %d faces declared, need %d bytes, have %d",
			ErrTruncatedSTLData, count, need, len(data))
	}

	stl := &STL{
		Faces: make([]STLFace, count),
	}
	copy(stl.Header[:], data[:STLHeaderSize])

	r := bytes.NewReader(data[stlPrefixSize:need])
	for i := range stl.Faces {
		if err := binary.Read(r, binary.LittleEndian, &stl.Faces[i]); err != nil {
			return nil, fmt.Errorf("parsing face %d: %w", i, err)
		}
	}

	return stl, nil
}

// ReadSTL reads a binary STL from r, decompressing gzip input transparently.
func ReadSTL(r io.Reader) (*STL, error) {
	return ReadSTLLimit(r, 0)
}

// ReadSTLLimit is ReadSTL with a cap of limit bytes on the decompressed data.
// Data past the cap, or a face count that would need more than limit bytes,
// fails with ErrSTLTooLarge. A limit of zero or less means no cap.
func ReadSTLLimit(r io.Reader, limit int64) (*STL, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(len(gzipMagic))
	if err == nil && bytes.Equal(magic, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer zr.Close()
		return readAll(zr, limit)
	}

	return readAll(br, limit)
}

// LoadSTL reads a binary STL file (optionally gzip-compressed) from disk.
func LoadSTL(path string) (*STL, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening STL file: %w", err)
	}
	defer file.Close()

	return ReadSTL(file)
}

func readAll(r io.Reader, limit int64) (*STL, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading STL data: %w", err)
	}

	if limit > 0 {
		if int64(len(data)) > limit {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrSTLTooLarge, limit)
		}
		if len(data) >= stlPrefixSize {
			count := binary.LittleEndian.Uint32(data[STLHeaderSize:stlPrefixSize])
			if need := int64(stlPrefixSize) + int64(count)*stlFaceSize; need > limit {
				return nil, fmt.Errorf("%w: %d faces declared, need %d bytes, limit %d",
					ErrSTLTooLarge, count, need, limit)
			}
		}
	}

	return ParseSTL(data)
}

// WriteSTL writes s in binary STL layout.
func WriteSTL(w io.Writer, s *STL) error {
	if _, err := w.Write(s.Header[:]); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s.Faces))); err != nil {
		return fmt.Errorf("writing face count: %w", err)
	}
	for i := range s.Faces {
		if err := binary.Write(w, binary.LittleEndian, &s.Faces[i]); err != nil {
			return fmt.Errorf("writing face %d: %w", i, err)
		}
	}
	return nil
}

// Bytes returns the binary STL encoding of s.
func (s *STL) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, stlPrefixSize+len(s.Faces)*stlFaceSize))
	// writes to a bytes.Buffer cannot fail
	_ = WriteSTL(buf, s)
	return buf.Bytes()
}

// isASCIISTL guesses whether data is a text STL. Binary headers may also
// start with "solid", so this is only consulted once the binary layout
// has already failed to fit.
func isASCIISTL(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if !bytes.HasPrefix(trimmed, []byte("solid")) {
		return false
	}
	return bytes.Contains(data, []byte("facet")) || bytes.Contains(data, []byte("endsolid"))
}
