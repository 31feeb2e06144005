package objfile

import (
	"strconv"
	"strings"
)

// http://www.martinreddy.net/gfx/3d/OBJ.spec

// Type

type Type int

const (
	// Opaque is any line we do not interpret: comments, mtllib, o/g/s,
	// curves, blank lines. Passed through byte for byte.
	Opaque Type = iota

	Vertex // v
	UV     // vt
	Normal // vn
	MtlUse // usemtl
	Face   // f
)

func (t Type) String() string {
	switch t {
	case Vertex:
		return "v"
	case UV:
		return "vt"
	case Normal:
		return "vn"
	case MtlUse:
		return "usemtl"
	case Face:
		return "f"
	}
	return ""
}

func (t Type) Name() string {
	switch t {
	case Vertex:
		return "vertices"
	case UV:
		return "uvs"
	case Normal:
		return "normals"
	case MtlUse:
		return "materials"
	case Face:
		return "faces"
	}
	return ""
}

// AttributeTypes are the three independent index spaces a face can
// reference, in declaration-marker order.
var AttributeTypes = []Type{Vertex, UV, Normal}

// FaceVert

// FaceVert is one corner of a face: a vertex index with optional uv and
// normal indexes. Zero value means the component was not declared, it is
// not a valid OBJ index (references start from 1, negative values are
// relative). An explicitly empty component as in "1//2" parses to zero
// too, both forms serialize back identically.
type FaceVert struct {
	V  int
	VT int
	VN int
}

// Index returns the component for the given index space.
func (fv FaceVert) Index(t Type) int {
	switch t {
	case Vertex:
		return fv.V
	case UV:
		return fv.VT
	case Normal:
		return fv.VN
	}
	return 0
}

// String serializes the corner into the shortest of the four valid token
// shapes: v, v/vt, v//vn, v/vt/vn. Presence is decided per corner, not per
// face, so "f 1//1 2//2 3" round-trips token by token.
func (fv FaceVert) String() string {
	v := strconv.Itoa(fv.V)
	switch {
	case fv.VT == 0 && fv.VN == 0:
		return v
	case fv.VN == 0:
		return v + "/" + strconv.Itoa(fv.VT)
	case fv.VT == 0:
		return v + "//" + strconv.Itoa(fv.VN)
	default:
		return v + "/" + strconv.Itoa(fv.VT) + "/" + strconv.Itoa(fv.VN)
	}
}

// ParseFaceVerts parses a face payload (the line after the "f" marker)
// into its corners. The vertex component is mandatory, uv and normal are
// each independently optional.
func ParseFaceVerts(payload string) ([]FaceVert, error) {
	fields := strings.Fields(payload)
	verts := make([]FaceVert, 0, len(fields))
	for _, token := range fields {
		var fv FaceVert
		for i, part := range strings.SplitN(token, "/", 3) {
			if len(part) == 0 {
				if i == 0 {
					return nil, errMissingVertex(token)
				}
				continue
			}
			value, err := strconv.Atoi(part)
			if err != nil {
				return nil, errBadComponent(token, part)
			}
			switch i {
			case 0:
				fv.V = value
			case 1:
				fv.VT = value
			case 2:
				fv.VN = value
			}
		}
		verts = append(verts, fv)
	}
	return verts, nil
}

// FaceString serializes a full face line, without terminator.
func FaceString(verts []FaceVert) string {
	parts := make([]string, len(verts))
	for i, fv := range verts {
		parts[i] = fv.String()
	}
	return "f " + strings.Join(parts, " ")
}

// Record

// Record is one classified input line. Raw holds the original bytes,
// line terminator included, and is what gets written back out for every
// type except Face.
type Record struct {
	Type    Type
	Raw     string
	LineNum int

	// MtlUse: the trimmed material name.
	Material string

	// Face: the parsed corners.
	Verts []FaceVert
}

// Document

// Document is the ordered line records of one OBJ file. It is built by a
// single Parse pass and owned by a single strip run, nothing is shared
// across files.
type Document struct {
	Records []*Record
}

// Count returns the number of records of the given type.
func (d *Document) Count(t Type) (n int) {
	for _, rec := range d.Records {
		if rec.Type == t {
			n++
		}
	}
	return n
}

// Stats

type DocStats struct {
	Vertices  int
	UVs       int
	Normals   int
	Faces     int
	Materials int
	Opaque    int
}

func (d *Document) Stats() DocStats {
	stats := DocStats{}
	for _, rec := range d.Records {
		switch rec.Type {
		case Vertex:
			stats.Vertices++
		case UV:
			stats.UVs++
		case Normal:
			stats.Normals++
		case Face:
			stats.Faces++
		case MtlUse:
			stats.Materials++
		default:
			stats.Opaque++
		}
	}
	return stats
}

func (ds DocStats) Num(t Type) int {
	switch t {
	case Vertex:
		return ds.Vertices
	case UV:
		return ds.UVs
	case Normal:
		return ds.Normals
	case Face:
		return ds.Faces
	case MtlUse:
		return ds.Materials
	}
	return 0
}
