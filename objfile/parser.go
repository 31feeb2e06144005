package objfile

import (
	"bytes"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Parse classifies the input into a Document, one Record per line.
//
// Classification is total: the face and usemtl markers are matched
// case-insensitively and must carry a payload, the v/vt/vn markers are
// matched exactly, and every other line (comments, mtllib, o/g/s, blank
// lines, anything unrecognized) becomes an Opaque record that is later
// written back byte for byte. Face payloads are parsed up front so a
// malformed face fails here, before anything is written.
//
// Lines are split by hand instead of bufio.Scanner to keep the original
// terminators (a CRLF file stays a CRLF file on the untouched lines).
func Parse(b []byte) (*Document, int, error) {
	doc := &Document{}
	linenum := 0

	for i := 0; i < len(b); {
		raw := ""
		if j := bytes.IndexByte(b[i:], '\n'); j != -1 {
			raw = string(b[i : i+j+1])
			i += j + 1
		} else {
			raw = string(b[i:])
			i = len(b)
		}
		linenum++

		rec, err := classifyLine(raw, linenum)
		if err != nil {
			return nil, linenum, err
		}
		doc.Records = append(doc.Records, rec)
	}
	return doc, linenum, nil
}

// ParseFile reads and parses the given path. Invalid byte sequences are
// not rejected, the undecoded lines just end up as opaque passthrough.
func ParseFile(path string) (*Document, int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "read %s", path)
	}
	return Parse(b)
}

func classifyLine(raw string, linenum int) (*Record, error) {
	line := strings.TrimRight(raw, "\r\n")

	rec := &Record{Type: Opaque, Raw: raw, LineNum: linenum}

	switch {
	case hasMarkerFold(line, "f"):
		payload := strings.TrimSpace(line[1:])
		if payload == "" {
			break
		}
		verts, err := ParseFaceVerts(payload)
		if err != nil {
			return nil, &MalformedFaceError{LineNum: linenum, Raw: line, Reason: err.Error()}
		}
		rec.Type = Face
		rec.Verts = verts

	case hasMarkerFold(line, "usemtl"):
		name := strings.TrimSpace(line[len("usemtl"):])
		if name == "" {
			break
		}
		rec.Type = MtlUse
		rec.Material = name

	case strings.HasPrefix(line, "v "):
		rec.Type = Vertex
	case strings.HasPrefix(line, "vt "):
		rec.Type = UV
	case strings.HasPrefix(line, "vn "):
		rec.Type = Normal
	}
	return rec, nil
}

// hasMarkerFold reports whether the line starts with the given directive
// marker, case-insensitively, followed by at least one space or tab.
func hasMarkerFold(line, marker string) bool {
	if len(line) <= len(marker) {
		return false
	}
	if sep := line[len(marker)]; sep != ' ' && sep != '\t' {
		return false
	}
	return strings.EqualFold(line[:len(marker)], marker)
}
