package objfile

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Writer emits a Document in record order. Untouched lines come back out
// of their Raw bytes verbatim, surviving faces are serialized from their
// (possibly renumbered) corners.
type Writer struct {
	Doc *Document

	// GzipLevel compresses the output when set to 1..9 (gzip.BestSpeed to
	// gzip.BestCompression). Zero or below writes plain text.
	GzipLevel int
}

// WriteFile renders the whole document and writes it in one shot, so a
// failed run never leaves a partial file behind. Returns lines written.
func (wr *Writer) WriteFile(path string) (int, error) {
	var buf bytes.Buffer
	lines, err := wr.WriteTo(&buf)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return 0, errors.Wrapf(err, "write %s", path)
	}
	return lines, nil
}

// WriteTo renders the document into the given sink. Returns lines written.
func (wr *Writer) WriteTo(writer io.Writer) (int, error) {
	var buf bytes.Buffer
	lines := 0
	for _, rec := range wr.Doc.Records {
		if rec.Type == Face {
			buf.WriteString(FaceString(rec.Verts))
			buf.WriteByte('\n')
		} else {
			buf.WriteString(rec.Raw)
		}
		lines++
	}

	w := writer
	var wGzip *gzip.Writer
	if wr.GzipLevel >= gzip.BestSpeed && wr.GzipLevel <= gzip.BestCompression {
		var errGzip error
		wGzip, errGzip = gzip.NewWriterLevel(writer, wr.GzipLevel)
		if errGzip != nil {
			return 0, errGzip
		}
		w = wGzip
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	if wGzip != nil {
		if err := wGzip.Close(); err != nil {
			return 0, err
		}
	}
	return lines, nil
}
