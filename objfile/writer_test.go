package objfile

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriterGzip(t *testing.T) {
	input := "v 0 0 0\nusemtl Wall\nf 1 1 1\n"
	doc, _, err := Parse([]byte(input))
	if err != nil {
		t.Fatal(err)
	}

	var plain bytes.Buffer
	if _, err := (&Writer{Doc: doc}).WriteTo(&plain); err != nil {
		t.Fatal(err)
	}

	var compressed bytes.Buffer
	lines, err := (&Writer{Doc: doc, GzipLevel: gzip.BestCompression}).WriteTo(&compressed)
	if err != nil {
		t.Fatal(err)
	}
	if lines != 3 {
		t.Errorf("lines = %d, want 3", lines)
	}

	zr, err := gzip.NewReader(&compressed)
	if err != nil {
		t.Fatal(err)
	}
	decompressed, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decompressed, plain.Bytes()) {
		t.Errorf("gzip output does not round trip:\n%q\n%q", decompressed, plain.Bytes())
	}
}

func TestWriteFile(t *testing.T) {
	doc, _, err := Parse([]byte("v 0 0 0\nf 1 1 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.obj")
	lines, err := (&Writer{Doc: doc}).WriteFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lines != 2 {
		t.Errorf("lines = %d, want 2", lines)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "v 0 0 0\nf 1 1 1\n" {
		t.Errorf("file content %q", b)
	}
}
