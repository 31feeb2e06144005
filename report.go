package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/meshutil/obj-stripmtl/objfile"
)

// reportRow is one line of the batch CSV report.
type reportRow struct {
	File   string
	Output string
	Status string // ok, skipped, failed
	Error  string
	Result *objfile.Result
}

// writeReport writes the per-file batch report. Count columns are empty
// for skipped and failed files.
func writeReport(path string, rows []reportRow) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	w := csv.NewWriter(f)
	header := []string{
		"file", "output", "status", "removed_faces", "kept_faces",
		"compacted", "vertices_kept", "uvs_kept", "normals_kept", "error",
	}
	errWrite := w.Write(header)
	for _, row := range rows {
		if errWrite != nil {
			break
		}
		record := []string{row.File, row.Output, row.Status, "", "", "", "", "", "", row.Error}
		if res := row.Result; res != nil {
			record[3] = strconv.Itoa(res.RemovedFaces)
			record[4] = strconv.Itoa(res.KeptFaces)
			record[5] = strconv.FormatBool(res.Compacted)
			if res.Compacted {
				record[6] = strconv.Itoa(res.VerticesKept)
				record[7] = strconv.Itoa(res.UVsKept)
				record[8] = strconv.Itoa(res.NormalsKept)
			}
		}
		errWrite = w.Write(record)
	}
	if errWrite == nil {
		w.Flush()
		errWrite = w.Error()
	}
	if cErr := f.Close(); cErr != nil && errWrite == nil {
		errWrite = cErr
	}
	return errWrite
}
