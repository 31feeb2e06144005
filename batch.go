package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"

	"github.com/meshutil/obj-stripmtl/objfile"
)

// runBatch processes every .obj file under the input directory. Each file
// is a fully independent run, so files fan out over -workers goroutines.
// One failing file is tallied and reported, it never aborts the batch.
func runBatch() {
	inDir := StartParams.Input

	outDir := ""
	if len(StartParams.Output) > 0 {
		outDir = cleanPath(StartParams.Output)
		logFatalError(errors.Wrapf(os.MkdirAll(outDir, 0755), "create output dir"))
	}

	files, err := discoverInputs(inDir, StartParams.Recursive)
	logFatalError(err)
	if len(files) == 0 {
		logInfo("No .obj files found.")
		return
	}

	var (
		opts    = StartParams.StripOptions()
		total   = len(files)
		start   = time.Now()
		success int32
		skipped int32
		failed  int32

		mu   sync.Mutex
		rows = make([]reportRow, 0, total)
	)
	addRow := func(row reportRow) {
		mu.Lock()
		rows = append(rows, row)
		mu.Unlock()
	}

	essentials.ConcurrentMap(StartParams.Workers, total, func(i int) {
		file := files[i]
		rel, errRel := filepath.Rel(inDir, file)
		if errRel != nil {
			rel = filepath.Base(file)
		}

		outPath := suffixedPath(file, StartParams.Suffix)
		if outDir != "" {
			outPath = filepath.Join(outDir, rel)
		}

		if fileExists(outPath) && !StartParams.Overwrite {
			logInfo("[SKIP] (%d/%d) %s -> %s (exists)", i+1, total, rel, outPath)
			atomic.AddInt32(&skipped, 1)
			addRow(reportRow{File: file, Output: outPath, Status: "skipped"})
			return
		}
		if outDir != "" {
			if errDir := os.MkdirAll(filepath.Dir(outPath), 0755); errDir != nil {
				logError("[FAIL] (%d/%d) %s -> %s", i+1, total, rel, errDir)
				atomic.AddInt32(&failed, 1)
				addRow(reportRow{File: file, Output: outPath, Status: "failed", Error: errDir.Error()})
				return
			}
		}

		res, errStrip := processFile(file, outPath, opts)
		if errStrip != nil {
			logError("[FAIL] (%d/%d) %s -> %s", i+1, total, rel, errStrip)
			atomic.AddInt32(&failed, 1)
			addRow(reportRow{File: file, Output: outPath, Status: "failed", Error: errStrip.Error()})
			return
		}

		compact := "n"
		if res.Compacted {
			compact = "y"
		}
		logInfo("[ OK ] (%d/%d) %s -> %s | removed=%d kept=%d compact=%s",
			i+1, total, rel, filepath.Base(outPath), res.RemovedFaces, res.KeptFaces, compact)
		atomic.AddInt32(&success, 1)
		addRow(reportRow{File: file, Output: outPath, Status: "ok", Result: res})
	})

	logInfo(" ")
	logTitle("Summary")
	logResults("Found", formatInt(total))
	logResults("Success", formatInt(int(success)))
	logResults("Skipped", formatInt(int(skipped)))
	logResults("Failed", formatInt(int(failed)))
	logResults("Total", formatDuration(time.Since(start)))
	logInfo(" ")

	if StartParams.Report != "" {
		sort.Slice(rows, func(i, j int) bool { return rows[i].File < rows[j].File })
		if errReport := writeReport(StartParams.Report, rows); errReport != nil {
			logError("writing report: %s", errReport)
			return
		}
		logInfo("Report written to %s", StartParams.Report)
	}
}

// processFile runs the parse/strip/write pipeline for one file. The output
// is only written after every pass succeeded.
func processFile(input, output string, opts objfile.Options) (*objfile.Result, error) {
	doc, _, err := objfile.ParseFile(input)
	if err != nil {
		return nil, err
	}
	res, err := doc.Strip(opts)
	if err != nil {
		return nil, err
	}
	w := &objfile.Writer{Doc: doc, GzipLevel: StartParams.Gzip}
	if _, err := w.WriteFile(output); err != nil {
		return nil, err
	}
	return res, nil
}

// discoverInputs lists the .obj files under dir, sorted for deterministic
// processing order and log output.
func discoverInputs(dir string, recursive bool) ([]string, error) {
	var files []string
	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() && fileExtension(path) == ".obj" {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walk %s", dir)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "read dir %s", dir)
		}
		for _, entry := range entries {
			if !entry.IsDir() && fileExtension(entry.Name()) == ".obj" {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
