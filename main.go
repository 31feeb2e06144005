package main

import (
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/profile"

	"github.com/meshutil/obj-stripmtl/objfile"
)

var (
	StartParams = startParams{
		Gzip:   -1,
		Suffix: "_stripped",
	}

	ApplicationName = "obj-stripmtl"
	Version         string
	VersionHash     string
	VersionDate     string
)

type startParams struct {
	Input  string
	Output string

	Remove        []string
	CaseSensitive bool
	Compact       bool

	Recursive bool
	Overwrite bool
	Suffix    string
	Workers   int
	Report    string

	Gzip       int
	LogLevel   string
	LogFile    string
	ConfigFile string

	Stdout     bool
	Quiet      bool
	CpuProfile bool
}

func (sp startParams) IsGzipEnabled() bool {
	return sp.Gzip >= gzip.BestSpeed && sp.Gzip <= gzip.BestCompression
}

func (sp startParams) StripOptions() objfile.Options {
	return objfile.Options{
		Remove:        sp.Remove,
		CaseSensitive: sp.CaseSensitive,
		Compact:       sp.Compact,
	}
}

var (
	flagVersion bool
	flagRemove  string
)

func init() {
	defaults := DefaultConfig()
	StartParams.Workers = defaults.Batch.Workers
	StartParams.LogLevel = defaults.Logging.Level

	flag.StringVar(&StartParams.Input,
		"in", StartParams.Input, "Input file or directory.")
	flag.StringVar(&StartParams.Output,
		"out", StartParams.Output, "Output file or directory. For a file input defaults to a -suffix sibling.")

	flag.StringVar(&flagRemove,
		"remove", "", "Comma separated material name(s) whose faces are removed.")
	flag.BoolVar(&StartParams.CaseSensitive,
		"case-sensitive", StartParams.CaseSensitive, "Case-sensitive material matching.")
	flag.BoolVar(&StartParams.Compact,
		"compact", StartParams.Compact, "Drop unused vertices/uvs/normals and reindex faces. Auto disabled for files that use relative (negative) indexing.")

	flag.BoolVar(&StartParams.Recursive,
		"recursive", StartParams.Recursive, "Recurse into subdirectories when -in is a directory.")
	flag.BoolVar(&StartParams.Overwrite,
		"overwrite", StartParams.Overwrite, "Allow overwriting existing output files.")
	flag.StringVar(&StartParams.Suffix,
		"suffix", StartParams.Suffix, "Suffix appended to the filename when no -out is given.")
	flag.IntVar(&StartParams.Workers,
		"workers", StartParams.Workers, "Number of files processed in parallel in directory mode.")
	flag.StringVar(&StartParams.Report,
		"report", StartParams.Report, "Write a per-file CSV report to this path in directory mode.")

	flag.IntVar(&StartParams.Gzip,
		"gzip", StartParams.Gzip, "Gzip compression level on the output. <=0 disables compression, use 1 (best speed) to 9 (best compression) to enable.")
	flag.StringVar(&StartParams.LogLevel,
		"log-level", StartParams.LogLevel, "Log level: debug, info, warn, error.")
	flag.StringVar(&StartParams.LogFile,
		"log-file", StartParams.LogFile, "Also log to this file, with rotation.")
	flag.StringVar(&StartParams.ConfigFile,
		"config", StartParams.ConfigFile, "YAML config file. Defaults probe ./obj-stripmtl.yaml.")

	flag.BoolVar(&StartParams.Stdout,
		"stdout", StartParams.Stdout, "Write output to stdout. If enabled -out is ignored and logging directed to stderr.")
	flag.BoolVar(&StartParams.Quiet,
		"quiet", StartParams.Quiet, "Silence info printing.")
	flag.BoolVar(&StartParams.CpuProfile,
		"cpu-profile", StartParams.CpuProfile, "Record ./cpu.pprof profile.")
	flag.BoolVar(&flagVersion,
		"version", false, "Print version and exit, ignores -quiet.")
}

// parseStartParams finalizes StartParams from flags and the config file.
// Kept out of init so the test binary's flags don't collide.
func parseStartParams() {
	flag.Parse()

	flagSet := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		flagSet[f.Name] = true
	})
	if flagSet["remove"] {
		StartParams.Remove = splitCSV(flagRemove)
	}

	cfg, errCfg := loadConfig(StartParams.ConfigFile)
	if errCfg == nil {
		applyConfig(&StartParams, cfg, flagSet)
	}

	initLogging(StartParams.LogLevel, StartParams.LogFile, StartParams.Stdout)
	if errCfg != nil {
		logFatalError(errCfg)
	}

	// -version: ignores -stdout as we are about to exit
	if flagVersion {
		fmt.Printf("%s %s\n", ApplicationName, getVersion(true))
		os.Exit(0)
	}

	if StartParams.Workers < 1 {
		logFatal("-workers must be a positive number, given: %d", StartParams.Workers)
	}
	if StartParams.Gzip < -1 || StartParams.Gzip > gzip.BestCompression {
		logFatal("-gzip must be -1 to 9, given: %d", StartParams.Gzip)
	}
	if len(StartParams.Remove) == 0 {
		logFatal("-remove missing: name at least one material to strip")
	}

	// -in
	StartParams.Input = cleanPath(StartParams.Input)
	if len(StartParams.Input) == 0 {
		logFatal("-in missing")
	} else if !fileExists(StartParams.Input) {
		logFatal("-in %q does not exist", StartParams.Input)
	}

	if StartParams.Report != "" && !isDir(StartParams.Input) {
		logWarn("-report is only written in directory mode, ignoring")
	}

	// -out: single file mode default is a suffixed sibling. This tool is
	// destructive, never let the output overwrite the input.
	if !StartParams.Stdout && !isDir(StartParams.Input) {
		if len(StartParams.Output) == 0 {
			StartParams.Output = suffixedPath(StartParams.Input, StartParams.Suffix)
		} else if isDir(StartParams.Output) {
			StartParams.Output = cleanPath(filepath.Join(StartParams.Output, filepath.Base(StartParams.Input)))
		} else {
			StartParams.Output = cleanPath(StartParams.Output)
		}
		if StartParams.Input == StartParams.Output {
			logFatal("Overwriting the input file is not allowed, both input and output point to %s", StartParams.Input)
		}
	}
}

func getVersion(date bool) (version string) {
	if Version == "" {
		return "dev"
	}
	version = fmt.Sprintf("v%s (%s)", Version, VersionHash)
	if date {
		version += " " + VersionDate
	}
	return version
}

func main() {
	parseStartParams()
	defer logSync()

	// cpu profiling for development: github.com/pkg/profile
	if StartParams.CpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if b, err := json.MarshalIndent(StartParams, "", "  "); err == nil {
		logInfo("\n%s %s %s", ApplicationName, getVersion(false), b)
	} else {
		logFatalError(err)
	}

	if isDir(StartParams.Input) {
		runBatch()
		return
	}
	runSingle()
}

func runSingle() {
	type timing struct {
		Step     string
		Duration time.Duration
	}
	var (
		start    = time.Now()
		pre      = time.Now()
		timings  = []timing{}
		timeStep = func(step string) {
			timings = append(timings, timing{Step: step, Duration: time.Since(pre)})
			pre = time.Now()
		}
	)

	doc, linesParsed, err := objfile.ParseFile(StartParams.Input)
	logFatalError(err)
	timeStep("Parse")

	res, err := doc.Strip(StartParams.StripOptions())
	logFatalError(err)
	timeStep("Strip")

	w := &objfile.Writer{Doc: doc, GzipLevel: StartParams.Gzip}
	var (
		linesWritten int
		errWrite     error
	)
	if StartParams.Stdout {
		linesWritten, errWrite = w.WriteTo(os.Stdout)
	} else {
		linesWritten, errWrite = w.WriteFile(StartParams.Output)
	}
	logFatalError(errWrite)
	timeStep("Write")

	logInfo(" ")
	for _, t := range timings {
		logResults(t.Step, formatDuration(t.Duration))
	}
	logResults("Total", formatDuration(time.Since(start)))

	logInfo(" ")
	logResultsInt("Removed faces", res.RemovedFaces)
	logResultsInt("Kept faces", res.KeptFaces)
	if res.Compacted {
		logResults("Compaction", "enabled")
		logResultsInt("Vertices kept", res.VerticesKept)
		logResultsInt("UVs kept", res.UVsKept)
		logResultsInt("Normals kept", res.NormalsKept)
	} else {
		logResults("Compaction", "disabled")
	}

	logInfo(" ")
	logResults("Lines input", formatInt(linesParsed))
	logResults("Lines output", formatInt(linesWritten))
	if !StartParams.Stdout {
		logResults("File input", formatBytes(fileSize(StartParams.Input)))
		logResults("File output", formatBytes(fileSize(StartParams.Output)))
	}

	if StartParams.IsGzipEnabled() {
		logInfo(" ")
		logInfo("Gzip compression enabled with level %d.", StartParams.Gzip)
		logInfo("Remember to set 'Content-Encoding: gzip' if you host this file over HTTP.")
	}
	logInfo(" ")
}
