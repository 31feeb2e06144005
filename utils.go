package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// strings

func splitCSV(str string) (out []string) {
	for _, part := range strings.Split(str, ",") {
		if part = strings.TrimSpace(part); len(part) > 0 {
			out = append(out, part)
		}
	}
	return out
}

// files

func cleanPath(path string) string {
	if len(path) == 0 {
		return path
	}
	path, err := filepath.Abs(path)
	logFatalError(err)
	return filepath.ToSlash(filepath.Clean(path))
}

func fileExists(path string) bool {
	if len(path) == 0 {
		return false
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	return true
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// The returned ext is always lower-cased and contains a prefix "." dot (e.g. ".obj")
func fileExtension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func fileSize(path string) int64 {
	if len(path) == 0 {
		return 0
	}
	if fi, err := os.Stat(path); os.IsNotExist(err) {
		return 0
	} else {
		return fi.Size()
	}
}

// suffixedPath returns path with the suffix inserted before the extension,
// e.g. ("mesh.obj", "_stripped") -> "mesh_stripped.obj".
func suffixedPath(path, suffix string) string {
	if iExt := strings.LastIndex(path, "."); iExt != -1 {
		return path[0:iExt] + suffix + path[iExt:]
	}
	return path + suffix
}

// formatting

func formatInt(num int) string {
	str := intToString(num)
	for i := len(str) - 1; i > 2; i -= 3 {
		str = str[0:i-2] + " " + str[i-2:]
	}
	return str
}

func intToString(num int) string {
	return strconv.Itoa(num)
}

func formatBytes(numBytes int64) string {
	prefix := ""
	numAbs := numBytes
	if numBytes < 0 {
		prefix = "-"
		numAbs = -numBytes
	}
	if numAbs >= 1024 {
		if numAbs >= 1024*1024 {
			if numAbs >= 1024*1024*1024 {
				return fmt.Sprintf("%s%.*f GB", prefix, 2, (float32(numAbs)/1024.0)/1024.0/1024.0)
			}
			return fmt.Sprintf("%s%.*f MB", prefix, 2, (float32(numAbs)/1024.0)/1024.0)
		}
		return fmt.Sprintf("%s%.*f kB", prefix, 2, float32(numAbs)/1024.0)
	}
	return fmt.Sprintf("%s%d B", prefix, numAbs)
}

func formatDuration(d time.Duration) (duration string) {
	if d.Minutes() < 1.0 {
		// sec
		duration = fmt.Sprintf("%ss", strconv.FormatFloat(d.Seconds(), 'f', 2, 64))
	} else if d.Minutes() < 60.0 {
		// min sec
		s := math.Mod(d.Seconds(), 60.0)
		duration = fmt.Sprintf("%dm %ss", int(math.Floor(d.Minutes())),
			strconv.FormatFloat(s, 'f', 2, 64))
	} else {
		// hour min sec
		s := math.Mod(d.Seconds(), 60.0)
		m := math.Mod(d.Minutes(), 60.0)
		duration = fmt.Sprintf("%dh %dm %ss", int(math.Floor(d.Hours())),
			int(math.Floor(m)), strconv.FormatFloat(s, 'f', 2, 64))
	}
	return
}
