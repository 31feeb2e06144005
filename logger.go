package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = zap.NewNop().Sugar()

// initLogging wires a console core and, when a log file is configured, a
// rotating file core. Console output moves to stderr when the document
// itself goes to stdout.
func initLogging(level, logFile string, stderr bool) {
	lvl := parseLogLevel(level)

	consoleOut := os.Stdout
	if stderr {
		consoleOut = os.Stderr
	}
	consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalColorLevelEncoder,
		ConsoleSeparator: " ",
	})
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(consoleOut), lvl),
	}

	if logFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
			LocalTime:  true,
		}
		fileEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), lvl))
	}

	log = zap.New(zapcore.NewTee(cores...)).Sugar()
}

func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func logSync() {
	_ = log.Sync()
}

func logInfo(format string, args ...interface{}) {
	if !StartParams.Quiet {
		log.Infof(format, args...)
	}
}

func logWarn(format string, args ...interface{}) {
	if !StartParams.Quiet {
		log.Warnf(format, args...)
	}
}

func logError(format string, args ...interface{}) {
	if !StartParams.Quiet {
		log.Errorf(format, args...)
	}
}

func logFatal(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}

func logFatalError(err error) {
	if err != nil {
		log.Fatal(err.Error())
	}
}

func logTitle(format string, args ...interface{}) {
	logInfo(format, args...)
	if title := strings.Repeat("-", len(fmt.Sprintf(format, args...))); len(title) > 0 {
		logInfo(title)
	}
}

func logResults(label, value string) {
	logInfo(fmt.Sprintf("%-15s %15s", label, value))
}

func logResultsInt(label string, value int) {
	logResults(label, formatInt(value))
}
