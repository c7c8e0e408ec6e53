package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
)

type Options struct {
	LogFilename string
	Level       slog.Level
}

var (
	logger   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar}))
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	mu       sync.Mutex
)

// Init points the process logger at LogFilename (appending) and stderr.
// When the file cannot be opened, logging continues on stderr only.
func Init(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	levelVar.Set(opts.Level)

	var out io.Writer = os.Stderr
	if opts.LogFilename != "" {
		f, err := os.OpenFile(opts.LogFilename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Printf("unable to open log file %s: %v", opts.LogFilename, err)
		} else {
			logFile = f
			out = io.MultiWriter(os.Stderr, f)
		}
	}

	logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: levelVar}))
}

func GetLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

// SetRawLogLevel accepts DEBUG, INFO, WARN or ERROR. Anything else means ERROR.
func SetRawLogLevel(level string) {
	SetLogLevel(ParseLevel(level))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// LogStandardFatal prints msg and err on stderr and exits with code.
func LogStandardFatal(code int, msg string, err error) {
	Close()
	log.SetOutput(os.Stderr)
	if err != nil {
		log.Printf("%s: %v", msg, err)
	} else {
		log.Print(msg)
	}
	os.Exit(code)
}
