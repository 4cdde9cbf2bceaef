package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const fileName = "termicon_log.txt"

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absolute(flagPath)
	}

	// Priority 2: TERMICON_LOG_PATH environment variable
	if envPath := os.Getenv("TERMICON_LOG_PATH"); envPath != "" {
		return absolute(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absolute(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error
	diagFile, err = os.OpenFile(filepath.Join(dir, fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func RunStart(version, outDir string, sizes []int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("version", version).
		Str("out", outDir).
		Ints("sizes", sizes).
		Msg("run_start")
}

// FontSkipped records a candidate that could not be used. The failure is
// never surfaced to the user.
func FontSkipped(path string, err error) {
	if !logReady {
		return
	}
	diagLog.Debug().Str("path", path).Err(err).Msg("font_skipped")
}

func FontResolved(source string, size float64) {
	if !logReady {
		return
	}
	diagLog.Info().Str("source", source).Float64("size", size).Msg("font_resolved")
}

func AssetWritten(name string, px, bytes int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("file", name).
		Int("px", px).
		Int("bytes", bytes).
		Msg("asset_written")
}

func RunEnd(count int, elapsed time.Duration) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("count", count).
		Float64("total_ms", float64(elapsed.Microseconds())/1000).
		Msg("run_end")
}
