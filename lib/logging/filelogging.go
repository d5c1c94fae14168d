package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/ziflex/lecho/v3"
)

// Logger builds the service logger. With an empty path logs go to STDOUT;
// otherwise a timestamped file is opened next to the requested path. If the
// file cannot be opened the logger keeps writing to STDOUT.
func Logger(logFilePath string) *lecho.Logger {
	logger := lecho.New(
		os.Stdout,
		lecho.WithLevel(log.DEBUG),
		lecho.WithTimestamp(),
	)
	if logFilePath == "" {
		return logger
	}
	file, err := openLogFile(logFilePath)
	if err != nil {
		logger.Errorf("failed to create logging file: %v", err)
		return logger
	}
	logger.SetOutput(file)

	return logger
}

// openLogFile stamps the requested path with the startup time so restarts do
// not clobber earlier logs.
func openLogFile(path string) (*os.File, error) {
	stamp := time.Now().Format("2006-01-02 15:04:05")
	extension := filepath.Ext(path)
	if extension != "" {
		path = strings.TrimSuffix(path, extension) + stamp + extension
	} else {
		path = path + stamp
	}

	return os.Create(path)
}
