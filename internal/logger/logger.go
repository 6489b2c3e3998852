// Package logger builds the zerolog instances used across rostr. Logs never
// go to the interactive console; the default sink is a file under the
// application data directory so prompts stay clean.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/inovacc/rostr/internal/application"
	"github.com/inovacc/rostr/internal/params"
	"github.com/rs/zerolog"
)

const (
	permission = 0664

	// FileName is the log file created under the application data directory.
	FileName = "rostr.log"
)

// New returns a timestamped logger writing to w, tagged with a fresh
// session id so one run's entries can be grepped out of the shared file.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().
		Timestamp().
		Str("app", application.AppName).
		Str("session", uuid.NewString()).
		Logger()
}

// Discard returns a logger that drops everything. Used as the default in
// components constructed without an explicit logger, and in tests.
func Discard() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// Open opens the application log file and returns a logger writing to it at
// the given level. The caller owns the returned closer.
func Open(level string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return Discard(), nil, err
	}

	path := filepath.Join(params.AppdataDir, FileName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
	if err != nil {
		return Discard(), nil, err
	}

	log := New(zerolog.SyncWriter(f)).Level(lvl)
	return log, f, nil
}
