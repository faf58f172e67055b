// Package logger configures the global gookit/slog logger. Code logs
// through the package-level slog functions.
package logger

import (
	"strings"

	"github.com/gookit/slog"
)

func Init(level string) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "" {
		name = "info"
	}
	slog.SetLogLevel(slog.LevelByName(name))
}
