package common

import "log/slog"

// SlogResetLevel sets the default slog level and returns a function
// restoring the previous level. Pairs well with defer:
//
//	defer common.SlogResetLevel(slog.LevelWarn)()
func SlogResetLevel(level slog.Level) (reset func()) {
	oldLevel := slog.SetLogLoggerLevel(level)
	return func() {
		slog.SetLogLoggerLevel(oldLevel)
	}
}
