package core

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	SOURCE_LOG_FIELD_NAME = "src"
)

func init() {
	zerolog.DurationFieldInteger = false
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.MessageFieldName = "msg"
	zerolog.LevelFieldName = "lvl"
	zerolog.TimestampFieldName = "tm"
}

// ChildLoggerForSource derives a logger scoped to an internal source
// (e.g. "core/sequence").
func ChildLoggerForSource(logger zerolog.Logger, src string) zerolog.Logger {
	return logger.With().Str(SOURCE_LOG_FIELD_NAME, src).Logger()
}
