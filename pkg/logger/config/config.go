package config

import (
	"fmt"
)

// levels follow zapcore.Level
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("invalid LOG_LEVEL %d, want %d..%d", c.Level, DEBUG_LEVEL, FATAL_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("LOG_TIME_FORMAT must not be empty")
	}
	return nil
}
