package config

import (
	"github.com/MonkyMars/gecho"
)

var logger *gecho.Logger

// InitializeLogger builds the application logger. Call once from main before
// anything logs.
func InitializeLogger() *gecho.Logger {
	logger = gecho.NewDefaultLogger()
	return logger
}

func GetLogger() *gecho.Logger {
	if logger == nil {
		return InitializeLogger()
	}
	return logger
}
