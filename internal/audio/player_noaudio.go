//go:build noaudio

package audio

import "github.com/charmbracelet/log"

// New returns Nop in builds without an audio backend.
func New(enabled bool, logger *log.Logger) Sink {
	if enabled && logger != nil {
		logger.Debug("built without audio support")
	}
	return Nop{}
}
