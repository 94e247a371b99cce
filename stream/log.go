package stream

import (
	charmlog "github.com/charmbracelet/log"
)

var log = charmlog.Default()

// SetLogger replaces the package logger.
func SetLogger(l *charmlog.Logger) {
	log = l
}
