// Package speech wires a text-to-speech engine's init callback to the sound
// control of the demo.
package speech

import (
	"log/slog"

	"golang.org/x/text/language"
)

// Status is the engine init outcome.
type Status int

const (
	StatusSuccess Status = iota
	StatusError
)

// LanguageResult is what an engine answers to SetLanguage.
type LanguageResult int

const (
	LangAvailable LanguageResult = iota
	LangCountryAvailable
	LangMissingData
	LangNotSupported
)

// Engine is the speech engine being initialised.
type Engine interface {
	SetLanguage(tag language.Tag) LanguageResult
}

// Enabler is the control unlocked once speech works.
type Enabler interface {
	SetEnabled(enabled bool)
}

// Listener reacts to the engine's init callback.
type Listener struct {
	engine  Engine
	control Enabler
	logger  *slog.Logger
}

// NewListener creates a listener. engine may be nil; logger nil uses slog.Default.
func NewListener(engine Engine, control Enabler, logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener{engine: engine, control: control, logger: logger}
}

// OnInit selects US English on success. The control is enabled unless the
// engine reports the language as missing or unsupported. Other statuses are
// ignored.
func (l *Listener) OnInit(status Status) {
	if status != StatusSuccess {
		return
	}
	result := LangAvailable
	if l.engine != nil {
		result = l.engine.SetLanguage(language.AmericanEnglish)
	}
	if result == LangMissingData || result == LangNotSupported {
		l.logger.Error("The language not supported!", "tag", "TTS", "result", result)
		return
	}
	if l.control != nil {
		l.control.SetEnabled(true)
	}
}

func (r LanguageResult) String() string {
	switch r {
	case LangAvailable:
		return "available"
	case LangCountryAvailable:
		return "country-available"
	case LangMissingData:
		return "missing-data"
	case LangNotSupported:
		return "not-supported"
	default:
		return "unknown"
	}
}
