package tui

import (
	"time"

	"github.com/pixeldock/pixelctl/internal/client/panel"
)

const returnToLoginAfter = 1500 * time.Millisecond

// SessionCheckMsg reports whether a stored credential exists at startup.
type SessionCheckMsg struct {
	HasToken bool
	Err      error
}

type LoginResultMsg struct {
	Err error
}

// SessionClearedMsg confirms the stored credential was dropped.
type SessionClearedMsg struct {
	Err error
}

// ReturnToLoginMsg moves the UI back to the login page after the expiry
// notice has been visible for a moment.
type ReturnToLoginMsg struct{}

type ModulesMsg struct {
	Modules []panel.Module
	Err     error
}

type ModuleSavedMsg struct {
	ID     int64
	Module *panel.Module
	Err    error
}

// ModuleToggledMsg carries the outcome of an optimistic enable/disable flip.
// Enabled is the value that was attempted, so a failure can revert it.
type ModuleToggledMsg struct {
	ID      int64
	Enabled bool
	Module  *panel.Module
	Err     error
}

type StatusMsg struct {
	Status *panel.Status
	Err    error
}

type PreviewMsg struct {
	Preview *panel.Preview
	Err     error
}

type TextShownMsg struct {
	Err error
}

type BrightnessSetMsg struct {
	Brightness int
	Err        error
}

type DrawSentMsg struct {
	Err error
}

type PatternStartedMsg struct {
	Pattern string
	Err     error
}

type PatternStoppedMsg struct {
	Err error
}

// DHTMsg carries the raw indoor-sensor diagnostic payload.
type DHTMsg struct {
	Detail map[string]any
	Err    error
}

// DHTReadMsg is the outcome of a forced single sensor read.
type DHTReadMsg struct {
	Reading map[string]any
	Err     error
}

type GPIOMsg struct {
	Level map[string]any
	Err   error
}

type CoordinateMappedMsg struct {
	X, Y    int
	Mapping *panel.CoordinateMapping
	Err     error
}
