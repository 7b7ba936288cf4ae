// Package state holds the in-memory application state: the task collection,
// the goal banner, and the persisted settings. Exactly one AppState exists
// per running session; the presentation layer owns it and passes it by
// reference to the calculator, view, and persistence functions.
package state

import (
	"github.com/rowanhs/trackline/internal/progress"
	"github.com/rowanhs/trackline/internal/task"
	"github.com/rowanhs/trackline/internal/view"
)

// Goal is the banner statement shown above the task list: a text line plus
// an optional image path. It is replaced wholesale on edit.
type Goal struct {
	Text      string `json:"text"`
	ImagePath string `json:"image_path,omitempty"`
}

// Settings are the user preferences persisted alongside the tasks.
// DarkMode and Autosave are presentation hints carried for the UI; the core
// only stores them.
type Settings struct {
	ProgressMode  progress.Mode `json:"progress_mode"`
	SortKey       view.SortKey  `json:"sort_key"`
	SortAscending bool          `json:"sort_ascending"`
	FilterTag     string        `json:"filter_tag"`
	Autosave      bool          `json:"autosave"`
	NotifyEnabled bool          `json:"notify_enabled"`
	NotifyDays    int           `json:"notify_days"`
	DarkMode      bool          `json:"dark_mode"`
}

// AppState is the aggregate persisted unit: everything a session loads at
// startup and writes back after each mutation.
type AppState struct {
	Tasks    []task.Task `json:"tasks"`
	Goal     Goal        `json:"goal"`
	Settings Settings    `json:"settings"`
}

// DefaultSettings mirrors a fresh install.
func DefaultSettings() Settings {
	return Settings{
		ProgressMode:  progress.ModeWeight,
		SortKey:       view.SortByDue,
		SortAscending: true,
		FilterTag:     "",
		Autosave:      true,
		NotifyEnabled: true,
		NotifyDays:    3,
		DarkMode:      true,
	}
}

// Default returns the empty state a first run starts from.
func Default() AppState {
	return AppState{Settings: DefaultSettings()}
}
