// Package file provides file-based configuration adapters.
//
// Two stores live here:
//
//   - SettingsStore: the main TOML settings file under ~/.physika
//   - ScopeListStore: the classifier's scope lists, user-editable TOML
//     with embedded defaults covering the physics syllabus
//
// Both follow the same pattern: embedded defaults, lazy file
// materialisation so a fresh install works with zero setup, and
// user edits taking precedence once the file exists.
package file
