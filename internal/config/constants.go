package config

// Base application details
const AppName = "modal"
const Version = "0.1.0"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "modal.log"

// UI Layout
// The status line sits StatusLineOffset rows above the bottom edge and is only
// drawn once the terminal has at least MinStatusRows rows.
const StatusLineOffset = 2
const MinStatusRows = StatusLineOffset + 1

// Editor behavior defaults
const DefaultClampCursor = true
const DefaultSystemClipboard = true
const DefaultThemeName = "default"
