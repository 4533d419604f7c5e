// Package config loads editor settings from a TOML file.
//
// Settings cover defaults for new projects (frame rate), the timeline's
// pixel scale and snap radius, history depth, and the autosave debounce
// window. Loading layers the file over built-in defaults; a missing file
// yields the defaults without error, so the editor runs unconfigured.
package config
