// Package config loads settings for the strutil command line tool.
//
// Settings are read from a TOML or YAML file (chosen by extension), then
// overridden by STRUTIL_* environment variables, then validated. Keys
// absent from the file keep their defaults:
//
//	[truncate]
//	max_length = 80
//	ellipsis = "..."
//
//	[encode]
//	uppercase = true
//
//	[split]
//	delimiter = ","
//	drop_empty = false
//
//	[log]
//	level = "info"
//	format = "text"
//
// When no file is named, Discover tries $STRUTIL_CONFIG, ./strutil.toml,
// ./strutil.yaml and $HOME/.config/strutil/config.toml; if none exists the
// defaults are used.
package config
