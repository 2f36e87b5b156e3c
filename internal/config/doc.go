// Package config loads yourenergy's TOML configuration.
//
// # Configuration Discovery
//
// Load reads the given path, or ~/.config/yourenergy/config.toml when the path
// is empty. A missing file yields Default(). Fields that are absent or empty
// keep their defaults.
//
// # TOML Format
//
//	api_base_url = "https://your-energy.b.goit.study/api"
//	data_dir = "~/.local/share/yourenergy"
//	page_buttons = 7
//	pin_page_edges = true
//	request_timeout_seconds = 10
//	quote_refresh_minutes = 15
//
//	[wide]
//	categories = 12
//	exercises = 10
//	favorites = 10
//
//	[narrow]
//	categories = 9
//	exercises = 8
//	favorites = 8
//
// page_buttons of zero or less shows every page number. Tilde expansion is
// applied to paths. The preference database (prefs.db) and the log file
// (yourenergy.log) live in data_dir.
package config
