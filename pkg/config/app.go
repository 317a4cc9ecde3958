package config

var AppVersion = "DEVELOPMENT"

const (
	AppName  = "steamscope"
	CfgFile  = "config.toml"
	GamesDir = "games"
	LogFile  = "steamscope.log"

	// CfgDirEnv overrides the config directory, mainly for tests and
	// sandboxed launches.
	CfgDirEnv = "STEAMSCOPE_CONFIG_DIR"

	// ShimName is the program name the shim answers to. Steam must see a
	// binary of this name early on PATH for the masquerade to work.
	ShimName = "gamescope"

	// AppIDEnv is set by Steam on every game process it spawns.
	AppIDEnv = "SteamAppId"

	// SchemaVersion is written to new config files and checked on load.
	SchemaVersion = 1
)
