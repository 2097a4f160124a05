// Package config loads the patchloader.toml settings file and applies environment
// overrides.
package config

// DefaultFileName is the settings file looked up in the working directory.
const DefaultFileName = "patchloader.toml"

// Environment overrides, applied after the file.
const (
	EnvGameDir        = "PATCHLOADER_GAME_DIR"
	EnvTargetAssembly = "PATCHLOADER_TARGET_ASSEMBLY"
	EnvPlatform       = "PATCHLOADER_PLATFORM"
	EnvLogLevel       = "PATCHLOADER_LOG_LEVEL"
)

// Config is the full settings file.
type Config struct {
	Game   GameConfig   `toml:"game"`
	Loader LoaderConfig `toml:"loader"`
	Log    LogConfig    `toml:"log"`
}

// GameConfig locates the host application.
type GameConfig struct {
	Dir string `toml:"dir"`
	// Platform overrides runtime.GOOS when set.
	Platform string `toml:"platform"`
}

// LoaderConfig holds the loader settings written into the launch script.
type LoaderConfig struct {
	TargetAssembly string `toml:"target_assembly"`
}

// LogConfig controls the log sink.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Game: GameConfig{Dir: "."},
		Log:  LogConfig{Level: "info"},
	}
}
