package game

import (
	"errors"

	"github.com/spf13/viper"
)

// Settings are the process-level knobs that may be overridden by an optional
// drivn.cfg.json in the working directory. Gameplay constants are not
// configurable; these cover the window, seeding, audio, and logging only.
type Settings struct {
	WindowWidth  int
	WindowHeight int
	VSync        bool
	Seed         uint64 // 0 = seed from the wall clock
	AudioEnabled bool
	LogLevel     string
}

// LoadSettings reads defaults plus any config file overrides. A missing
// config file is not an error; a malformed one is returned alongside the
// defaults so the caller can log and continue.
func LoadSettings(configDir string) (Settings, error) {
	v := viper.New()
	v.SetDefault("window.width", WindowWidth)
	v.SetDefault("window.height", WindowHeight)
	v.SetDefault("window.vsync", true)
	v.SetDefault("seed", 0)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("logLevel", "info")

	v.SetConfigName("drivn.cfg")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	var loadErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			loadErr = err
		}
	}

	return Settings{
		WindowWidth:  v.GetInt("window.width"),
		WindowHeight: v.GetInt("window.height"),
		VSync:        v.GetBool("window.vsync"),
		Seed:         v.GetUint64("seed"),
		AudioEnabled: v.GetBool("audio.enabled"),
		LogLevel:     v.GetString("logLevel"),
	}, loadErr
}
