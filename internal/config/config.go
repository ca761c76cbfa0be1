package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvSavePath overrides the save file location when set.
const EnvSavePath = "DENOGOTCHI_SAVE_PATH"

// Config holds the runtime tunables. Everything has a sensible default; the
// yaml file and environment only override.
type Config struct {
	SavePath         string        `yaml:"save_path"`
	DecayInterval    time.Duration `yaml:"decay_interval"`
	AutosaveInterval time.Duration `yaml:"autosave_interval"`
	IdleFrame        time.Duration `yaml:"idle_frame"`
	ActionFrameMin   time.Duration `yaml:"action_frame_min"`
	ActionFrameMax   time.Duration `yaml:"action_frame_max"`
	DialogDuration   time.Duration `yaml:"dialog_duration"`
	ShutdownCommand  []string      `yaml:"shutdown_command"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		SavePath:         defaultSavePath(),
		DecayInterval:    10 * time.Second,
		AutosaveInterval: 60 * time.Second,
		IdleFrame:        2400 * time.Millisecond,
		ActionFrameMin:   1800 * time.Millisecond,
		ActionFrameMax:   2600 * time.Millisecond,
		DialogDuration:   4200 * time.Millisecond,
		ShutdownCommand:  []string{"sudo", "shutdown", "-h", "now"},
	}
}

func defaultSavePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "save.json"
	}
	return filepath.Join(home, ".local", "share", "denogotchi", "save.json")
}

// Load reads the config file at path, if any, on top of the defaults. A
// missing file is fine; a malformed one is not. The save path can always be
// overridden through the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if env := os.Getenv(EnvSavePath); env != "" {
		cfg.SavePath = env
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.SavePath == "" {
		return fmt.Errorf("save_path must not be empty")
	}
	for name, d := range map[string]time.Duration{
		"decay_interval":    cfg.DecayInterval,
		"autosave_interval": cfg.AutosaveInterval,
		"idle_frame":        cfg.IdleFrame,
		"action_frame_min":  cfg.ActionFrameMin,
		"action_frame_max":  cfg.ActionFrameMax,
		"dialog_duration":   cfg.DialogDuration,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if cfg.ActionFrameMax < cfg.ActionFrameMin {
		return fmt.Errorf("action_frame_max must not be below action_frame_min")
	}
	return nil
}
