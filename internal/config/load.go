package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. QUIZBANK_STORE.
const EnvPrefix = "QUIZBANK"

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	cfg.Root = RootFromConfigPath(path)
	applyEnv(&cfg, newEnv())
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the config at path, or searches upward from the working
// directory when path is empty. Without any config file the defaults are
// rooted at the working directory.
func Resolve(path string) (Config, error) {
	if strings.TrimSpace(path) != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		return Load(abs)
	}
	found, err := FindConfigPath("")
	if err == nil {
		return Load(found)
	}
	if !errors.Is(err, ErrNotFound) {
		return Config{}, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("get working directory: %w", err)
	}
	cfg := Config{Root: wd}
	applyEnv(&cfg, newEnv())
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// applyEnv overlays environment variables on file values.
func applyEnv(cfg *Config, v *viper.Viper) {
	overrideString := func(key string, target *string) {
		if value := strings.TrimSpace(v.GetString(key)); value != "" {
			*target = value
		}
	}
	overrideString("store", &cfg.Store)
	overrideString("last_failed", &cfg.LastFailed)
	overrideString("wrong_note", &cfg.WrongNote)
	overrideString("history", &cfg.History)
	overrideString("log.file", &cfg.Log.File)
	overrideString("log.level", &cfg.Log.Level)
	overrideString("ui.mode", &cfg.UI.Mode)
	if v.IsSet("ui.no_color") {
		cfg.UI.NoColor = v.GetBool("ui.no_color")
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.UI.NoColor = true
	}
}
