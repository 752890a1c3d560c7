package tscycle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

// ConfigFile is the default config filename looked up in the working dir.
const ConfigFile = "tscycle.yaml"

// Config is the tscycle.yaml file. Every field is optional; zero values take
// the defaults from DefaultConfig.
type Config struct {
	Locale          string   `yaml:"locale"`
	SourceDir       string   `yaml:"source_dir"`
	SourceSuffix    string   `yaml:"source_suffix"`
	TranslationsDir string   `yaml:"translations_dir"`
	Exclude         []string `yaml:"exclude"`
}

// DefaultConfig returns the configuration used when no tscycle.yaml exists.
// The release script excludes itself from discovery; the marker is a substring
// match, see pathmatch.
func DefaultConfig() Config {
	return Config{
		Locale:          "en",
		SourceDir:       ".",
		SourceSuffix:    ".py",
		TranslationsDir: "i18n",
		Exclude:         []string{"__pycache__", ".git", "venv", "release.py"},
	}
}

// LoadConfig reads path and overlays it on the defaults. A missing file is not
// an error and yields DefaultConfig unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	var file Config
	if err := yaml.Unmarshal(b, &file); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if file.Locale != "" {
		cfg.Locale = file.Locale
	}
	if file.SourceDir != "" {
		cfg.SourceDir = file.SourceDir
	}
	if file.SourceSuffix != "" {
		cfg.SourceSuffix = file.SourceSuffix
	}
	if file.TranslationsDir != "" {
		cfg.TranslationsDir = file.TranslationsDir
	}
	if file.Exclude != nil {
		cfg.Exclude = file.Exclude
	}
	return cfg, nil
}

// TSPath is the locale's translation source file (created/updated in place).
func (c Config) TSPath() string {
	return filepath.Join(c.TranslationsDir, c.Locale+".ts")
}

// QMPath is the compiled catalog written alongside the source file.
func (c Config) QMPath() string {
	return filepath.Join(c.TranslationsDir, c.Locale+".qm")
}

// Env is the process environment tscycle reads at startup.
type Env struct {
	// Root is the toolchain install dir (the OSGeo4W tree the Qt apps live
	// under). Defaulted per platform when unset.
	Root string `env:"OSGEO4W_ROOT"`
}

// ParseEnv reads Env from the process environment, applying defaults.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, err
	}
	if e.Root == "" {
		e.Root = defaultRoot()
	}
	return e, nil
}

func defaultRoot() string {
	if runtime.GOOS == "windows" {
		return `C:\OSGeo4W`
	}
	return "/usr"
}
