package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

const (
	UIAuto    = "auto"
	UITerm    = "tui"
	UIConsole = "console"

	// LogDiscard - the log-path value that turns logging off. An empty path cannot be
	// used for that: cleanenv replaces it with the env-default.
	LogDiscard = "-"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogPath  string `yaml:"log-path" env:"TICTACTOE_LOG_PATH" env-default:"tictactoe.log"`
	UI       string `yaml:"ui" env:"TICTACTOE_UI" env-default:"auto"`
	Theme    Theme  `yaml:"theme"`

	// no env-default: cleanenv would apply it over an explicit false
	DisableMouse bool `yaml:"disable-mouse" env:"TICTACTOE_DISABLE_MOUSE"`
}

// Theme - tcell color names, e.g. "red", "#ffaf00".
type Theme struct {
	MarkX  string `yaml:"mark-x" env:"TICTACTOE_THEME_MARK_X" env-default:"dodgerblue"`
	MarkO  string `yaml:"mark-o" env:"TICTACTOE_THEME_MARK_O" env-default:"orangered"`
	Win    string `yaml:"win" env:"TICTACTOE_THEME_WIN" env-default:"gold"`
	Header string `yaml:"header" env:"TICTACTOE_THEME_HEADER" env-default:"white"`
}

// MustLoad - load all configurations from the yaml file at path, falling back to
// environment variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.UI {
	case UIAuto, UITerm, UIConsole:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownUI, that.UI)
	}
}
