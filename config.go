package main

import (
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

const ConfigFile = ".linecalc.yaml"

var defaultTitles = map[string]string{
	"sums":       "Welcome to the Sums and Averages Calculator.",
	"change":     "Welcome to the Change Counter.",
	"points":     "Welcome to the Point Reader.",
	"sentences":  "Welcome to the Sentence Data Aggregator.",
	"palindrome": "Welcome to the Palindrome Checker.",
}

type Config struct {
	Clear      bool              `yaml:"clear"`
	LogFile    string            `yaml:"log_file"`
	LogLevel   string            `yaml:"log_level"`
	Plot       bool              `yaml:"plot"`
	PlotHeight int               `yaml:"plot_height"`
	Titles     map[string]string `yaml:"titles"`
}

func DefaultConfig() Config {
	return Config{
		Clear:      true,
		LogLevel:   "debug",
		PlotHeight: 8,
	}
}

// LoadConfig reads filename over the defaults. A missing file is not an error.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, xerrors.Errorf("open: %w", err)
	}
	defer f.Close()
	contents, err := io.ReadAll(f)
	if err != nil {
		return cfg, xerrors.Errorf("read: %w", err)
	}
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return cfg, xerrors.Errorf("unmarshal: %w", err)
	}
	return cfg, nil
}

// Override applies flags that were set explicitly on the command line.
func (c *Config) Override(fs *pflag.FlagSet) error {
	var err error
	if fs.Changed("log") {
		if c.LogFile, err = fs.GetString("log"); err != nil {
			return xerrors.Errorf("log: %w", err)
		}
	}
	if fs.Changed("log-level") {
		if c.LogLevel, err = fs.GetString("log-level"); err != nil {
			return xerrors.Errorf("log-level: %w", err)
		}
	}
	if fs.Changed("no-clear") {
		noClear, err := fs.GetBool("no-clear")
		if err != nil {
			return xerrors.Errorf("no-clear: %w", err)
		}
		c.Clear = !noClear
	}
	if fs.Changed("plot") {
		if c.Plot, err = fs.GetBool("plot"); err != nil {
			return xerrors.Errorf("plot: %w", err)
		}
	}
	if fs.Changed("plot-height") {
		if c.PlotHeight, err = fs.GetInt("plot-height"); err != nil {
			return xerrors.Errorf("plot-height: %w", err)
		}
	}
	return nil
}

func (c *Config) Title(tool string) string {
	if t, ok := c.Titles[tool]; ok && t != "" {
		return t
	}
	return defaultTitles[tool]
}
