// Package config locates the geralt binary and invocation settings.
// Nothing here is ever written back to disk; the tool owns no state.
package config

import (
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings for talking to geralt.
type Config struct {
	// Bin is the geralt executable, a name on PATH or a path.
	Bin string
	// Timeout bounds each invocation. Zero waits indefinitely, which is
	// geralt's historical behavior.
	Timeout time.Duration
}

// Load reads .geralt-ui.yaml from GERALT_CONFIG_PATH, the working
// directory, or the home directory, with GERALT_* environment overrides.
// A missing config file is fine; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("bin", "geralt")
	v.SetDefault("timeout", "0s")
	v.SetConfigName(".geralt-ui") // .yaml is implicit
	v.SetEnvPrefix("GERALT")
	v.AutomaticEnv()

	if override := os.Getenv("GERALT_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	bin, err := homedir.Expand(v.GetString("bin"))
	if err != nil {
		return nil, err
	}
	return &Config{
		Bin:     bin,
		Timeout: v.GetDuration("timeout"),
	}, nil
}
