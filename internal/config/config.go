/*
 * config.go, part of goffea.
 *
 * Copyright 2026 The goffea developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */


// Package config is for app wide settings that are unmarshalled
// from Viper (see: internal/cli)
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables that
// override settings, as in FFEATRAJ_FRAME_RATE.
const EnvPrefix = "FFEATRAJ"

// PlotConfig is for the size of the saved plots
type PlotConfig struct {
	// width of the plot, in inches
	Width float64 `mapstructure:"width"`

	// height of the plot, in inches
	Height float64 `mapstructure:"height"`
}

// Config is the root-level settings struct and is a mix
// of settings available in ffeatraj.yaml, the environment
// and the command line
type Config struct {
	// keep one of every FrameRate frames
	FrameRate int `mapstructure:"frame-rate"`

	// read at most MaxFrames frames after the first one, 0 for all
	MaxFrames int `mapstructure:"max-frames"`

	// log progress to stderr
	Verbose bool `mapstructure:"verbose"`

	// plot settings
	Plot PlotConfig `mapstructure:"plot"`
}

// SetDefaults sets the default value of every setting in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("frame-rate", 1)
	v.SetDefault("max-frames", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("plot.width", 5.0)
	v.SetDefault("plot.height", 4.0)
}

// Load makes v read the environment and a settings file. If file is empty,
// ffeatraj.yaml is looked for in the current directory, and it's fine if it
// is not there.
func Load(v *viper.Viper, file string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("ffeatraj")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && (file != "" || !errors.As(err, &notFound)) {
		return fmt.Errorf("reading settings: %w", err)
	}
	return nil
}

// NewConfig returns a new Config struct populated by
// the settings in v.
func NewConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if c.FrameRate < 1 {
		return c, fmt.Errorf("frame-rate must be at least 1, got %d", c.FrameRate)
	}
	if c.MaxFrames < 0 {
		return c, fmt.Errorf("max-frames can't be negative, got %d", c.MaxFrames)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return c, fmt.Errorf("plot size must be positive, got %gx%g", c.Plot.Width, c.Plot.Height)
	}
	return c, nil
}
