/*
 * config_test.go, part of goffea.
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


package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(Te *testing.T) {
	v := viper.New()
	if err := Load(v, ""); err != nil {
		Te.Fatal(err)
	}
	c, err := NewConfig(v)
	if err != nil {
		Te.Fatal(err)
	}
	want := Config{FrameRate: 1, Plot: PlotConfig{5, 4}}
	if c != want {
		Te.Errorf("got %+v, want %+v", c, want)
	}
}

func TestSources(Te *testing.T) {
	dir := Te.TempDir()
	file := filepath.Join(dir, "settings.yaml")
	content := "frame-rate: 3\nmax-frames: 50\nplot:\n  width: 8\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	Te.Setenv("FFEATRAJ_MAX_FRAMES", "20")
	Te.Setenv("FFEATRAJ_PLOT_HEIGHT", "6")
	v := viper.New()
	if err := Load(v, file); err != nil {
		Te.Fatal(err)
	}
	v.Set("verbose", true) //as a flag would
	c, err := NewConfig(v)
	if err != nil {
		Te.Fatal(err)
	}
	want := Config{FrameRate: 3, MaxFrames: 20, Verbose: true, Plot: PlotConfig{8, 6}}
	if c != want {
		Te.Errorf("got %+v, want %+v", c, want)
	}
}

func TestInvalid(Te *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"zero frame rate", "frame-rate", 0},
		{"negative max frames", "max-frames", -2},
		{"no plot width", "plot.width", 0.0},
		{"not a number", "frame-rate", "often"},
	}
	for _, tt := range tests {
		Te.Run(tt.name, func(Te *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)
			if _, err := NewConfig(v); err == nil {
				Te.Errorf("%s=%v should be rejected", tt.key, tt.value)
			}
		})
	}
	if err := Load(viper.New(), filepath.Join(Te.TempDir(), "nothere.yaml")); err == nil {
		Te.Error("a missing settings file given explicitly should be an error")
	}
}
