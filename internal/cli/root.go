/*
 * root.go, part of goffea.
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


// Package cli holds the commands of the ffeatraj tool.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	ffea "github.com/ffea/goffea"
	"github.com/ffea/goffea/ffeaplot"
	"github.com/ffea/goffea/internal/config"
	"github.com/ffea/goffea/traj/ffeatraj"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
)

// app is the state shared by the commands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *log.Logger
	bindErr error
}

// NewRootCmd returns the ffeatraj command with all its subcommands.
// Settings are kept in their own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "ffeatraj",
		Short: "Inspect, convert and analyse FFEA trajectories",
		Long: `Inspect, convert and analyse FFEA trajectories.

Trajectories can be plain text or compressed with zstd (.zst) or gzip (.gz).
Settings are read from the flags, FFEATRAJ_* environment variables and an
optional ffeatraj.yaml file, in that order of precedence.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "settings file (default ./ffeatraj.yaml)")
	pf.Int("frame-rate", 1, "keep one of every n frames")
	pf.Int("max-frames", 0, "read at most this many frames after the first one (0 for all)")
	pf.BoolP("verbose", "v", false, "log progress to stderr")
	pf.Float64("plot-width", 5, "plot width, in inches")
	pf.Float64("plot-height", 4, "plot height, in inches")

	// Bind the parameters to viper
	a.bindErr = bindFlags(a.v, pf, map[string]string{
		"frame-rate":  "frame-rate",
		"max-frames":  "max-frames",
		"verbose":     "verbose",
		"plot.width":  "plot-width",
		"plot.height": "plot-height",
	})

	root.AddCommand(
		a.framesCmd(),
		a.infoCmd(),
		a.rewriteCmd(),
		a.centroidCmd(),
		a.distanceCmd(),
	)
	return root
}

// bindFlags binds each viper key to the flag of the given name in fs.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("cli: no flag named %s for setting %s", name, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("cli: binding setting %s: %w", key, err)
		}
	}
	return nil
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func (a *app) load(stderr io.Writer) error {
	if a.bindErr != nil {
		return a.bindErr
	}
	if err := config.Load(a.v, a.cfgFile); err != nil {
		return err
	}
	c, err := config.NewConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = c
	if c.Verbose {
		a.logger = log.New(stderr, "ffeatraj: ", 0)
	}
	return nil
}

func (a *app) options() *ffeatraj.Options {
	return &ffeatraj.Options{MaxFrames: a.cfg.MaxFrames, FrameRate: a.cfg.FrameRate, Logger: a.logger}
}

func (a *app) plotSize() ffeaplot.Size {
	return ffeaplot.Size{
		Width:  vg.Length(a.cfg.Plot.Width) * vg.Inch,
		Height: vg.Length(a.cfg.Plot.Height) * vg.Inch,
	}
}

func (a *app) read(filename string) (*ffea.Trajectory, error) {
	return ffeatraj.ReadFile(filename, a.options())
}

// blob checks the indexes before asking the trajectory for a blob.
func blob(T *ffea.Trajectory, b, c int) (*ffea.BlobTraj, error) {
	if b < 0 || b >= T.NumBlobs() {
		return nil, fmt.Errorf("blob %d requested, the trajectory has %d blobs", b, T.NumBlobs())
	}
	if c < 0 || c >= T.NumConformations(b) {
		return nil, fmt.Errorf("conformation %d requested, blob %d has %d conformations", c, b, T.NumConformations(b))
	}
	return T.Blob(b, c), nil
}

// openNodeSets reads the linear node sets from filename.
func openNodeSets(filename string) (ffea.NodeSets, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ffea.ReadNodeSets(f)
}
