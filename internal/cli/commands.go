/*
 * commands.go, part of goffea.
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


package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	ffea "github.com/ffea/goffea"
	"github.com/ffea/goffea/ffeaplot"
	"github.com/ffea/goffea/histo"
	"github.com/ffea/goffea/traj/ffeatraj"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

func (a *app) framesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frames <trajectory>",
		Short: "Print the number of frames in a trajectory, without reading them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := ffeatraj.EstimateFrames(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <trajectory>",
		Short: "Read a trajectory and print its shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			T, err := a.read(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Format: %s\nBlobs: %d\nFrames: %d\nSkipped: %d\n", T.Format(), T.NumBlobs(), T.Len(), T.Skipped())
			for b := 0; b < T.NumBlobs(); b++ {
				for c := 0; c < T.NumConformations(b); c++ {
					B := T.Blob(b, c)
					fmt.Fprintf(out, "Blob %d Conformation %d: %d nodes, %s, %d frames\n", b, c, B.NumNodes(), B.MotionState(), activeFrames(B.Frames()))
				}
			}
			return nil
		},
	}
}

func (a *app) rewriteCmd() *cobra.Command {
	var frame int
	var linear string
	cmd := &cobra.Command{
		Use:   "rewrite <input> <output>",
		Short: "Write a trajectory again, in the NEW format",
		Long: `Write a trajectory again, in the NEW format.

Only the first conformation of each blob is written. With --frame, only that
frame is written. With --linear, only the nodes listed in the given file are
written; each line of the file is "blob conformation node node ...".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if frame >= 0 && linear != "" {
				return fmt.Errorf("--frame and --linear can't be used together")
			}
			var sets ffea.NodeSets
			if linear != "" {
				s, err := openNodeSets(linear)
				if err != nil {
					return err
				}
				sets = s
			}
			T, err := a.read(args[0])
			if err != nil {
				return err
			}
			f, err := ffeatraj.Create(args[1])
			if err != nil {
				return err
			}
			switch {
			case frame >= 0:
				err = ffeatraj.WriteFrame(f, T, frame)
			case sets != nil:
				err = ffeatraj.WriteLinear(f, T, sets, a.logger)
			default:
				err = ffeatraj.Write(f, T, a.logger)
			}
			if err2 := f.Close(); err == nil {
				err = err2
			}
			return err
		},
	}
	cmd.Flags().IntVar(&frame, "frame", -1, "write only this frame")
	cmd.Flags().StringVar(&linear, "linear", "", "file with the linear nodes of each blob conformation")
	return cmd
}

func (a *app) centroidCmd() *cobra.Command {
	var b, c int
	var nodes []int
	var plotfile string
	cmd := &cobra.Command{
		Use:   "centroid <trajectory>",
		Short: "Print the centroid of a blob, or of some of its nodes, in every frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			T, err := a.read(args[0])
			if err != nil {
				return err
			}
			B, err := blob(T, b, c)
			if err != nil {
				return err
			}
			sub := -1
			if len(nodes) > 0 {
				if sub, err = B.DefineSubblob(nodes); err != nil {
					return err
				}
			}
			cent, index, err := B.CentroidTrajectory(sub)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, fr := range index {
				p := cent.Vec(i)
				fmt.Fprintf(out, "%d %8.6e %8.6e %8.6e\n", fr, p[0], p[1], p[2])
			}
			if plotfile == "" {
				return nil
			}
			title := fmt.Sprintf("Centroid of blob %d, conformation %d", b, c)
			return ffeaplot.Centroid(cent, index, title, plotfile, a.plotSize())
		},
	}
	cmd.Flags().IntVar(&b, "blob", 0, "blob index")
	cmd.Flags().IntVar(&c, "conf", 0, "conformation index")
	cmd.Flags().IntSliceVar(&nodes, "nodes", nil, "use only these nodes, as in 1,2,3")
	cmd.Flags().StringVar(&plotfile, "plot", "", "save a plot to this file (png, svg, pdf...)")
	return cmd
}

func (a *app) distanceCmd() *cobra.Command {
	var b, c, bins int
	var plotfile string
	cmd := &cobra.Command{
		Use:   "distance <trajectory> <node1> <node2>",
		Short: "Print the distance between two nodes of a blob in every frame",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n [2]int
			for i, s := range args[1:] {
				v, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("invalid node index '%s'", s)
				}
				n[i] = v
			}
			T, err := a.read(args[0])
			if err != nil {
				return err
			}
			B, err := blob(T, b, c)
			if err != nil {
				return err
			}
			_, dist, index, err := B.NodeDistance(n[0], n[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, fr := range index {
				fmt.Fprintf(out, "%d %8.6e\n", fr, dist[i])
			}
			if bins > 0 {
				if err := printHistogram(out, dist, bins); err != nil {
					return err
				}
			}
			if plotfile == "" {
				return nil
			}
			title := fmt.Sprintf("Distance between nodes %d and %d", n[0], n[1])
			return ffeaplot.Distance(dist, index, title, plotfile, a.plotSize())
		},
	}
	cmd.Flags().IntVar(&b, "blob", 0, "blob index")
	cmd.Flags().IntVar(&c, "conf", 0, "conformation index")
	cmd.Flags().StringVar(&plotfile, "plot", "", "save a plot to this file (png, svg, pdf...)")
	cmd.Flags().IntVar(&bins, "bins", 0, "also print the mean, standard deviation and a normalized histogram with this many bins")
	return cmd
}

// printHistogram writes a summary of values, as comment lines, to out.
func printHistogram(out io.Writer, values []float64, bins int) error {
	mean, std := histo.Summary(values)
	fmt.Fprintf(out, "# mean %8.6e stddev %8.6e\n", mean, std)
	dividers, err := histo.Uniform(floats.Min(values), floats.Max(values), bins)
	if err != nil {
		return err
	}
	H, err := histo.NewData(dividers, values)
	if err != nil {
		return err
	}
	H.Normalize()
	for _, line := range strings.Split(H.String(), "\n") {
		fmt.Fprintf(out, "# %s\n", line)
	}
	return nil
}

// activeFrames counts the frames where a conformation has positions.
func activeFrames(frames []*ffea.Frame) int {
	n := 0
	for _, f := range frames {
		if f != nil {
			n++
		}
	}
	return n
}
