// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/sayujks0071/life-sub001/bridge"
	"github.com/sayujks0071/life-sub001/out"
	"github.com/sayujks0071/life-sub001/sim"
)

// Version of rodsim
const Version = "1.0.0"

var (
	verbose bool   // show messages
	dirout  string // replaces data.dirout
)

var rootCmd = &cobra.Command{
	Use:           "rodsim",
	Short:         "rodsim computes shapes of elastic rods under information-elasticity coupling",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		io.Verbose = verbose
		if verbose && cmd.Name() != "version" {
			io.PfWhite("\nrodsim Version %s -- rod curvature and information-elasticity coupling\n", Version)
			io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
			io.Pf("Use of this source code is governed by a BSD-style\n")
			io.Pf("license that can be found in the LICENSE file.\n")
			io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
				"command", "cmd", cmd.Name(),
				"arguments", "args", strings.Join(args, " "),
				"output directory", "dirout", dirout,
				"show messages", "verbose", verbose,
			))
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run <file.sim|file.yaml>",
	Short: "Compute baseline and coupled shapes, eigenmodes and metrics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analysis, err := sim.NewMain(args[0], dirout, verbose)
		if err != nil {
			return err
		}
		rep, err := analysis.Run(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", rep.Comparison)
		fmt.Fprintf(cmd.OutOrStdout(), "wavelength preserved = %v\n", rep.Comparison.WavelengthPreserved())
		if rep.Bridge != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "bridge: %s\n", rep.Bridge.Message)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "manifest: %s\n", rep.Manifest)
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep <file.sim|file.yaml>",
	Short: "Evaluate all coupling coefficients of the sweep block concurrently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analysis, err := sim.NewMain(args[0], dirout, verbose)
		if err != nil {
			return err
		}
		rows, err := analysis.RunSweep(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%8s %8s %12s %12s %12s\n", "chik", "chie", "λ ratio", "Δφ", "A ratio")
		for _, r := range rows {
			c := r.Comparison
			fmt.Fprintf(cmd.OutOrStdout(), "%8g %8g %12.6f %12.6f %12.6f\n", r.Point.ChiK, r.Point.ChiE, c.WavelengthRatio, c.PhaseShift, c.AmplitudeRatio)
		}
		return nil
	},
}

var modesCmd = &cobra.Command{
	Use:   "modes <file.sim|file.yaml>",
	Short: "Compute the eigenmodes of the clamped-free stiffness operator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analysis, err := sim.NewMain(args[0], dirout, verbose)
		if err != nil {
			return err
		}
		sp, err := analysis.Spectrum()
		if err != nil {
			return err
		}
		dir, key := analysis.Sim.DirOut, analysis.Sim.Key
		if err = out.WriteSpectrum(dir, key, analysis.State.S, sp); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%6s %23s %23s\n", "mode", "lambda", "omega")
		for i := 0; i < sp.Len(); i++ {
			fmt.Fprintf(cmd.OutOrStdout(), "%6d %23.15e %23.15e\n", i+1, sp.Lambda[i], sp.Omega[i])
		}
		return nil
	},
}

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "List the registered rod-dynamics solvers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names := bridge.Names()
		if len(names) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no rod-dynamics solver is registered\n")
			return
		}
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", name)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rodsim",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rodsim version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", true, "show messages")
	rootCmd.PersistentFlags().StringVarP(&dirout, "dirout", "o", "", "directory for output; replaces data.dirout")
	rootCmd.AddCommand(runCmd, sweepCmd, modesCmd, bridgeCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		io.Verbose = true
		io.PfRed("\nERROR: %v\n", err)
		stop()
		os.Exit(1)
	}
}
