// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command movi renders HTML templates with data-bind annotations
// against JSON, TOML or YAML model files, and keeps the output up
// to date as the model changes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"cogentcore.org/movi/base/errors"
	"cogentcore.org/movi/base/logx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd returns the root command with all of the subcommands.
func newRootCmd() *cobra.Command {
	cfg := &Config{}
	var configFile string
	var veryVerbose, verbose, quiet bool

	root := &cobra.Command{
		Use:           "movi",
		Short:         "Render and serve data-bound HTML templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
			logx.SetDefault(cmd.ErrOrStderr())
			if configFile != "" {
				cf, err := homedir.Expand(configFile)
				if err != nil {
					return err
				}
				if err := cfg.Load(cf, cmd.Flags()); err != nil {
					return err
				}
			}
			return cfg.expandPaths()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "TOML config file with default flag values")
	pf.StringVarP(&cfg.Template, "template", "t", "", "HTML or markdown template file")
	pf.StringVarP(&cfg.Model, "model", "m", "", "model file (.json, .toml, .yaml)")
	pf.StringVarP(&cfg.Output, "output", "o", "", "output file (stdout if empty)")
	pf.StringArrayVar(&cfg.Set, "set", nil, "set a model value before rendering, as path=value")
	pf.BoolVar(&cfg.Strict, "strict", false, "report malformed binding expressions")
	pf.BoolVar(&veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&verbose, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(newRenderCmd(cfg), newWatchCmd(cfg), newServeCmd(cfg))
	return root
}

func newRenderCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render a template against a model once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cfg)
			if err != nil {
				return err
			}
			return s.write(cmd.OutOrStdout())
		},
	}
}

func newWatchCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Render a template again whenever it or its model changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cfg)
			if err != nil {
				return err
			}
			if err := s.write(cmd.OutOrStdout()); err != nil {
				return err
			}
			return watch(cmd.Context(), s.files(), func(file string) {
				if errors.Log(s.update(file)) == nil {
					errors.Log(s.write(cmd.OutOrStdout()))
				}
			})
		},
	}
}

func newServeCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a rendered template with live updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cfg)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), s, cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", "localhost:8080", "address to serve on")
	return cmd
}
