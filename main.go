// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	config     *Config
	log        zerolog.Logger
	out        io.Writer
	errOut     io.Writer
}

func (a *app) setup(cmd *cobra.Command) error {
	config, err := LoadConfig(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(config.Log, a.errOut)
	if err != nil {
		return err
	}
	a.config = config
	a.log = logger
	return nil
}

func (a *app) newSession() (*Session, error) {
	return NewSession(a.config, a.log)
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{
		out:    out,
		errOut: errOut,
		log:    zerolog.New(errOut).With().Timestamp().Logger(),
	}

	rootCmd := &cobra.Command{
		Use:           "ordtree",
		Version:       version,
		Short:         "Drive a height-balanced ordered key tree from the shell",
		Long:          fmt.Sprintf("ordtree [Version: %s%s%s]\n\nInsert, delete, search and walk keys in a self-balancing search tree.", Green, version, Reset),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is $HOME/"+configFileName+")")
	rootCmd.PersistentFlags().String("key-type", "", "key type: int, float or string")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Walk through the reference insert/delete scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := *a.config
			config.Tree.KeyType = keyTypeInt
			session, err := NewSession(&config, a.log)
			if err != nil {
				return err
			}
			return runDemo(a.out, session)
		},
	}

	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Bulk load keys from a file (one per line, - for stdin) and report on the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.newSession()
			if err != nil {
				return err
			}

			var progress io.Writer = a.errOut
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				progress = nil
			}
			result, err := loadFile(session, args[0], progress)
			if err != nil {
				return err
			}
			a.log.Info().Int("read", result.Read).Int("inserted", result.Inserted).
				Int("duplicates", result.Duplicates).Int("height", session.Keys().Height()).Msg("keys loaded")

			in := NewInterpreter(session, a.out)
			for _, flag := range []string{"print", "inorder", "export"} {
				if on, _ := cmd.Flags().GetBool(flag); on {
					if err := in.Exec(flag); err != nil {
						return err
					}
				}
			}
			return in.Exec("check")
		},
	}
	cmdLoad.Flags().Bool("print", false, "draw the tree after loading")
	cmdLoad.Flags().Bool("inorder", false, "print the keys in ascending order")
	cmdLoad.Flags().Bool("export", false, "print a YAML snapshot of the tree")
	cmdLoad.Flags().BoolP("quiet", "q", false, "do not draw a progress bar")

	var cmdRun = &cobra.Command{
		Use:   "run [SCRIPT]",
		Short: "Execute a tree script, reading stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.newSession()
			if err != nil {
				return err
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			script, err := openInput(path)
			if err != nil {
				return err
			}
			defer script.Close()
			return NewInterpreter(session, a.out).Run(script)
		},
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore [FILE]",
		Short: "Open the interactive tree explorer, optionally preloading keys",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.newSession()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if _, err := loadFile(session, args[0], a.errOut); err != nil {
					return err
				}
			}
			return runExplorer(session)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration, creating the default file if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(a.out, a.configPath, cmd.Flags())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the ordtree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print ordtree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, version)
		},
	}

	rootCmd.AddCommand(cmdDemo, cmdLoad, cmdRun, cmdExplore, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd, a
}

func main() {
	InitializeColors()

	rootCmd, a := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		a.log.Error().Err(err).Msg("ordtree failed")
		os.Exit(1)
	}
}
