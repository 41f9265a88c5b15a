// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Command bstree builds one of the bst containers from its arguments and
// prints its keys in order and, optionally, the shape of the tree.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	newApp(os.Stdout).RunAndExitOnError()
}

func newApp(stdout io.Writer) *cli.App {
	app := &cli.App{
		Name:  "bstree",
		Usage: "inspect ordered containers built on an unbalanced binary search tree",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"BSTREE_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Writer: stdout,
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			return nil
		},
	}
	containerFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:  "numeric",
			Usage: "compare keys as integers rather than strings",
		},
		&cli.StringSliceFlag{
			Name:  "erase",
			Usage: "key to erase after building (may be repeated)",
		},
		&cli.BoolFlag{
			Name:  "shape",
			Usage: "print the shape of the tree",
		},
	}
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:      "set",
			Usage:     "build a set, dropping duplicate keys",
			ArgsUsage: "<key>...",
			Flags:     containerFlags,
			Action:    runSet,
		},
		&cli.Command{
			Name:      "multiset",
			Usage:     "build a multiset, keeping duplicate keys in insertion order",
			ArgsUsage: "<key>...",
			Flags:     containerFlags,
			Action:    runMultiset,
		},
		&cli.Command{
			Name:      "map",
			Usage:     "build a map from key=value pairs",
			ArgsUsage: "<key=value>...",
			Flags: append([]cli.Flag{
				&cli.StringSliceFlag{
					Name:  "get",
					Usage: "key to look up after building (may be repeated)",
				},
			}, containerFlags...),
			Action: runMap,
		},
	}
	return app
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

func printKeys(w io.Writer, keys []string) {
	fmt.Fprintln(w, strings.Join(keys, " "))
}
