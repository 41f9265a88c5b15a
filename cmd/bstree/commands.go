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

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/ajwerner/bst"
	"github.com/ajwerner/bst/multiset"
	"github.com/ajwerner/bst/set"
	"github.com/ajwerner/bst/treemap"
)

// keyCompare returns the ordering used for command line keys.
func keyCompare(numeric bool) func(a, b string) int {
	if !numeric {
		return strings.Compare
	}
	return func(a, b string) int {
		x, _ := strconv.Atoi(a)
		y, _ := strconv.Atoi(b)
		return bst.Compare(x, y)
	}
}

// checkFlagKeys validates the keys given to the key-valued flags of cctx.
func checkFlagKeys(cctx *cli.Context, numeric bool, flags ...string) error {
	for _, f := range flags {
		if err := checkKeys(numeric, cctx.StringSlice(f)); err != nil {
			return errors.Wrapf(err, "--%s", f)
		}
	}
	return nil
}

func checkKeys(numeric bool, keys []string) error {
	if !numeric {
		return nil
	}
	for _, k := range keys {
		if _, err := strconv.Atoi(k); err != nil {
			return errors.Wrapf(err, "key %q is not an integer", k)
		}
	}
	return nil
}

func parseEntries(args []string) ([]treemap.Entry[string, string], error) {
	entries := make([]treemap.Entry[string, string], 0, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, errors.Errorf("argument %q is not of the form key=value", arg)
		}
		entries = append(entries, treemap.Entry[string, string]{Key: k, Value: v})
	}
	return entries, nil
}

func runSet(cctx *cli.Context) error {
	numeric := cctx.Bool("numeric")
	args := cctx.Args().Slice()
	if err := checkKeys(numeric, args); err != nil {
		return err
	}
	if err := checkFlagKeys(cctx, numeric, "erase"); err != nil {
		return err
	}
	s := set.Make(keyCompare(numeric))
	for _, k := range args {
		_, inserted := s.Insert(k)
		slog.Debug("insert", "key", k, "inserted", inserted, "len", s.Len())
	}
	for _, k := range cctx.StringSlice("erase") {
		it := s.Find(k)
		if !it.Valid() {
			slog.Warn("erase of absent key", "key", k)
			continue
		}
		if err := s.Erase(it); err != nil {
			return err
		}
		slog.Debug("erase", "key", k, "len", s.Len())
	}
	slog.Info("built set", "len", s.Len(), "height", s.Height())
	printKeys(cctx.App.Writer, s.Keys())
	if cctx.Bool("shape") {
		fmt.Fprint(cctx.App.Writer, renderShape(func(fn walkFunc) {
			s.Walk(func(depth int, side bst.Side, k string) bool {
				return fn(depth, side, k)
			})
		}))
	}
	return nil
}

func runMultiset(cctx *cli.Context) error {
	numeric := cctx.Bool("numeric")
	args := cctx.Args().Slice()
	if err := checkKeys(numeric, args); err != nil {
		return err
	}
	if err := checkFlagKeys(cctx, numeric, "erase"); err != nil {
		return err
	}
	m := multiset.Make(keyCompare(numeric))
	for _, k := range args {
		m.Insert(k)
		slog.Debug("insert", "key", k, "count", m.Count(k), "len", m.Len())
	}
	for _, k := range cctx.StringSlice("erase") {
		it := m.Find(k)
		if !it.Valid() {
			slog.Warn("erase of absent key", "key", k)
			continue
		}
		if err := m.Erase(it); err != nil {
			return err
		}
		slog.Debug("erase", "key", k, "count", m.Count(k), "len", m.Len())
	}
	slog.Info("built multiset", "len", m.Len(), "height", m.Height())
	printKeys(cctx.App.Writer, m.Keys())
	if cctx.Bool("shape") {
		fmt.Fprint(cctx.App.Writer, renderShape(func(fn walkFunc) {
			m.Walk(func(depth int, side bst.Side, k string) bool {
				return fn(depth, side, k)
			})
		}))
	}
	return nil
}

func runMap(cctx *cli.Context) error {
	numeric := cctx.Bool("numeric")
	entries, err := parseEntries(cctx.Args().Slice())
	if err != nil {
		return err
	}
	if err := checkFlagKeys(cctx, numeric, "erase", "get"); err != nil {
		return err
	}
	m := treemap.Make[string, string](keyCompare(numeric))
	for _, e := range entries {
		if err := checkKeys(numeric, []string{e.Key}); err != nil {
			return err
		}
		_, inserted := m.InsertOrAssign(e.Key, e.Value)
		slog.Debug("insert", "key", e.Key, "value", e.Value, "inserted", inserted, "len", m.Len())
	}
	for _, k := range cctx.StringSlice("erase") {
		if !m.Delete(k) {
			slog.Warn("erase of absent key", "key", k)
			continue
		}
		slog.Debug("erase", "key", k, "len", m.Len())
	}
	slog.Info("built map", "len", m.Len(), "height", m.Height())
	for _, e := range m.Entries() {
		fmt.Fprintf(cctx.App.Writer, "%s=%s\n", e.Key, e.Value)
	}
	for _, k := range cctx.StringSlice("get") {
		v, err := m.At(k)
		if errors.Is(err, bst.ErrKeyNotFound) {
			fmt.Fprintf(cctx.App.Writer, "%s: not found\n", k)
			continue
		}
		fmt.Fprintf(cctx.App.Writer, "%s: %s\n", k, v)
	}
	if cctx.Bool("shape") {
		fmt.Fprint(cctx.App.Writer, renderShape(func(fn walkFunc) {
			m.Walk(func(depth int, side bst.Side, k, v string) bool {
				return fn(depth, side, k+"="+v)
			})
		}))
	}
	return nil
}
