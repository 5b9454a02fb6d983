// Copyright 2016 Gary Burd
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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

var (
	flagNvimPath string
	flagOutDir   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "apigen",
		Short: "apigen generates the nvim package's typed API wrapper methods",
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "fetch a Neovim API manifest and render the nvim package's generated sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), flagNvimPath, flagOutDir)
		},
	}
	cmd.Flags().StringVar(&flagNvimPath, "nvim-path", "nvim", "path to the nvim binary to introspect")
	cmd.Flags().StringVar(&flagOutDir, "out", "nvim", "directory the generated *_generated.go files are written to")
	return cmd
}

var groups = []Group{GroupNvim, GroupBuffer, GroupTabpage, GroupWindow}

func runGenerate(ctx context.Context, nvimPath, outDir string) error {
	manifest, err := FetchManifest(ctx, nvimPath)
	if err != nil {
		return err
	}

	byGroup := make(map[Group][]Function)
	for _, fn := range manifest.Functions {
		g, _ := PartitionGroup(fn.Name)
		byGroup[g] = append(byGroup[g], fn)
	}

	paths := make([]string, len(groups))
	g, _ := errgroup.WithContext(ctx)
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			fns, err := BuildRenderedFunctions(group, byGroup[group])
			if err != nil {
				return err
			}
			src, err := RenderGroup(group, fns)
			if err != nil {
				return err
			}
			path := GroupFileName(outDir, group)
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return fmt.Errorf("apigen: writing %s: %w", path, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// imports.Process cleans up grouping/import ordering; a failure here
	// should not fail generation, since the rendered source is already
	// valid, compilable Go.
	for _, path := range paths {
		if err := formatFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "apigen: goimports %s: %v\n", path, err)
		}
	}
	return nil
}

func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		return err
	}
	return os.WriteFile(path, formatted, 0o644)
}
