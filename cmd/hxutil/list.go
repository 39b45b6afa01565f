// Copyright 2025 The histlex Authors
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
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/histlex/histlex"
	"github.com/histlex/histlex/article"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List dictionaries under a directory",
		ArgsUsage: "[DIR]",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: unexpected number of arguments", errFlagParse)
			}

			dicts, errs := histlex.OpenAll(c.Args().Get(0), article.Codec{}, nil)
			for _, err := range errs {
				fmt.Fprintln(os.Stderr, err)
			}

			tbl := table.New("PATH", "ENTRIES", "FORMS")
			for _, d := range dicts {
				keys, err := d.Keys()
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					continue
				}
				tbl.AddRow(d.Path(), len(keys), countForms(d))
			}
			tbl.Print()

			if len(errs) > 0 {
				return fmt.Errorf("%w: some dictionaries could not be opened", errHxutil)
			}
			return nil
		},
	}
}

// countForms counts the distinct word forms in the dictionary's index.
func countForms(d *histlex.Dict[*article.Article]) int {
	n := 0
	last := ""
	// Tuples are emitted grouped by form in trie order.
	for i, t := range d.Index().Tuples() {
		if i == 0 || t.Form != last {
			n++
			last = t.Form
		}
	}
	return n
}
