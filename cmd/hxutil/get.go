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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/histlex/histlex/article"
	"github.com/histlex/histlex/key"
)

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Load a single entry by external identifier or key",
		ArgsUsage: "[DIR] [ID|KEY]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "key",
				Usage:   "interpret the argument as a key of the form N-WORD",
				Aliases: []string{"k"},
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("%w: unexpected number of arguments", errFlagParse)
			}

			d, err := openDict(c.Args().Get(0))
			if err != nil {
				return err
			}

			var a *article.Article
			var ok bool
			if c.Bool("key") {
				k, err := key.ParsePath(c.Args().Get(1))
				if err != nil {
					return fmt.Errorf("%w: %w", errFlagParse, err)
				}
				a, ok, err = d.TryLoad(k)
				if err != nil {
					return fmt.Errorf("%w: %w", errHxutil, err)
				}
			} else {
				a, ok, err = d.TryLoadID(c.Args().Get(1))
				if err != nil {
					return fmt.Errorf("%w: %w", errHxutil, err)
				}
			}
			if !ok {
				return fmt.Errorf("%w: no entry for %q", errHxutil, c.Args().Get(1))
			}

			fmt.Printf("%s [%s]\n", a.Canonical(), a.ID())
			fmt.Printf("forms: %s\n", strings.Join(a.Forms(), ", "))
			fmt.Println(a.Text())
			return nil
		},
	}
}
