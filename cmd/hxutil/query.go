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

	"github.com/urfave/cli/v2"
)

func queryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Look up word forms in a dictionary",
		ArgsUsage: "[DIR] [FORM...]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("%w: unexpected number of arguments", errFlagParse)
			}

			d, err := openDict(c.Args().Get(0))
			if err != nil {
				return err
			}

			forms := c.Args().Slice()[1:]
			results, err := d.LookupAll(forms)
			if err != nil {
				return fmt.Errorf("%w: %w", errHxutil, err)
			}

			for _, r := range results {
				fmt.Printf("%s [%s] (%s)\n", r.Entry.Canonical(), r.Entry.ID(), r.Code)
				fmt.Println(r.Entry.Text())
			}
			return nil
		},
	}
}
