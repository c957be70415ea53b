/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tatefmt/internal/paginate"
	"tatefmt/internal/preview"
)

func newPreviewCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Show page breaks and heading placement in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			pages := paginate.Paginate(text)
			fmt.Fprint(cmd.OutOrStdout(), preview.Render(pages, preview.Options{Plain: plain}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colors and borders")
	return cmd
}
