/*
 * show.go, part of gotrim.
 *
 *
 * Copyright 2017 The gotrim authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	trim "github.com/trific/gotrim"
	"github.com/trific/gotrim/config"
)

//ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Ion int
}

//NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <experiment.yaml>",
		Short: "Print the TRIM input for one ion",
		Long: `Print the TRIM batch input for one of the ions of an experiment,
without writing anything.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := config.Load(args[0])
			if err != nil {
				return err
			}
			batch, err := exp.Build()
			if err != nil {
				return err
			}
			if opts.Ion < 1 || opts.Ion > len(batch.Ions) {
				return fmt.Errorf("ion %d out of range, the experiment has %d ions", opts.Ion, len(batch.Ions))
			}
			_, data, err := trim.Compile(batch.Stack, batch.Ions[opts.Ion-1])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().IntVar(&opts.Ion, "ion", 1, "ion to show, starting from 1")

	return cmd
}
