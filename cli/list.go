/*
 * list.go, part of gotrim.
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
	"github.com/spf13/cobra"

	trim "github.com/trific/gotrim"
	"github.com/trific/gotrim/config"
)

//ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Inputs bool
}

//NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list <experiment.yaml>",
		Short: "List the simulation outputs of an experiment",
		Long: `List the TRIM outputs already stored for an experiment, so they can
be analyzed again without simulating. With --inputs, list the inputs instead.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := config.Load(args[0])
			if err != nil {
				return err
			}
			e := trim.NewExperiment(exp.OutputRoot, exp.Name)
			list, key := e.Outputs, "outputs"
			if opts.Inputs {
				list, key = e.Inputs, "inputs"
			}
			names, err := list()
			if err != nil {
				return err
			}
			return printList(cmd.OutOrStdout(), opts.Format, key, names)
		},
	}

	cmd.Flags().BoolVar(&opts.Inputs, "inputs", false, "list the input files instead of the outputs")

	return cmd
}
