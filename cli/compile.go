/*
 * compile.go, part of gotrim.
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

	"github.com/trific/gotrim/config"
)

//NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <experiment.yaml>",
		Short: "Write the TRIM inputs of an experiment",
		Long: `Write one TRIM batch input per ion in the experiment description, all
through the same target, to the IN directory of the experiment.

The names of the files written are printed. If some ions fail, the
others are still written and the command exits with an error.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCompile(opts *RootOptions, path string, cmd *cobra.Command) error {
	exp, err := config.Load(path)
	if err != nil {
		return err
	}
	batch, err := exp.Build()
	if err != nil {
		return err
	}
	if err := batch.Experiment.Prepare(); err != nil {
		return err
	}
	names, errs := batch.Experiment.WriteBatch(batch.Stack, batch.Ions)
	written := make([]string, 0, len(names))
	failed := 0
	for i, e := range errs {
		if e != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "ion %d (%s): %v\n", i+1, batch.Ions[i].Symbol, e)
			continue
		}
		written = append(written, names[i])
	}
	if err := printList(cmd.OutOrStdout(), opts.Format, "written", written); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be written", failed, len(errs))
	}
	return nil
}
