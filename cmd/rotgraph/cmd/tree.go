// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the reconstruction tree",
		Long: `Print the reconstruction tree for the anchor plate at the
reconstruction time, one edge per line, followed by any anomalies.

Example:
  rotgraph tree --data rotations.yaml --anchor 0 --time 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.tree()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err = tree.Fprint(out); err != nil {
				return err
			}
			for _, an := range tree.Anomalies() {
				fmt.Fprintf(out, "anomaly: %s conflicts with %s\n", an.Edge, an.First)
			}
			return nil
		},
	}
}
