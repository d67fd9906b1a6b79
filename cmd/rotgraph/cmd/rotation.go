// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRotationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rotation <plate>...",
		Short: "Print composed absolute rotations",
		Long: `Print the rotation of each plate relative to the anchor plate.

Example:
  rotgraph rotation 701 801 --data rotations.yaml --time 52`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.tree()
			if err != nil {
				return err
			}
			for _, s := range args {
				plate, err := parsePlate(s)
				if err != nil {
					return err
				}
				rot, circ := tree.GetComposedAbsoluteRotation(plate)
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s [%s]\n", plate, rot, circ)
			}
			return nil
		},
	}
}

func newRelativeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "relative <moving> <fixed>",
		Short: "Print the rotation of one plate relative to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			moving, err := parsePlate(args[0])
			if err != nil {
				return err
			}
			fixed, err := parsePlate(args[1])
			if err != nil {
				return err
			}
			tree, err := a.tree()
			if err != nil {
				return err
			}
			rot, circ := tree.RelativeRotation(moving, fixed)
			fmt.Fprintf(cmd.OutOrStdout(), "%d rel %d: %s [%s]\n", moving, fixed, rot, circ)
			return nil
		},
	}
}

func newEdgesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edges <plate>",
		Short: "List every pole whose fixed plate is <plate>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plate, err := parsePlate(args[0])
			if err != nil {
				return err
			}
			tree, err := a.tree()
			if err != nil {
				return err
			}
			for _, e := range tree.FindEdgesWhoseFixedPlateIDMatch(plate) {
				mark := " "
				if e.InTree() {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, e)
			}
			return nil
		},
	}
}
