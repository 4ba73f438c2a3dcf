// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) structureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "structure FILE",
		Short: "Print every node with its parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			s := n.Structure()
			for _, name := range n.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s <- %s\n", name, joinOrNone(s[name]))
			}

			return nil
		},
	}
}

func (a *app) relativesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relatives FILE VAR",
		Short: "Print the parents and children of a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			parents, err := n.ParentsOf(args[1])
			if err != nil {
				return err
			}
			children, err := n.ChildrenOf(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "parents: %s\nchildren: %s\n", joinOrNone(parents), joinOrNone(children))

			return nil
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check tables, parents, cycles and evidence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := n.Validate(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			order, err := n.TopologicalOrder()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%d nodes)\norder: %s\n", n.Name(), n.Len(), strings.Join(order, ", "))

			return nil
		},
	}
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}

	return strings.Join(names, ", ")
}
