// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bayesnet/cpt"
	"github.com/katalvlaran/bayesnet/network"
)

func (a *app) marginalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "marginal FILE [VAR...]",
		Short: "Print prior marginals, ignoring evidence in the file",
		Long: `Print the marginal distribution of each named variable, or of every
variable when none are named. Variables are computed concurrently, bounded
by the workers setting, and printed in name order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args[0])
			if err != nil {
				return err
			}

			names := append([]string(nil), args[1:]...)
			if len(names) == 0 {
				names = n.Names()
			}
			sort.Strings(names)

			results := make([]cpt.Distribution, len(names))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Workers)
			for i, name := range names {
				i, name := i, name
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					d, err := n.Marginal(name)
					if err != nil {
						return fmt.Errorf("marginal %s: %w", name, err)
					}
					results[i] = d
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			a.logger.Debug("marginals computed", zap.Int("variables", len(names)), zap.Int("workers", a.cfg.Workers))
			for i, name := range names {
				if err := printDistribution(cmd.OutOrStdout(), n, name, results[i]); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) posteriorCmd() *cobra.Command {
	var evidence map[string]string

	cmd := &cobra.Command{
		Use:   "posterior FILE VAR",
		Short: "Print a posterior given the file's evidence and --evidence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			for name, value := range evidence {
				n.Observe(name, value)
			}

			d, err := n.Posterior(args[1])
			if err != nil {
				return fmt.Errorf("posterior %s: %w", args[1], err)
			}
			pe, err := n.EvidenceProbability()
			if err != nil {
				return fmt.Errorf("evidence probability: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "evidence: %s\n", formatEvidence(n.Evidence()))
			fmt.Fprintf(out, "P(evidence)=%.4f\n", pe)

			return printDistribution(out, n, args[1], d)
		},
	}
	cmd.Flags().StringToStringVarP(&evidence, "evidence", "e", nil, "observed value as VAR=VALUE; repeatable")

	return cmd
}

// printDistribution writes "name: l1=p1 l2=p2" with levels in node order.
func printDistribution(w io.Writer, n *network.Network, name string, d cpt.Distribution) error {
	nd, err := n.Node(name)
	if err != nil {
		return err
	}
	parts := make([]string, 0, len(d))
	for _, level := range nd.Levels() {
		parts = append(parts, fmt.Sprintf("%s=%.4f", level, d[level]))
	}
	_, err = fmt.Fprintf(w, "%s: %s\n", name, strings.Join(parts, " "))

	return err
}

func formatEvidence(ev map[string]string) string {
	if len(ev) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(ev))
	for name := range ev {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + ev[name]
	}

	return strings.Join(parts, " ")
}
