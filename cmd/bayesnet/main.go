// SPDX-License-Identifier: MIT

// Command bayesnet loads YAML network descriptions and answers exact
// inference queries over them.
//
//	bayesnet marginal testdata/sprinkler.yaml
//	bayesnet posterior testdata/sprinkler.yaml Rain --evidence WetGrass=T
//	bayesnet validate testdata/sprinkler.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bayesnet/config"
	"github.com/katalvlaran/bayesnet/metrics"
	"github.com/katalvlaran/bayesnet/netfile"
	"github.com/katalvlaran/bayesnet/network"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	// flags
	configPath  string
	verbose     bool
	dumpMetrics bool

	root    *cobra.Command
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Registry
}

func newApp() *app {
	a := &app{}

	root := &cobra.Command{
		Use:   "bayesnet",
		Short: "Exact inference over discrete Bayesian networks",
		Long: `bayesnet reads a network from a YAML file and computes marginal and
posterior distributions by full enumeration.

Results are exact; run time grows exponentially with the number of hidden
variables, so it suits small networks.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "print Prometheus metrics on exit")

	root.AddCommand(
		a.marginalCmd(),
		a.posteriorCmd(),
		a.structureCmd(),
		a.relativesCmd(),
		a.validateCmd(),
	)
	a.root = root

	return a
}

// execute runs the command tree, then flushes the logger and dumps metrics
// whether or not the command succeeded.
func (a *app) execute() error {
	err := a.root.Execute()
	if terr := a.teardown(a.root.ErrOrStderr()); terr != nil {
		err = errors.Join(err, terr)
	}

	return err
}

// setup loads the configuration and builds the logger and metrics registry.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.ZapLevel())
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if a.dumpMetrics || cfg.Metrics {
		a.metrics = metrics.NewRegistry()
	}

	return nil
}

func (a *app) teardown(w io.Writer) error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.metrics == nil || !a.dumpMetrics {
		return nil
	}

	families, err := a.metrics.Gatherer().Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// load reads a network file with the invocation's logger, metrics and
// engine settings attached.
func (a *app) load(path string) (*network.Network, error) {
	opts := []network.Option{
		network.WithLogger(a.logger),
		network.WithEngineOptions(a.cfg.EngineOptions()...),
	}
	if a.metrics != nil {
		opts = append(opts, network.WithMetrics(a.metrics))
	}

	n, err := netfile.Load(path, opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("network loaded",
		zap.String("path", path),
		zap.String("network", n.Name()),
		zap.Int("nodes", n.Len()))

	return n, nil
}

func main() {
	if err := newApp().execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
