package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benedrone/sphmesh/internal/config"
	"github.com/benedrone/sphmesh/internal/meshfile"
	"github.com/benedrone/sphmesh/internal/pathrun"
	"github.com/benedrone/sphmesh/internal/xerrors"
	"github.com/benedrone/sphmesh/internal/xlog"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario_file>",
		Short: "Run every scenario in a scenario file",
		Args:  cobra.ExactArgs(1),
	}

	v := config.Bind(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := config.ReadConfigFile(v); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		cfg := config.Resolve(v)

		log, err := xlog.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		return runScenarios(args[0], cfg, log)
	}

	return cmd
}

func runScenarios(scenarioPath string, cfg config.Config, log *zap.Logger) error {
	scenarios, err := meshfile.LoadScenarios(scenarioPath)
	if err != nil {
		return err
	}

	runner := pathrun.New(pathrun.Options{
		OutDir:    cfg.OutDir,
		Indexed:   cfg.Indexed,
		BandIndex: cfg.BandIndex,
	}, log)

	var failed bool
	for i, s := range scenarios {
		if err := runOne(runner, s, i, log); err != nil {
			log.Error("scenario failed", zap.Int("index", i), zap.Error(err))
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("one or more scenarios failed; see logged errors")
	}
	return nil
}

// runOne recovers a GeometricPrecondition panic from the search engine so one
// malformed scenario cannot abort the batch, per spec.md §7's propagation
// rule. Any other panic is re-raised: it is not the failure mode this
// boundary exists to contain.
func runOne(runner *pathrun.Runner, s meshfile.Scenario, idx int, log *zap.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok && xerrors.IsGeometricPrecondition(rerr) {
				log.Error("geometric precondition violated", zap.Error(rerr), zap.String("label", s.Label))
				err = rerr
				return
			}
			panic(r)
		}
	}()
	return runner.RunScenario(s, idx)
}
