package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/gostreams/fixtures"
	"github.com/kbukum/gostreams/logger"
	"github.com/kbukum/gostreams/runner"
	"github.com/kbukum/gostreams/validation"
)

func runCmd(opts *globalOptions) *cobra.Command {
	var all bool
	var lecture int
	var failFast bool

	c := &cobra.Command{
		Use:   "run [names...]",
		Short: "Run demos by name, by lecture or all of them",
		Example: `  streams run min max
  streams run --lecture 7
  streams run --all --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := validation.New().Min("lecture", lecture, 0)
			v.Custom(all || lecture > 0 || len(args) > 0, "names", "name at least one demo, or use --all or --lecture")
			if err := v.Validate(); err != nil {
				return err
			}

			return opts.run(cmd, func(ctx context.Context, e *env) error {
				cfg := e.app.Cfg
				ds, err := fixtures.Load(ctx, fixtures.Options{
					PeoplePath: cfg.Fixtures.People,
					CarsPath:   cfg.Fixtures.Cars,
				})
				if err != nil {
					return err
				}

				r, err := runner.New(e.registry, ds,
					runner.WithServiceName(e.app.Name),
					runner.WithFailFast(failFast),
					runner.WithMetrics(e.app.Metrics),
					runner.WithObserver(func(o runner.Outcome) {
						if err := e.renderer.Outcome(ctx, o); err != nil {
							logger.Get("cli").Warn("render failed", logger.ErrorFields("render", err))
						}
					}),
				)
				if err != nil {
					return err
				}

				cases, err := r.Select(args, all, lecture)
				if err != nil {
					return err
				}

				report, runErr := r.Run(ctx, cases)
				if err := e.renderer.Report(ctx, report); err != nil {
					return err
				}
				return runErr
			})
		},
	}

	f := c.Flags()
	f.BoolVarP(&all, "all", "a", false, "run every demo")
	f.IntVarP(&lecture, "lecture", "l", 0, "run every demo of this lecture")
	f.BoolVar(&failFast, "fail-fast", false, "stop after the first failing demo")
	return c
}
