package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/gostreams/bootstrap"
	"github.com/kbukum/gostreams/config"
	"github.com/kbukum/gostreams/console"
	"github.com/kbukum/gostreams/demo"
	"github.com/kbukum/gostreams/errors"
	"github.com/kbukum/gostreams/observability"
	"github.com/kbukum/gostreams/validation"
)

// ServiceName names the program in config files, env vars and telemetry.
const (
	ServiceName = "streams"
	envPrefix   = "STREAMS"
)

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return errors.ExitOK
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return exitCode(err)
}

// exitCode maps AppErrors to their sysexits code. Anything else comes from
// cobra's own argument and flag parsing.
func exitCode(err error) int {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.ExitCode()
	}
	return errors.ExitUsage
}

// globalOptions holds the persistent flags.
type globalOptions struct {
	configFile string
	envFile    string
	debug      bool
	noColor    bool
	format     string
	pageSize   int
}

// env is what every command body receives.
type env struct {
	app      *bootstrap.App[*config.AppConfig]
	registry *demo.Registry
	renderer console.Renderer
	stdout   io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           ServiceName,
		Short:         "Lazy query pipelines over people and cars, one demo per lecture",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.InvalidInput("flags", err.Error())
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (default: ./cmd/streams/config.yml, ./config/config.yml or ./config.yml)")
	pf.StringVar(&opts.envFile, "env-file", "", ".env file to load before reading STREAMS_* variables")
	pf.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable styled output")
	pf.StringVar(&opts.format, "format", "", "output format: text|json (default from config)")
	pf.IntVar(&opts.pageSize, "page-size", 0, "values per page in text output, 0 disables paging (default from config)")

	cmd.AddCommand(
		listCmd(opts),
		showCmd(opts),
		runCmd(opts),
		versionCmd(opts),
	)
	return cmd
}

// validate checks the persistent flags that were set explicitly.
func (o *globalOptions) validate(cmd *cobra.Command) error {
	v := validation.New()
	if cmd.Flags().Changed("format") {
		v.OneOf("format", o.format, config.Formats())
	}
	if cmd.Flags().Changed("page-size") {
		v.Min("page_size", o.pageSize, 0)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// loadConfig reads the configuration and applies flag overrides on top.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	if err := o.validate(cmd); err != nil {
		return nil, err
	}

	loaderOpts := []config.LoaderOption{config.WithEnvPrefix(envPrefix)}
	if o.configFile != "" {
		if _, err := os.Stat(o.configFile); err != nil {
			return nil, errors.NotFound("config file", o.configFile)
		}
		loaderOpts = append(loaderOpts, config.WithConfigFile(o.configFile))
	}
	if o.envFile != "" {
		loaderOpts = append(loaderOpts, config.WithEnvFile(o.envFile))
	}

	cfg, err := config.Load(ServiceName, loaderOpts...)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if o.debug {
		cfg.Debug = true
		cfg.Logging.Level = "debug"
	}
	if o.noColor {
		cfg.Output.NoColor = true
		cfg.Logging.NoColor = true
	}
	if flags.Changed("format") {
		cfg.Output.Format = o.format
	}
	if flags.Changed("page-size") {
		cfg.Output.PageSize = o.pageSize
	}
	return cfg, nil
}

// run loads the configuration, builds the app and runs fn inside a
// cli.command span.
func (o *globalOptions) run(cmd *cobra.Command, fn func(ctx context.Context, e *env) error) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	app, err := bootstrap.NewApp(cfg,
		bootstrap.WithTracing(cfg.Observability.TracingEnabled, cfg.Observability.SampleRate),
		bootstrap.WithMetrics(cfg.Observability.MetricsEnabled),
	)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	renderer, err := console.New(stdout, console.Options{
		Format:   cfg.Output.Format,
		NoColor:  cfg.Output.NoColor,
		PageSize: cfg.Output.PageSize,
	})
	if err != nil {
		return err
	}

	e := &env{app: app, registry: demo.Catalog(), renderer: renderer, stdout: stdout}
	return app.RunTask(cmd.Context(), func(ctx context.Context) error {
		ctx, span := observability.StartSpan(ctx, observability.SpanCommand)
		defer span.End()
		span.SetAttributes(attribute.String(observability.AttrOperationName, cmd.CommandPath()))

		err := fn(ctx, e)
		if err != nil {
			observability.SetSpanError(ctx, err)
		}
		return err
	})
}
