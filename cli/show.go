package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func showCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Describe one demo without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(_ context.Context, e *env) error {
				c, err := e.registry.Get(args[0])
				if err != nil {
					return err
				}
				return e.renderer.Case(c)
			})
		},
	}
}
