package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/gostreams/errors"
	"github.com/kbukum/gostreams/validation"
)

func listCmd(opts *globalOptions) *cobra.Command {
	var lecture int

	c := &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validation.New().Min("lecture", lecture, 0).Validate(); err != nil {
				return err
			}
			return opts.run(cmd, func(_ context.Context, e *env) error {
				cases := e.registry.List()
				if lecture > 0 {
					cases = e.registry.ByLecture(lecture)
					if len(cases) == 0 {
						return errors.NotFound("lecture", fmt.Sprint(lecture))
					}
				}
				return e.renderer.Cases(cases)
			})
		},
	}

	c.Flags().IntVarP(&lecture, "lecture", "l", 0, "only list demos of this lecture")
	return c
}
