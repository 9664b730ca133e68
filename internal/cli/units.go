package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/benchmocker/internal/suites"
)

// unitList renders one unit name per line in text mode.
type unitList []string

func (l unitList) WriteText(w io.Writer) error {
	for _, name := range l {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// NewUnitsCommand creates the units command.
func NewUnitsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the registered work units",
		Long: `List the work units that run benchmarks, in registry order.
The names are the ones accepted by run --units.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var names unitList
			for _, u := range suites.Units() {
				names = append(names, u.Name)
			}
			return newFormatter(rootOpts, cmd).Success(names)
		},
	}
}
