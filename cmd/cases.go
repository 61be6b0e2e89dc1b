package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/chamander/harry/internal/catalog"
	"github.com/chamander/harry/internal/inspect"
)

func addFormatFlag(cmd *cobra.Command, defaults []string) {
	cmd.Flags().StringSlice("format", defaults, "Output format: json, yaml, or any of comma, newline and space")
	cobra.CheckErr(cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		return withPrefix(inspect.Formats, toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

func addStridesFlag(cmd *cobra.Command) {
	filter := inspect.AllStrides()
	cmd.Flags().Var(&filter, "strides", "Strides from the base to include, e.g. 0_2-3, 1- or -2")
}

// selectCases returns the cases of e accepted by the --strides flag.
func selectCases(fs *pflag.FlagSet, e *catalog.Entry) ([]string, error) {
	flag := fs.Lookup("strides")
	if flag == nil {
		return nil, fmt.Errorf("flag accessed but not defined: strides")
	}
	filter, ok := flag.Value.(*inspect.StrideFilter)
	if !ok {
		return nil, fmt.Errorf("trying to get strides value of flag of type %s", flag.Value.Type())
	}
	return filter.Apply(e.Cases()), nil
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in enumerations with their case counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.catalog.Names() {
				e, err := a.entry(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d): %s\n", e.Name, e.Count(), e.Description)
			}
			return nil
		},
	}
}

func newCasesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "cases ENUMERATION",
		Short:             "List the cases of an enumeration, starting at its base",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeEnumeration,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.entry(args[0])
			if err != nil {
				return err
			}
			values, err := selectCases(cmd.Flags(), e)
			if err != nil {
				return err
			}
			formats, err := cmd.Flags().GetStringSlice("format")
			if err != nil {
				return err
			}
			out, err := inspect.Render(formats, values)
			if err != nil {
				return err
			}
			a.log.Debug("cases.rendered", "enumeration", e.Name, "selected", len(values), "formats", formats)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	addFormatFlag(cmd, a.cfg.Format)
	addStridesFlag(cmd)
	return cmd
}

func newCountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "count ENUMERATION",
		Short:             "Print the number of cases of an enumeration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeEnumeration,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.entry(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Count())
			return nil
		},
	}
}

func newSpanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "span ENUMERATION",
		Short:             "Print the first and last case of an enumeration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeEnumeration,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.entry(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Span())
			return nil
		},
	}
}
