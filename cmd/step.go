package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chamander/harry/enumeration"
)

func newAdvanceCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "advance ENUMERATION CASE",
		Short:             "Print the case a number of strides away from another",
		Example:           "  harry advance roll-call Brian --by 2\n  harry advance roll-call Daniel --by=-1",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: a.completeEnumeration,
		RunE: func(cmd *cobra.Command, args []string) error {
			by, err := cmd.Flags().GetInt64("by")
			if err != nil {
				return err
			}
			e, err := a.entry(args[0])
			if err != nil {
				return err
			}
			next, ok, err := e.Advance(args[1], by)
			if err != nil {
				return err
			}
			if !ok {
				a.log.Debug("advance.absent", "enumeration", e.Name, "from", args[1], "by", by)
				return fmt.Errorf("advance %s by %d: %w", args[1], by, enumeration.ErrOutOfBounds)
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
	cmd.Flags().Int64("by", 1, "Number of strides to advance; negative values step back")
	return cmd
}

func newDistanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "distance ENUMERATION FROM TO",
		Short:             "Print the number of strides from one case to another",
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: a.completeEnumeration,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.entry(args[0])
			if err != nil {
				return err
			}
			d, err := e.Distance(args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}
