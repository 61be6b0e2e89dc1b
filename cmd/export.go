package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chamander/harry/internal/inspect"
)

func newExportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export ENUMERATION",
		Short: "Print a shell statement that assigns the cases of an enumeration to a variable",
		Example: `  eval "$(harry export roll-call --persist)"
  echo "$ROLL_CALL"`,
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
			value, err := inspect.Render(formats, values)
			if err != nil {
				return err
			}

			shellName, err := cmd.Flags().GetString("shell")
			if err != nil {
				return err
			}
			shell, err := inspect.ShellTypeString(shellName)
			if err != nil {
				return fmt.Errorf("invalid --shell: %w", err)
			}
			if shell, err = inspect.ResolveShell(shell); err != nil {
				return err
			}

			varName, err := cmd.Flags().GetString("var")
			if err != nil {
				return err
			}
			persist, err := cmd.Flags().GetBool("persist")
			if err != nil {
				return err
			}
			line, err := inspect.Export(shell, inspect.EnvName(e.Name, varName), value, persist)
			if err != nil {
				return err
			}
			a.log.Debug("export.rendered", "enumeration", e.Name, "shell", shell.String(), "persist", persist)
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	addFormatFlag(cmd, []string{"space"})
	addStridesFlag(cmd)
	cmd.Flags().String("var", "", "Variable name, derived from the enumeration name when empty")
	cmd.Flags().String("shell", a.cfg.Shell, fmt.Sprintf("Shell dialect, one of %v", inspect.ShellNames()))
	cmd.Flags().Bool("persist", false, "Use the form that outlives the current session (export, setx, user environment)")
	cobra.CheckErr(cmd.RegisterFlagCompletionFunc("shell", func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		return withPrefix(inspect.ShellNames(), toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	return cmd
}
