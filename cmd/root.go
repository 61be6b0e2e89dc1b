package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chamander/harry/internal/catalog"
)

const ShortDesc = "Inspect contiguous enumerations: list their cases, step between them and export them to shells"

const LongDesc = `Harry works with contiguous enumerations: finite, ordered, gapless sets of values
derived from a base value and a step function. It lists the cases of the built-in
enumerations, counts them, advances a case by a number of strides, measures the
distance between two cases and emits shell statements that export the cases
so scripts can eval or source them.`

type app struct {
	cfg     Config
	catalog *catalog.Catalog
	log     *slog.Logger
}

// NewRootCommand builds a fresh command tree over the given catalog.
func NewRootCommand(cfg Config, cat *catalog.Catalog) *cobra.Command {
	a := &app{cfg: cfg, catalog: cat, log: newLogger(nil, false)}
	root := &cobra.Command{
		Use:           "harry",
		Short:         ShortDesc,
		Long:          LongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, err := cmd.Root().PersistentFlags().GetBool("debug")
			if err != nil {
				return err
			}
			a.log = newLogger(cmd.ErrOrStderr(), debug)
			a.log.Debug("command.start", "command", cmd.CommandPath(), "args", args)
			return nil
		},
	}
	root.PersistentFlags().Bool("debug", cfg.Debug, "Log debug output to stderr")
	root.AddCommand(
		newListCommand(a),
		newCasesCommand(a),
		newCountCommand(a),
		newSpanCommand(a),
		newAdvanceCommand(a),
		newDistanceCommand(a),
		newExportCommand(a),
	)
	return root
}

// Execute runs harry with os.Args and returns the process exit code.
func Execute() int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "harry: %v\n", err)
		return 1
	}
	if err := NewRootCommand(cfg, catalog.Default()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "harry: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) entry(name string) (*catalog.Entry, error) {
	e, err := a.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	a.log.Debug("enumeration.resolved", "name", e.Name, "count", e.Count())
	return e, nil
}

// completeEnumeration completes the enumeration name, then its case names.
func (a *app) completeEnumeration(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return withPrefix(a.catalog.Names(), toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	e, err := a.catalog.Lookup(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return withPrefix(e.Cases(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func withPrefix(choices []string, prefix string) []cobra.Completion {
	var completions []cobra.Completion
	for _, c := range choices {
		if strings.HasPrefix(c, prefix) {
			completions = append(completions, c)
		}
	}
	return completions
}
