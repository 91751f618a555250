package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-adaptergen/internal/cli/config"
	"github.com/goliatone/go-adaptergen/pkg/scaffold"
	"github.com/goliatone/go-adaptergen/pkg/templates"
)

// NewTemplatesCommand creates the templates command.
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in templates",
		Long:  `Display every built-in template in dispatch order with the path it writes to.`,
		Args:  cobra.NoArgs,
		RunE:  runTemplates,
	}
	addTemplateFlags(cmd)
	return cmd
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags(), config.WithConfigFile(configFile(cmd)))
	if err != nil {
		return err
	}

	registry, err := templates.Registry(templateOptions(cfg)...)
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	out := cmd.OutOrStdout()
	color.New(color.FgGreen, color.Bold).Fprintln(out, "Built-in templates:")

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATH")
	for _, t := range registry.Templates() {
		fmt.Fprintf(w, "%s\t%s\n", t.Name, scaffold.ResolvePath(t))
	}
	return w.Flush()
}
