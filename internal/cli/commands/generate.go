package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	adaptergen "github.com/goliatone/go-adaptergen"
	"github.com/goliatone/go-adaptergen/internal/cli/config"
	"github.com/goliatone/go-adaptergen/internal/cli/prompt"
	"github.com/goliatone/go-adaptergen/internal/cli/writer"
	"github.com/goliatone/go-adaptergen/pkg/answers"
	"github.com/goliatone/go-adaptergen/pkg/scaffold"
	"github.com/goliatone/go-adaptergen/pkg/templates"
)

// newPromptDriver builds the driver used by --interactive. Tests replace it
// with a scripted driver.
var newPromptDriver = prompt.NewSurveyDriver

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate adapter files from an answers document",
		Long: `Generate the files selected by an answers document.

Questions missing from the document fall back to their defaults, or are
asked in the terminal with --interactive.

Examples:
  adaptergen generate --answers answers.yaml --output ./my-adapter
  adaptergen generate --interactive --dry-run`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	addTemplateFlags(cmd)
	cmd.Flags().StringP("answers", "a", "", "answers document (YAML or JSON)")
	cmd.Flags().StringP("output", "o", ".", "output directory")
	cmd.Flags().Bool("dry-run", false, "print generated files instead of writing them")
	cmd.Flags().BoolP("force", "f", false, "overwrite existing files")
	cmd.Flags().BoolP("interactive", "i", false, "prompt for unanswered questions")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")
	cmd.Flags().StringSlice("only", nil, "render only the named templates (see 'adaptergen templates')")

	return cmd
}

func addTemplateFlags(cmd *cobra.Command) {
	cmd.Flags().String("templates-dir", "", "directory overriding the built-in template files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags(), config.WithConfigFile(configFile(cmd)))
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	a, err := collectAnswers(cmd, cfg)
	if err != nil {
		return err
	}

	dispatcher, err := adaptergen.NewDispatcher(
		adaptergen.WithTemplateOptions(templateOptions(cfg)...),
		adaptergen.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	only, err := cmd.Flags().GetStringSlice("only")
	if err != nil {
		return err
	}
	files, err := generateFiles(dispatcher, a, only)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(files) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No files to generate for these answers")
		return nil
	}

	if cfg.DryRun {
		printFiles(out, files)
		return nil
	}

	written, err := writer.New(cfg.Output,
		writer.WithForce(cfg.Force),
		writer.WithLogger(logger),
	).WriteAll(files)
	if err != nil {
		return err
	}

	successColor := color.New(color.FgGreen)
	for _, path := range written {
		successColor.Fprint(out, "created ")
		fmt.Fprintln(out, path)
	}
	return nil
}

// generateFiles runs the whole registry, or just the named templates in the
// order given.
func generateFiles(dispatcher *scaffold.Dispatcher, a answers.Answers, only []string) ([]scaffold.File, error) {
	if len(only) == 0 {
		return dispatcher.Generate(a)
	}

	files := make([]scaffold.File, 0, len(only))
	for _, name := range only {
		file, ok, err := dispatcher.GenerateOne(name, a)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, file)
		}
	}
	return files, nil
}

func collectAnswers(cmd *cobra.Command, cfg *config.Config) (answers.Answers, error) {
	a := answers.Answers{}
	if cfg.Answers != "" {
		loaded, err := answers.LoadFile(cfg.Answers)
		if err != nil {
			return a, err
		}
		a = loaded
	}

	if cfg.Interactive {
		filled, err := prompt.Fill(cmd.Context(), newPromptDriver(cmd.OutOrStdout()), a)
		if err != nil {
			return a, err
		}
		a = filled
	}
	return a, nil
}

func templateOptions(cfg *config.Config) []templates.Option {
	if cfg.TemplatesDir == "" {
		return nil
	}
	return []templates.Option{templates.WithTemplatesDir(cfg.TemplatesDir)}
}

func printFiles(out io.Writer, files []scaffold.File) {
	headerColor := color.New(color.FgCyan, color.Bold)
	for _, file := range files {
		headerColor.Fprintf(out, "==> %s <==\n", file.Path)
		fmt.Fprintln(out, file.Content)
		fmt.Fprintln(out)
	}
}
