package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dacrab/profilegen/pkg/config"
	"github.com/dacrab/profilegen/pkg/errors"
	"github.com/dacrab/profilegen/pkg/github"
	"github.com/dacrab/profilegen/pkg/pipeline"
)

const defaultTimeout = 60 * time.Second

// generateCommand creates the generate command, the main entry point of the
// tool: fetch the account's public data and write the rendered README.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		templatePath string
		outputPath   string
		configPath   string
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a profile README from live GitHub data",
		Long: `Generate fetches the configured account's public activity and renders it
into the template file, replacing {{PROFILE}}, {{PROJECTS}} and the other
placeholder tokens with live markdown fragments.

Credentials come from the environment (GITHUB_USERNAME / GITHUB_TOKEN, or
their GH_ prefixed aliases), optionally seeded from a .env file. Identity
fallbacks and section overrides come from the optional TOML profile file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Best-effort: a missing .env file is the common case.
			_ = godotenv.Load()

			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(configPath)
			if err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			runner := pipeline.NewRunner(github.New(cfg.Token), cfg, logger)
			runner.TemplatePath = templatePath
			runner.OutputPath = outputPath

			printInfo("Generating README for %s", StyleHighlight.Render(cfg.Username))
			printDetail("template %s · output %s", templatePath, outputPath)

			prog := newProgress(logger)
			spin := newSpinnerWithContext(ctx, "Fetching account data...")
			spin.Start()

			result, err := runner.Execute(ctx)
			if err != nil {
				if spin.Cancelled() {
					spin.Stop()
					return ctx.Err()
				}
				spin.StopWithError(errors.UserMessage(err))
				return err
			}
			spin.StopWithSuccess("Wrote profile README")
			prog.done("Fetched and rendered all sections")

			printFile(result.OutputPath)
			printStats(
				fmt.Sprintf("%d repos", result.Repos),
				fmt.Sprintf("%d events", result.Events),
				fmt.Sprintf("%d languages", result.Languages),
				result.Duration.Round(time.Millisecond).String(),
			)
			printNextStep("Commit the result", "git add "+result.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "README.tmpl.md", "template file with placeholder tokens")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "README.md", "output file (overwritten)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "profilegen.toml", "optional TOML profile file")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "overall deadline for the run")

	return cmd
}
