// Package main provides the flightagent CLI entry point.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/richinex/flightagent/agent"
	"github.com/richinex/flightagent/cli"
	"github.com/richinex/flightagent/config"
	"github.com/richinex/flightagent/flights"
	"github.com/richinex/flightagent/llm"
)

var (
	// Global flags
	verbose  bool
	envFiles []string
)

// app is populated once per invocation by the root's pre-run hook.
type app struct {
	settings config.Settings
	bundle   agent.Config
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "flightagent",
		Short: "Configuration bundle for the GoogleFlights one-way search agent",
		Long: `Builds and inspects the configuration a hosting runtime uses to run the
GoogleFlights agent: agent name, model, tool providers, tool limit, the
ReAct system prompt and the human-confirmation list.

Settings come from the environment (and .env files):
- OPENAI_MODEL    model identifier (default gpt-4o-mini)
- ARCADE_USER_ID  scopes tool-provider sessions (optional)
- OPENAI_API_KEY  only needed by doctor`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringArrayVar(&envFiles, "env-file", nil, "Env file to load before reading the environment (repeatable, default .env)")

	// Add commands
	rootCmd.AddCommand(showCmd(a))
	rootCmd.AddCommand(promptCmd(a))
	rootCmd.AddCommand(schemaCmd())
	rootCmd.AddCommand(exportCmd(a))
	rootCmd.AddCommand(doctorCmd(a))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup installs the logger, loads env files and builds the bundle once.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := clog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := clog.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	if err := config.LoadDotEnv(ctx, envFiles...); err != nil {
		return err
	}

	settings, err := config.Load(ctx)
	if err != nil {
		return err
	}

	a.settings = settings
	a.bundle = agent.NewFlightAgent(settings)
	logger.Debugf("built %s bundle for model %s", a.bundle.Name(), a.bundle.Model())
	return nil
}

func showCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the agent configuration bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Show(cmd.OutOrStdout(), a.bundle, format, llm.CountTokens)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", cli.FormatTable, "Output format: table, json or yaml")

	return cmd
}

func promptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Print the system prompt verbatim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Prompt(cmd.OutOrStdout(), a.bundle)
		},
	}
}

func schemaCmd() *cobra.Command {
	var from, to, date string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the flight search tool's input schema",
		Long: `Print the JSON schema of the GoogleFlights_SearchOneWayFlights Action Input.

With --from, --to and --date it also prints an example Action Input with
every optional parameter at its default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var example *flights.SearchParams
			if from != "" || to != "" || date != "" {
				p := flights.DefaultParams(from, to, date)
				example = &p
			}
			return cli.Schema(cmd.OutOrStdout(), example)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Departure airport code for the example")
	cmd.Flags().StringVar(&to, "to", "", "Arrival airport code for the example")
	cmd.Flags().StringVar(&date, "date", "", "Outbound date (YYYY-MM-DD) for the example")

	return cmd
}

func exportCmd(a *app) *cobra.Command {
	var out string
	var mcpConfigPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the bundle as JSON for a hosting runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := clog.FromContext(cmd.Context())

			if mcpConfigPath != "" {
				if err := cli.ExportProviders(mcpConfigPath, a.bundle); err != nil {
					return err
				}
				log.Infof("wrote provider config to %s", mcpConfigPath)
			}

			if out == "" || out == "-" {
				return cli.Export(cmd.OutOrStdout(), a.bundle)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := cli.Export(f, a.bundle); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}
			log.Infof("wrote bundle to %s", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&mcpConfigPath, "mcp-config", "", "Also write the provider config file to this path")

	return cmd
}

func doctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the API key and that the configured model is served",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Doctor(cmd.Context(), cmd.OutOrStdout(), a.settings, func(apiKey, model string) cli.ModelChecker {
				return llm.NewOpenAIProvider(apiKey, model)
			})
		},
	}
}
