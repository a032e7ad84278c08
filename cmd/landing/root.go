package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-landing/internal/config"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/orchestrator"
	"github.com/goliatone/go-landing/pkg/render"
	"github.com/goliatone/go-landing/pkg/renderers/nodes"
	"github.com/goliatone/go-landing/pkg/renderers/terminal"
	"github.com/goliatone/go-landing/pkg/renderers/vanilla"
)

// app carries state shared by every command.
type app struct {
	verbose bool
	envFile string
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "landing",
		Short: "Render the AINewsBox landing page",
		Long: `landing renders a marketing landing page from YAML content.

Content files overlay the embedded defaults, so a file only needs the
sections it changes. Settings are read from LANDING_* environment variables
and an optional .env file; flags take precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				logger, err := logging.New(a.verbose)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}

			var files []string
			if a.envFile != "" {
				files = append(files, a.envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file to read (default .env when present)")

	root.AddCommand(
		newRenderCmd(a),
		newServeCmd(a),
		newPreviewCmd(a),
		newMarqueeCmd(a),
		newLintCmd(a),
	)
	return root
}

// orchestrator builds the pipeline with every built-in renderer. inline
// switches the template renderer to embed the stylesheet.
func (a *app) orchestrator(inline bool) (*orchestrator.Orchestrator, error) {
	var vanillaOptions []vanilla.Option
	if inline {
		vanillaOptions = append(vanillaOptions, vanilla.WithInlineStyles())
	}
	vanillaRenderer, err := vanilla.New(vanillaOptions...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry(vanillaRenderer, nodes.New(), terminal.New())
	return orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithLogger(a.logger),
	), nil
}

// stringFlag prefers an explicitly set flag over the configured value.
func stringFlag(cmd *cobra.Command, name, configured string) string {
	value, _ := cmd.Flags().GetString(name)
	if cmd.Flags().Changed(name) || configured == "" {
		return value
	}
	return configured
}
