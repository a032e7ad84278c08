package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-landing/internal/server"
	"github.com/goliatone/go-landing/internal/watch"
	"github.com/goliatone/go-landing/pkg/content"
	"github.com/goliatone/go-landing/pkg/marquee"
	"github.com/goliatone/go-landing/pkg/orchestrator"
	"github.com/goliatone/go-landing/pkg/renderers/terminal"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page once to stdout or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inline, _ := cmd.Flags().GetBool("inline-styles")
			output, _ := cmd.Flags().GetString("output")

			gen, err := a.orchestrator(inline)
			if err != nil {
				return err
			}
			out, err := gen.Generate(cmd.Context(), orchestrator.Request{
				Source:   stringFlag(cmd, "content", a.cfg.Content),
				Renderer: stringFlag(cmd, "renderer", a.cfg.Renderer),
				Variant:  stringFlag(cmd, "variant", a.cfg.Variant),
			})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			a.logger.Info("page written", zap.String("path", output), zap.Int("bytes", len(out)))
			return nil
		},
	}
	cmd.Flags().String("content", "", "YAML content file (embedded defaults if empty)")
	cmd.Flags().String("renderer", "vanilla", "renderer to use (vanilla, nodes, terminal)")
	cmd.Flags().String("output", "", "output file (stdout if empty)")
	cmd.Flags().String("variant", "", "palette variant")
	cmd.Flags().Bool("inline-styles", false, "embed the stylesheet instead of linking it")
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stringFlag(cmd, "content", a.cfg.Content)
			watchContent, _ := cmd.Flags().GetBool("watch")
			if watchContent && path == "" {
				return errors.New("serve: --watch requires a content file")
			}

			site, err := content.LoadFile(path)
			if err != nil {
				return err
			}
			gen, err := a.orchestrator(false)
			if err != nil {
				return err
			}
			srv := server.New(site,
				server.WithOrchestrator(gen),
				server.WithRenderer(stringFlag(cmd, "renderer", a.cfg.Renderer)),
				server.WithVariant(a.cfg.Variant),
				server.WithAllowedOrigins(a.cfg.AllowedOrigins...),
				server.WithLogger(a.logger),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watchContent {
				watcher, err := watch.New(path, func(p string) { _ = srv.Reload(p) }, watch.WithLogger(a.logger))
				if err != nil {
					return err
				}
				if err := watcher.Start(ctx); err != nil {
					return err
				}
				defer watcher.Stop()
			}

			return srv.Run(ctx, stringFlag(cmd, "addr", a.cfg.Addr))
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("content", "", "YAML content file (embedded defaults if empty)")
	cmd.Flags().String("renderer", "vanilla", "default renderer for GET /")
	cmd.Flags().Bool("watch", false, "reload the content file when it changes")
	return cmd
}

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a terminal preview of the page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.orchestrator(false)
			if err != nil {
				return err
			}
			out, err := gen.Generate(cmd.Context(), orchestrator.Request{
				Source:   stringFlag(cmd, "content", a.cfg.Content),
				Renderer: terminal.RendererName,
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().String("content", "", "YAML content file (embedded defaults if empty)")
	return cmd
}

func newMarqueeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marquee TEXT",
		Short: "Print the padded marquee stream for TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			if err := marquee.Validate(text); err != nil {
				return err
			}
			minChars, _ := cmd.Flags().GetInt("min")
			double, _ := cmd.Flags().GetBool("double")

			stream := marquee.Pad(text, minChars)
			a.logger.Debug("marquee padded",
				zap.Int("repetitions", marquee.Repetitions(text, minChars)),
				zap.Int("length", len(stream)),
			)
			if double {
				stream += stream
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), stream)
			return err
		},
	}
	cmd.Flags().Int("min", marquee.DefaultMinChars, "minimum stream length in bytes")
	cmd.Flags().Bool("double", false, "print both chunks of the scrolling track")
	return cmd
}
