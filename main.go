package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/soocke/collage-go/app"
	"github.com/soocke/collage-go/config"
	"github.com/soocke/collage-go/domain/platform"
	"github.com/soocke/collage-go/headless"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	debug      bool
	variant    string
}

// load reads the config file and applies flag overrides.
func (f *flags) load() (*config.Config, *slog.Logger) {
	cfg, err := config.Load(f.configPath)
	level := slog.LevelInfo
	if f.debug || cfg.Debug {
		cfg.Debug = true
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config unreadable, using defaults", "path", f.configPath, "error", err)
	}
	if f.variant != "" {
		cfg.UseVariant(f.variant)
	}
	return cfg, logger
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "collage",
		Short:        "Combine two photos into one collage image",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := f.load()
			application := app.NewApp("Photo Collage", 680, 900, cfg, f.configPath, logger)
			application.Start()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", config.DefaultPath(), "path to the JSON config file")
	root.PersistentFlags().BoolVar(&f.debug, "debug", false, "debug logging and runtime stats")
	root.PersistentFlags().StringVar(&f.variant, "variant", "", "surface preset: phone or wide")
	root.AddCommand(newRenderCmd(f))
	return root
}

func newRenderCmd(f *flags) *cobra.Command {
	var job headless.Job
	var outDir string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render two photos and save the collage without opening a window",
		Long: "Render two photos and save the collage without opening a window.\n" +
			"Pass \"" + headless.ScreenSource + "\" as an input to use a screen capture.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := f.load()
			if outDir != "" {
				cfg.OutputDir = outDir
			}
			// A desktop run has no share sheet; always write a file.
			cfg.ForceMobile = false
			cfg.ShareCommand = nil

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			r := &headless.Runner{
				Renderer: app.NewRenderer(cfg, logger),
				Exporter: platform.NewPipeline(app.PipelineOptions(cfg), logger),
				Logger:   logger,
			}
			res, err := r.Run(ctx, job)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", res.Location, humanize.Bytes(uint64(res.Size)))
			return nil
		},
	}
	cmd.Flags().StringVar(&job.First, "first", "", "photo for the large upper zone")
	cmd.Flags().StringVar(&job.Second, "second", "", "photo for the small lower zone")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: downloads folder)")
	return cmd
}
