package main

import (
	"fmt"
	"os"
	"time"

	"gallerygen/internal/buildlog"
	"gallerygen/internal/config"
	"gallerygen/internal/logging"
	"gallerygen/internal/media"
	"gallerygen/internal/metrics"
	"gallerygen/internal/pipeline"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath  string
		projectsDir string
		outputDir   string
		workerCount int
		logLevel    string
		metricsFile string
		buildLog    string
		noScaffold  bool
	)

	cmd := &cobra.Command{
		Use:   "gallerygen",
		Short: "Incremental gallery builder for project media",
		Long: `gallerygen scans a directory of project folders, rebuilds the stale
thumbnail and large image derivatives, normalizes video references, and
writes an aggregated gallery index as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags override the config file only when explicitly set.
			flags := cmd.Flags()
			if flags.Changed("projects-dir") {
				cfg.Paths.ProjectsDir = projectsDir
			}
			if flags.Changed("output-dir") {
				cfg.Paths.OutputDir = outputDir
			}
			if flags.Changed("workers") {
				cfg.Build.Workers = workerCount
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("metrics-file") {
				cfg.Paths.MetricsFile = metricsFile
			}
			if flags.Changed("build-log") {
				cfg.Paths.BuildLog = buildLog
			}
			if noScaffold {
				cfg.Build.Scaffold = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML configuration file")
	cmd.Flags().StringVar(&projectsDir, "projects-dir", "projects", "directory holding one subdirectory per project")
	cmd.Flags().StringVar(&outputDir, "output-dir", "generated", "directory receiving derivatives and gallery.json")
	cmd.Flags().IntVar(&workerCount, "workers", 0, "transform worker count (0 = automatic)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus textfile metrics here after the build")
	cmd.Flags().StringVar(&buildLog, "build-log", "", "SQLite build-history database (empty disables)")
	cmd.Flags().BoolVar(&noScaffold, "no-scaffold", false, "do not create missing project detail pages")

	return cmd
}

func run(cfg config.Config) error {
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	media.InitVips()
	defer media.ShutdownVips()

	var blog *buildlog.Log
	if cfg.Paths.BuildLog != "" {
		var err error
		blog, err = buildlog.Open(cfg.Paths.BuildLog)
		if err != nil {
			// History is bookkeeping; a broken database never blocks a build.
			logging.Warn("build log disabled: %v", err)
		} else {
			defer func() {
				if err := blog.Close(); err != nil {
					logging.Warn("failed to close build log: %v", err)
				}
			}()
		}
	}

	summary, err := pipeline.New(cfg, blog).Build()
	if err != nil {
		return err
	}

	if cfg.Paths.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.Paths.MetricsFile); err != nil {
			logging.Warn("failed to write metrics file: %v", err)
		}
	}

	printSummary(summary)

	if _, _, _, failures := summary.Totals(); failures > 0 {
		logging.Warn("%d source file(s) failed to process; see log above", failures)
	}
	return nil
}

func printSummary(summary *pipeline.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Project", "Images", "Rebuilt", "Videos", "Failures"})

	for _, p := range summary.Projects {
		t.AppendRow(table.Row{p.Slug, p.Images, p.Rebuilt, p.Videos, p.Failures})
	}

	images, rebuilt, videos, failures := summary.Totals()
	t.AppendFooter(table.Row{"Total", images, rebuilt, videos, failures})
	t.Render()

	fmt.Printf("Pages created: %d, duration: %s\n", summary.PagesCreated, summary.Duration.Round(time.Millisecond))
}
