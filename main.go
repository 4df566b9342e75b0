package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andareed/siftly-bikeshare/config"
	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/report"
	"github.com/andareed/siftly-bikeshare/session"
	"github.com/andareed/siftly-bikeshare/trips"
)

// Version is set at build time via ldflags
var Version = "dev"

// app holds what every command needs once flags and config are resolved.
type app struct {
	cfgFile string
	dataDir string
	logFile string
	noColor bool
	cfg     *config.Config
	printer *report.Printer
	cleanup func()
}

func main() {
	a := &app{}
	err := a.rootCmd().Execute()
	a.close()
	if err != nil {
		a.fail(os.Stderr, err)
		os.Exit(1)
	}
}

// fail reports a fatal error through the printer, or to stderr when the
// command failed before init built one.
func (a *app) fail(stderr io.Writer, err error) {
	if a.printer != nil {
		a.printer.Error("%v", err)
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bikeshare trip data",
		Long: `bikeshare loads trip records for chicago, new york city or washington,
filters them by month and day of week, and reports the most popular travel
times, stations, trip durations and user demographics.

Run without arguments for the interactive session:
  bikeshare

Or ask directly:
  bikeshare stats --city chicago --month june
  bikeshare browse --city washington --day monday`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd.Context(), cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is .bikeshare.yaml)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory holding the city CSV files")
	root.PersistentFlags().StringVar(&a.logFile, "debug", "", "Write Debug Logs to file")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(a.statsCmd(), a.browseCmd(), a.versionCmd())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, config.Overrides{
		DataDir:  a.dataDir,
		LogFile:  a.logFile,
		NoColors: a.noColor,
	})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	cleanup, err := logging.SetupLogging(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.cleanup = cleanup
	logging.Infof("siftly-bikeshare %s: started %s", Version, cmd.CommandPath())

	useColors := report.ResolveColors(a.noColor, cfg.Output.Colors)
	a.printer = report.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), useColors)
	return nil
}

func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

// source picks the trip source named in config.
func (a *app) source() trips.Source {
	if a.cfg.Data.Source == config.SourceSQLite {
		path := a.cfg.Data.SQLitePath
		if a.cfg.Data.Dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(a.cfg.Data.Dir, path)
		}
		return &trips.SQLiteSource{Path: path}
	}
	return &trips.CSVSource{Dir: a.cfg.Data.Dir, Files: a.cfg.Data.Cities}
}

func (a *app) loader() *trips.Loader {
	return &trips.Loader{Source: a.source()}
}

func (a *app) reporter() *report.Reporter {
	return report.NewReporter(a.printer, a.cfg.Output.Timings)
}

func (a *app) runInteractive(ctx context.Context, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s := session.New(cmd.InOrStdin(), a.loader(), a.printer, a.reporter(), a.cfg.Pager.PageSize)
	return s.Run(ctx)
}
