package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/tide-terminal/internal/config"
	"github.com/ngmaloney/tide-terminal/internal/database"
	"github.com/ngmaloney/tide-terminal/internal/logging"
	"github.com/ngmaloney/tide-terminal/internal/models"
	"github.com/ngmaloney/tide-terminal/internal/tide"
	"github.com/ngmaloney/tide-terminal/internal/trips"
	"github.com/ngmaloney/tide-terminal/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every command needs once flags are parsed
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	engine *tide.Engine
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var startDate string

	rootCmd := &cobra.Command{
		Use:   "tide-terminal",
		Short: "Synthetic tide estimates and fishing advice from the lunar phase",
		Long: `tide-terminal estimates the day's tide curve, highs and lows, tide-range
category and fishing outlook from the moon's age alone. Run without a
subcommand to browse dates in the terminal UI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The TUI owns the screen, so its logs go to a file.
			return a.init(cmd == cmd.Root())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateFlag(startDate)
			if err != nil {
				return err
			}
			return a.runTUI(start)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&startDate, "date", "", "start date (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(dayCmd(a))
	rootCmd.AddCommand(calendarCmd(a))
	rootCmd.AddCommand(tripsCmd(a))

	return rootCmd
}

// init loads configuration and builds the logger and engine
func (a *app) init(logToFile bool) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, a.verbose, logToFile)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.engine = tide.NewEngine(tide.NewDetector(cfg.DetectorParams()), tide.WithMemo())

	logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.String("database", cfg.DatabasePath),
		zap.String("method", cfg.Detector.Method))
	return nil
}

// openTrips opens the trip database. The returned close func is never nil.
func (a *app) openTrips() (*trips.Service, func(), error) {
	db, err := database.Open(a.cfg.DatabasePath)
	if err != nil {
		return nil, func() {}, err
	}
	svc := trips.NewService(trips.NewRepository(db), a.engine, a.logger)
	return svc, func() { db.Close() }, nil
}

func (a *app) runTUI(start models.Date) error {
	svc, closeDB, err := a.openTrips()
	if err != nil {
		// Tides still work without trip storage.
		a.logger.Warn("trip storage unavailable", zap.Error(err))
		svc = nil
	}
	defer closeDB()

	model := ui.NewModel(a.engine, svc, a.logger, start, a.cfg.CalendarDays)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}

// parseDateFlag parses a YYYY-MM-DD flag value; empty or "today" means today
func parseDateFlag(s string) (models.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "today") {
		return models.Today(), nil
	}
	return models.ParseDate(s)
}
