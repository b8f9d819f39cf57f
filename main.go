package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mfeld/meridian/catalog"
	"github.com/mfeld/meridian/clock"
	"github.com/mfeld/meridian/config"
	"github.com/mfeld/meridian/logging"
	"github.com/mfeld/meridian/meeting"
	"github.com/mfeld/meridian/selection"
)

var (
	flagDebug bool
	flagTable bool
	flagTime  string
	flagDate  string
)

var rootCmd = &cobra.Command{
	Use:   "meridian",
	Short: "Terminal world clock and meeting planner",
	Long: `Meridian shows live or scrubbed wall-clock time across a curated list
of world locations, with a month calendar and a business-hours overlap
indicator for meeting planning.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "write debug logs to the state directory")
	rootCmd.Flags().BoolVar(&flagTable, "table", false, "print the zone table once and exit")
	rootCmd.Flags().StringVar(&flagTime, "time", "", "evaluate at this wall time (HH:MM, implies --table)")
	rootCmd.Flags().StringVar(&flagDate, "date", "", "evaluate on this date (YYYY-MM-DD, implies --table)")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(flagDebug)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	viewer, err := cfg.ViewerLocation()
	if err != nil {
		return err
	}

	list, err := buildSelection(cfg)
	if err != nil {
		return err
	}

	window := meeting.Window{StartHour: cfg.Meeting.StartHour, EndHour: cfg.Meeting.EndHour}

	vc := clock.NewVirtual(func() time.Time { return time.Now().In(viewer) })
	if flagTime != "" || flagDate != "" {
		flagTable = true
	}
	if flagDate != "" {
		d, err := time.ParseInLocation("2006-01-02", flagDate, viewer)
		if err != nil {
			return fmt.Errorf("invalid --date '%s': %w", flagDate, err)
		}
		vc.SetDate(d.Year(), d.Month(), d.Day())
	}
	if flagTime != "" {
		t, err := time.Parse("15:04", flagTime)
		if err != nil {
			return fmt.Errorf("invalid --time '%s': %w", flagTime, err)
		}
		vc.SetTimeOfDay(t.Hour(), t.Minute())
	}

	if flagTable {
		printZoneTable(os.Stdout, vc.Current(), viewer, list.Entries(), window)
		return nil
	}

	logger.Info("starting ui",
		zap.Int("zones", list.Len()),
		zap.String("viewer", viewer.String()),
	)

	m := newModel(cfg, logger, vc, list, window, viewer)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// buildSelection resolves the configured zones against the catalog,
// synthesizing records for zones the catalog does not seed.
func buildSelection(cfg *config.Config) (*selection.List, error) {
	list := selection.New()
	for _, z := range cfg.Zones {
		rec, ok := catalog.ByIdentity(z.ID + "|" + strings.ToLower(z.City))
		if !ok && z.City == "" {
			rec, ok = catalog.ByID(z.ID)
		}
		if !ok {
			var err error
			rec, err = catalog.Make(z.ID, z.City)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve zone '%s': %w", z.ID, err)
			}
		}
		list.Add(rec)
	}
	if list.Len() == 0 {
		return nil, fmt.Errorf("no zones configured")
	}
	return list, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
