package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ngmaloney/tide-terminal/internal/models"
	"github.com/ngmaloney/tide-terminal/internal/report"
	"github.com/ngmaloney/tide-terminal/internal/trips"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func dayCmd(a *app) *cobra.Command {
	var date string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the tide estimate for one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			day := a.engine.Day(d)
			a.logger.Debug("day computed",
				zap.Stringer("date", d),
				zap.Stringer("category", day.Category),
				zap.Int("extremes", len(day.Extremes)))

			if jsonOut {
				return report.DayJSON(cmd.OutOrStdout(), day)
			}
			return report.Day(cmd.OutOrStdout(), day)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	return cmd
}

func calendarCmd(a *app) *cobra.Command {
	var from string
	var days int
	var only string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show tide categories and fishing ratings for consecutive days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateFlag(from)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") {
				days = a.cfg.CalendarDays
			}
			if days < 1 {
				return fmt.Errorf("--days must be at least 1, got %d", days)
			}

			result, err := a.engine.Range(cmd.Context(), start, days)
			if err != nil {
				return err
			}
			if only != "" {
				category, err := models.ParseCategory(only)
				if err != nil {
					return err
				}
				result = filterCategory(result, category)
			}

			if jsonOut {
				return report.CalendarJSON(cmd.OutOrStdout(), result)
			}
			return report.Calendar(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 7, "number of days")
	cmd.Flags().StringVar(&only, "only", "", "show only days of this category (e.g. spring, 大潮)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	return cmd
}

func filterCategory(days []models.TideDay, c models.RangeCategory) []models.TideDay {
	kept := make([]models.TideDay, 0, len(days))
	for _, d := range days {
		if d.Category == c {
			kept = append(kept, d)
		}
	}
	return kept
}

func tripsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Manage saved fishing trips",
	}
	cmd.AddCommand(tripsAddCmd(a))
	cmd.AddCommand(tripsListCmd(a))
	cmd.AddCommand(tripsShowCmd(a))
	cmd.AddCommand(tripsRmCmd(a))
	return cmd
}

func tripsAddCmd(a *app) *cobra.Command {
	var date string
	var notes string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Save a trip for a date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateFlag(date)
			if err != nil {
				return err
			}

			svc, closeDB, err := a.openTrips()
			if err != nil {
				return err
			}
			defer closeDB()

			trip, err := svc.Add(strings.Join(args, " "), d, notes)
			if err != nil {
				return err
			}

			day := a.engine.Day(trip.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved trip %q for %s\n", trip.Name, trip.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s  %s %s\n",
				day.Category, day.Category.Kanji(), day.Advice.Stars(), day.Advice.Label)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "trip date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func tripsListCmd(a *app) *cobra.Command {
	var upcoming bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved trips with their tide outlook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDB, err := a.openTrips()
			if err != nil {
				return err
			}
			defer closeDB()

			var planned []models.PlannedTrip
			if upcoming {
				planned, err = svc.Upcoming(models.Today())
			} else {
				planned, err = svc.Plan()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(planned) == 0 {
				if upcoming {
					fmt.Fprintln(out, "No upcoming trips.")
				} else {
					fmt.Fprintln(out, "No saved trips.")
				}
				return nil
			}
			for _, p := range planned {
				fmt.Fprintf(out, "%s  %-24s %s %s  %s\n",
					p.Trip.Date, p.Trip.Name, p.Day.Category.Kanji(), p.Day.Category, p.Day.Advice.Stars())
				if p.Trip.Notes != "" {
					fmt.Fprintf(out, "            %s\n", p.Trip.Notes)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "only trips from today on")
	return cmd
}

func tripsShowCmd(a *app) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show a saved trip with its full tide report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			svc, closeDB, err := a.openTrips()
			if err != nil {
				return err
			}
			defer closeDB()

			trip, err := svc.Get(name)
			if err != nil {
				if errors.Is(err, trips.ErrNotFound) {
					return fmt.Errorf("no trip named %q", name)
				}
				return err
			}

			day := a.engine.Day(trip.Date)
			if jsonOut {
				return report.DayJSON(cmd.OutOrStdout(), day)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Trip: %s\n", trip.Name)
			if trip.Notes != "" {
				fmt.Fprintf(out, "Notes: %s\n", trip.Notes)
			}
			fmt.Fprintln(out)
			return report.Day(out, day)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the tide day as JSON")
	return cmd
}

func tripsRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm [name]",
		Aliases: []string{"delete"},
		Short:   "Delete a saved trip",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			svc, closeDB, err := a.openTrips()
			if err != nil {
				return err
			}
			defer closeDB()

			if err := svc.Delete(name); err != nil {
				if errors.Is(err, trips.ErrNotFound) {
					return fmt.Errorf("no trip named %q", name)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted trip %q\n", name)
			return nil
		},
	}
}
