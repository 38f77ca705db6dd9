package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/kinetic-booking/internal/config"
	"github.com/m04kA/kinetic-booking/internal/domain"
	"github.com/m04kA/kinetic-booking/internal/service/availability"
	"github.com/m04kA/kinetic-booking/internal/service/calendar"
)

func newCalendarCmd(opts *rootOptions) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the availability grid of the booking period",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			rules, err := newAvailabilityRules(cfg.Booking)
			if err != nil {
				return err
			}

			period, err := cfg.Booking.Period(time.Now().In(rules.Location()))
			if err != nil {
				return err
			}
			if year != 0 || month != 0 {
				if year == 0 {
					year = period.Year
				}
				if month == 0 {
					month = int(period.Month)
				}
				if period, err = domain.NewBookingPeriod(year, month); err != nil {
					return err
				}
			}

			printCalendar(cmd.OutOrStdout(), period, calendar.NewService(rules).Generate(period))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year (default: configured booking period)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default: configured booking period)")
	return cmd
}

func newAvailabilityRules(cfg config.BookingConfig) (*availability.Rules, error) {
	weekday, err := cfg.Weekday()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return availability.NewRules(weekday, availability.UnlimitedCapacity{}, loc), nil
}

// printCalendar печатает сетку месяца по неделе в строке; недоступные дни помечаются
// "p" (прошедший), "x" (выходной день недели) или "b" (всё занято)
func printCalendar(w io.Writer, period domain.BookingPeriod, days []domain.CalendarDay) {
	fmt.Fprintf(w, "%s\n", period)
	fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")

	var line strings.Builder
	for i, d := range days {
		switch {
		case d.Empty:
			line.WriteString("    ")
		case d.IsPast:
			fmt.Fprintf(&line, "%3dp", d.Day)
		case d.IsClosedWeekday:
			fmt.Fprintf(&line, "%3dx", d.Day)
		case d.IsFullyBooked:
			fmt.Fprintf(&line, "%3db", d.Day)
		default:
			fmt.Fprintf(&line, "%3d ", d.Day)
		}

		if i%7 == 6 || i == len(days)-1 {
			fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}
}
