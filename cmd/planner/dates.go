package main

import (
	"fmt"
	"strings"

	"consultly/models"

	"github.com/spf13/cobra"
)

func newDatesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "List bookable dates in the rolling window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireConsultant(); err != nil {
				return err
			}
			dates, err := opts.client().Dates(cmd.Context(), opts.consultantID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(dates) == 0 {
				fmt.Fprintln(out, "No bookable dates.")
				return nil
			}
			for _, d := range dates {
				if d.IsSelectable {
					fmt.Fprintf(out, "%s  %s %s\n", d.Date, d.WeekdayLabel, d.DateLabel)
				}
			}
			return nil
		},
	}
}

func newCalendarCmd(opts *options) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Render a month calendar; * marks bookable days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireConsultant(); err != nil {
				return err
			}
			days, err := opts.client().Calendar(cmd.Context(), opts.consultantID, month)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMonth(days))
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (default current)")
	return cmd
}

// renderMonth draws whole Sunday-first weeks, leaving filler days blank.
func renderMonth(days []models.CandidateDate) string {
	var b strings.Builder
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")
	for i, d := range days {
		switch {
		case !d.InMonth:
			b.WriteString("    ")
		case d.IsSelectable:
			fmt.Fprintf(&b, "%3s*", dayOfMonth(d.Date))
		default:
			fmt.Fprintf(&b, "%3s ", dayOfMonth(d.Date))
		}
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func dayOfMonth(date string) string {
	if len(date) < 10 {
		return "?"
	}
	return strings.TrimPrefix(date[8:10], "0")
}
