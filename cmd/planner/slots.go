package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSlotsCmd(opts *options) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show open slots on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireConsultant(); err != nil {
				return err
			}
			plan, err := opts.client().Slots(cmd.Context(), opts.consultantID, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plan.Degraded {
				fmt.Fprintln(out, "warning: booked slots could not be checked; some may be taken")
			}
			if len(plan.Slots) == 0 {
				fmt.Fprintln(out, "No open slots.")
				return nil
			}
			for _, s := range plan.Slots {
				fmt.Fprintf(out, "%s  %8s\n", s.SlotID, s.DisplayLabel)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newDurationsCmd(opts *options) *cobra.Command {
	var sessionType string
	cmd := &cobra.Command{
		Use:   "durations",
		Short: "List session lengths and prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireConsultant(); err != nil {
				return err
			}
			choices, err := opts.client().Durations(cmd.Context(), opts.consultantID, sessionType)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, o := range choices {
				line := fmt.Sprintf("%3d min  %8.2f", o.Minutes, o.Fee)
				if o.FreeTrial {
					line += "  (free trial)"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionType, "type", "video", "session type: video or chat")
	return cmd
}
