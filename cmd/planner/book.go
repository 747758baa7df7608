package main

import (
	"fmt"

	"consultly/apiclient"
	"consultly/models"
	"consultly/services/planner"

	"github.com/spf13/cobra"
)

func newBookCmd(opts *options) *cobra.Command {
	var (
		date        string
		slotID      string
		minutes     int
		sessionType string
		notes       string
	)
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an open slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireConsultant(); err != nil {
				return err
			}
			browser := &apiclient.Browser{Client: opts.client(), ConsultantID: opts.consultantID, Clock: opts.now}

			plan, err := browser.SelectDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			slot, ok := planner.FindSlot(plan.Slots, slotID)
			if !ok {
				return fmt.Errorf("slot %s on %s is not open", slotID, date)
			}

			res, err := browser.Book(cmd.Context(), slot, minutes, sessionType, notes)
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
	cmd.Flags().StringVar(&slotID, "slot", "", "slot start as HH:MM")
	cmd.Flags().IntVar(&minutes, "minutes", planner.DurationShort, "session length: 5 (free trial), 30 or 60")
	cmd.Flags().StringVar(&sessionType, "session", models.SessionTypeVideo, "session type: video or chat")
	cmd.Flags().StringVar(&notes, "notes", "", "note for the consultant")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("slot")
	return cmd
}

func printResult(cmd *cobra.Command, res *models.BookingResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Booking %s: %s\n", res.BookingID, res.Status)
	if res.PaymentRequired && res.PaymentOrder != nil {
		fmt.Fprintf(out, "Payment of %.2f %s required (order %s)\n", res.Fee, res.Currency, res.PaymentOrder.OrderID)
	}
}
