package main

import (
	"errors"
	"os"
	"time"

	"consultly/apiclient"

	"github.com/spf13/cobra"
)

type options struct {
	apiURL       string
	token        string
	consultantID string
	timeout      time.Duration
	now          func() time.Time
}

func (o *options) client() *apiclient.Client {
	return apiclient.New(apiclient.Config{BaseURL: o.apiURL, Token: o.token, Timeout: o.timeout})
}

func (o *options) requireConsultant() error {
	if o.consultantID == "" {
		return errors.New("--consultant is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	opts := &options{now: time.Now}

	root := &cobra.Command{
		Use:   "planner",
		Short: "Browse a consultant's calendar and book a session",
		Long: `planner talks to the booking API to list a consultant's bookable
dates, render a month calendar, show open slots and book one.

Examples:
  planner dates --consultant c1
  planner calendar --consultant c1 --month 2026-11
  planner slots --consultant c1 --date 2026-10-16
  planner durations --consultant c1 --type chat
  planner book --consultant c1 --date 2026-10-16 --slot 10:30 --minutes 60`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "api", envOr("CONSULTLY_API", "http://localhost:8080"), "booking API base URL")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("CONSULTLY_TOKEN"), "bearer token")
	root.PersistentFlags().StringVarP(&opts.consultantID, "consultant", "c", "", "consultant ID")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "request timeout")

	root.AddCommand(
		newDatesCmd(opts),
		newCalendarCmd(opts),
		newSlotsCmd(opts),
		newDurationsCmd(opts),
		newBookCmd(opts),
	)
	return root
}
