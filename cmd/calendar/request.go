package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/scheduling"
	"github.com/Freeeeeet/mentor_scheduler/internal/submission"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decode <label>",
		Short:   `Convert a time label such as "2:00 PM" to HH:MM`,
		Example: `  calendar decode "2:00 PM"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonical, err := scheduling.DecodeTimeLabel(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), canonical)
			return nil
		},
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <HH:MM>",
		Short: "Convert a 24-hour time back to its label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, err := scheduling.EncodeTime(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
			return nil
		},
	}
}

func newBuildCmd() *cobra.Command {
	var (
		date            string
		timeLabel       string
		subject         string
		modality        string
		delivery        string
		location        string
		kind            string
		groupName       string
		maxParticipants int
		note            string
		origin          string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Validate a booking request and print its JSON body and endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.ParseModality(modality)
			if err != nil {
				return err
			}

			in := scheduling.BookingInput{
				TimeLabel:   timeLabel,
				Subject:     subject,
				Modality:    m,
				Delivery:    model.Delivery(delivery),
				Location:    location,
				SessionKind: model.SessionKind(kind),
				GroupName:   groupName,
				Note:        note,
			}
			if date != "" {
				d, err := time.Parse(scheduling.DateLayout, date)
				if err != nil {
					return fmt.Errorf("parse --date: %w", err)
				}
				in.Date = d
			}
			if cmd.Flags().Changed("max") {
				in.MaxParticipants = &maxParticipants
			}

			req, err := scheduling.BuildRequest(in)
			if err != nil {
				return err
			}

			endpoint, err := submission.EndpointFor(model.Origin(origin), req)
			if err != nil {
				return err
			}

			body, err := json.MarshalIndent(req, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal request: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "POST %s\n%s\n", endpoint, body)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", "", "session date, YYYY-MM-DD")
	f.StringVar(&timeLabel, "time", "", `time label, e.g. "2:00 PM"`)
	f.StringVar(&subject, "subject", "", "subject")
	f.StringVar(&modality, "modality", string(model.ModalityHybrid), "mentor modality: online, in-person, hybrid")
	f.StringVar(&delivery, "delivery", string(model.DeliveryOnline), "delivery: online, in-person")
	f.StringVar(&location, "location", "", "meeting place for in-person sessions")
	f.StringVar(&kind, "kind", string(model.SessionOneOnOne), "session kind: one-on-one, group")
	f.StringVar(&groupName, "group-name", "", "group name")
	f.IntVar(&maxParticipants, "max", 0, "maximum group participants")
	f.StringVar(&note, "note", "", "note for the other party")
	f.StringVar(&origin, "origin", string(model.OriginBooking), "booking or offer")

	return cmd
}
