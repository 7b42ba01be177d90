package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Blood-Donation-Admin/domain"
	"Blood-Donation-Admin/pkg/console"
)

func listCmd(opts *rootOptions) *cobra.Command {
	var search, sort string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			s.list.SetSearch(search)
			if err := s.list.SetSort(domain.SortKey(sort)); err != nil {
				return err
			}

			w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tPHONE\tSTATUS\tDONATION")
			for _, row := range s.list.Rows() {
				action := "-"
				if row.DonationAction.Enabled {
					action = row.DonationAction.Label
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					row.Appointment.ID,
					row.Date,
					row.Appointment.Phone,
					row.Appointment.Status,
					action,
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by appointment id")
	cmd.Flags().StringVar(&sort, "sort", string(domain.SortByStatus), "sort by status or date")
	return cmd
}

func surveyCmd(opts *rootOptions) *cobra.Command {
	var approve, reject bool
	cmd := &cobra.Command{
		Use:   "survey <appointment-id>",
		Short: "Show an appointment survey and approve or reject it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if approve && reject {
				return errors.New("--approve and --reject are exclusive")
			}

			s, err := newSession(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			row, err := s.find(args[0])
			if err != nil {
				return err
			}
			s.list.Select(row.Appointment)

			view, _ := s.survey.View()
			fmt.Fprintln(s.out, view.Title)
			for _, a := range view.Answers {
				fmt.Fprintf(s.out, "  %s\n    %s\n", a.Question, a.Answer)
			}
			fmt.Fprintf(s.out, "Address: %s\nTime: %s\n", view.Address, view.TimeRange)

			var sent bool
			switch {
			case approve:
				sent, err = s.survey.Approve(cmd.Context())
			case reject:
				sent, err = s.survey.Reject(cmd.Context())
			default:
				return nil
			}
			if err != nil {
				return err
			}
			if !sent {
				fmt.Fprintln(s.out, "No change.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&approve, "approve", false, "approve the survey")
	cmd.Flags().BoolVar(&reject, "reject", false, "reject the survey")
	return cmd
}

func statusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <appointment-id> <status>",
		Short: "Set an appointment status",
		Long:  "Set an appointment status to one of PENDING, APPROVED, REJECTED, FULFILLED or CANCELLED.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			status := domain.AppointmentStatus(strings.ToUpper(args[1]))
			return s.list.UpdateStatus(cmd.Context(), args[0], status)
		},
	}
}

type donationFlags struct {
	volume    int
	date      string
	bloodType string
	location  string
	notes     string
	edit      bool
}

func donationCmd(opts *rootOptions) *cobra.Command {
	f := &donationFlags{}
	cmd := &cobra.Command{
		Use:   "donation <appointment-id>",
		Short: "Show, record or edit the donation detail of an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			row, err := s.find(args[0])
			if err != nil {
				return err
			}
			if err := s.form.Open(cmd.Context(), row.Appointment); err != nil {
				return err
			}
			defer s.form.Close()

			if !fieldFlagsChanged(cmd) {
				printDonation(s, s.form.Snapshot())
				return nil
			}

			if s.form.Snapshot().State == console.StateReadOnly {
				if !f.edit {
					printDonation(s, s.form.Snapshot())
					return errors.New("donation already recorded; pass --edit to change it")
				}
				if err := s.form.ToggleEdit(); err != nil {
					return err
				}
			}

			if err := applyDonationFlags(cmd, s.form, f); err != nil {
				return err
			}

			err = s.form.Submit(cmd.Context())
			var fieldErrs console.FieldErrors
			if errors.As(err, &fieldErrs) {
				for field, msg := range fieldErrs {
					fmt.Fprintf(s.out, "  %s: %s\n", field, msg)
				}
			}
			return err
		},
	}
	cmd.Flags().IntVar(&f.volume, "volume", 0, "donated volume in ml (200, 350, 500)")
	cmd.Flags().StringVar(&f.date, "date", "", "donation date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.bloodType, "blood-type", "", "blood type (A, B, AB, O)")
	cmd.Flags().StringVar(&f.location, "location", "", "donation location")
	cmd.Flags().StringVar(&f.notes, "notes", "", "notes")
	cmd.Flags().BoolVar(&f.edit, "edit", false, "edit an already recorded donation")
	return cmd
}

var donationFieldFlags = []string{"volume", "date", "blood-type", "location", "notes"}

func fieldFlagsChanged(cmd *cobra.Command) bool {
	for _, name := range donationFieldFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func applyDonationFlags(cmd *cobra.Command, form *console.DonationForm, f *donationFlags) error {
	flags := cmd.Flags()
	if flags.Changed("volume") {
		if err := form.SetVolume(f.volume); err != nil {
			return err
		}
	}
	if flags.Changed("date") {
		date, err := domain.ParseDate(f.date)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}
		if form.DisabledDate(date) {
			return domain.ErrDonationDateBeforeAppointment
		}
		if err := form.SetDonationDate(date); err != nil {
			return err
		}
	}
	if flags.Changed("blood-type") {
		if err := form.SetBloodType(domain.BloodType(strings.ToUpper(f.bloodType))); err != nil {
			return err
		}
	}
	if flags.Changed("location") {
		if err := form.SetLocation(f.location); err != nil {
			return err
		}
	}
	if flags.Changed("notes") {
		if err := form.SetNotes(f.notes); err != nil {
			return err
		}
	}
	return nil
}

func printDonation(s *session, snap console.FormSnapshot) {
	fmt.Fprintln(s.out, snap.Title)
	if snap.Fields == (console.DonationFields{}) {
		fmt.Fprintln(s.out, "  (nothing recorded)")
		return
	}

	date := ""
	if !snap.Fields.DonationDate.IsZero() {
		date = snap.Fields.DonationDate.Format(domain.DateLayout)
	}
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Volume\t%d ml\n", snap.Fields.Volume)
	fmt.Fprintf(w, "  Date\t%s\n", date)
	fmt.Fprintf(w, "  Blood type\t%s\n", snap.Fields.BloodType)
	fmt.Fprintf(w, "  Location\t%s\n", snap.Fields.Location)
	fmt.Fprintf(w, "  Notes\t%s\n", snap.Fields.Notes)
	_ = w.Flush()
}

func exportCmd(opts *rootOptions) *cobra.Command {
	var search, sort, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the appointment list as an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context(), cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			file, err := s.client.ExportAppointments(cmd.Context(), search, domain.SortKey(sort))
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, file, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(s.out, "Wrote %s (%d bytes)\n", out, len(file))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by appointment id")
	cmd.Flags().StringVar(&sort, "sort", string(domain.SortByStatus), "sort by status or date")
	cmd.Flags().StringVarP(&out, "out", "o", "appointments.xlsx", "output file")
	return cmd
}
