package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Blood-Donation-Admin/internal/utils"
	"Blood-Donation-Admin/pkg/console"
	"Blood-Donation-Admin/pkg/gateway"
)

var errAppointmentNotListed = errors.New("appointment not found in the list")

type rootOptions struct {
	configPath string
	lang       string
	verbose    bool
	yes        bool
}

// session is one signed-in console run.
type session struct {
	client *gateway.Client
	list   *console.ListController
	form   *console.DonationForm
	survey *console.SurveyViewer
	logger *zap.Logger
	out    io.Writer
}

func newSession(ctx context.Context, cmd *cobra.Command, opts *rootOptions) (*session, error) {
	utils.LoadConfigFile(opts.configPath)

	logger := zap.NewNop()
	if opts.verbose {
		logger = utils.NewLogger()
	}

	messages := console.EnglishMessages()
	if opts.lang == "vi" {
		messages = console.VietnameseMessages()
	}

	timeout := time.Duration(utils.GetConfigInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second
	client := gateway.NewClient(utils.GetConfig("API_URL"), timeout, logger)
	if _, err := client.Login(ctx, utils.GetConfig("STAFF_EMAIL"), utils.GetConfig("STAFF_PASSWORD")); err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	out := cmd.OutOrStdout()
	deps := console.Deps{
		Gateway:   client,
		Identity:  client,
		Notifier:  &terminalNotifier{out: out},
		Confirmer: newTerminalConfirmer(cmd.InOrStdin(), out, opts.yes),
		Logger:    logger,
		Messages:  &messages,
	}

	list, err := console.NewListController(deps)
	if err != nil {
		return nil, err
	}
	form, err := console.NewDonationForm(deps, list)
	if err != nil {
		return nil, err
	}
	survey, err := console.NewSurveyViewer(deps, list)
	if err != nil {
		return nil, err
	}
	if err := list.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	return &session{
		client: client,
		list:   list,
		form:   form,
		survey: survey,
		logger: logger,
		out:    out,
	}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// find looks id up in the loaded collection, ignoring any search term.
func (s *session) find(id string) (console.Row, error) {
	search := s.list.Search()
	s.list.SetSearch("")
	defer s.list.SetSearch(search)

	for _, row := range s.list.Rows() {
		if row.Appointment.ID == id {
			return row, nil
		}
	}
	return console.Row{}, fmt.Errorf("%w: %s", errAppointmentNotListed, id)
}

type terminalNotifier struct {
	out io.Writer
}

func (n *terminalNotifier) Success(message string) {
	fmt.Fprintf(n.out, "[ok] %s\n", message)
}

func (n *terminalNotifier) Error(message string) {
	fmt.Fprintf(n.out, "[error] %s\n", message)
}

type terminalConfirmer struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func newTerminalConfirmer(in io.Reader, out io.Writer, assumeYes bool) *terminalConfirmer {
	return &terminalConfirmer{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

func (c *terminalConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.assumeYes {
		return true, nil
	}
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	type answer struct {
		line string
		err  error
	}
	read := make(chan answer, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		read <- answer{line, err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-read:
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return false, a.err
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}
