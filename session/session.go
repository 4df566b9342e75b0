// Package session runs the interactive explore-report-page-restart loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/andareed/siftly-bikeshare/filters"
	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/prompt"
	"github.com/andareed/siftly-bikeshare/report"
	"github.com/andareed/siftly-bikeshare/trips"
)

const (
	restartQuestion = "\nWould you like to restart? Enter yes or no.\n"
	farewell        = "Thank you for using this system.\nHave a nice day."
)

// Loader produces the filtered trip set for a selection.
type Loader interface {
	Load(ctx context.Context, sel filters.Selection) (*trips.Table, error)
}

// Session wires the interactive components together.
type Session struct {
	Loader   Loader
	P        *report.Printer
	Reporter *report.Reporter
	PageSize int

	prompter *prompt.Prompter
}

// New builds a session reading answers from in.
func New(in io.Reader, loader Loader, p *report.Printer, reporter *report.Reporter, pageSize int) *Session {
	return &Session{
		Loader:   loader,
		P:        p,
		Reporter: reporter,
		PageSize: pageSize,
		prompter: prompt.New(in, p),
	}
}

// Run loops until the user declines to restart or input ends. A load failure
// ends the loop with that error.
func (s *Session) Run(ctx context.Context) error {
	for {
		again, err := s.once(ctx)
		if errors.Is(err, prompt.ErrClosed) {
			logging.Infof("Input closed, leaving")
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) once(ctx context.Context) (bool, error) {
	id := uuid.NewString()

	sel, err := (&Selector{Prompter: s.prompter, P: s.P}).Select()
	if err != nil {
		return false, err
	}
	logging.Infof("Session %s: selection %s", id, sel)

	table, err := s.Loader.Load(ctx, sel)
	if err != nil {
		logging.Errorf("Session %s: %v", id, err)
		return false, fmt.Errorf("session %s: %w", id, err)
	}

	s.Reporter.All(table)

	pager := &Pager{Prompter: s.prompter, P: s.P, PageSize: s.PageSize}
	if err := pager.Run(table); err != nil {
		return false, err
	}

	return s.askRestart()
}

func (s *Session) askRestart() (bool, error) {
	for {
		answer, err := s.prompter.Ask(restartQuestion)
		if err != nil {
			return false, err
		}
		switch v, _ := prompt.YesNo(answer); v {
		case "no":
			s.P.Rule()
			s.P.Print(farewell)
			return false, nil
		case "yes":
			s.P.Rule()
			return true, nil
		default:
			s.P.Invalid(tryAgain)
		}
	}
}
