package session

import (
	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/prompt"
	"github.com/andareed/siftly-bikeshare/report"
	"github.com/andareed/siftly-bikeshare/trips"
)

const rawQuestion = "Do you want to see the raw data? Yes/No"

// Pager shows a table a page at a time while the user keeps saying yes.
type Pager struct {
	Prompter *prompt.Prompter
	P        *report.Printer
	PageSize int

	cursor int // index of the next row to show
}

// Run drives the pager until the user answers no or input ends.
func (pg *Pager) Run(t *trips.Table) error {
	pg.cursor = 0

	for {
		answer, err := pg.Prompter.Ask(rawQuestion)
		if err != nil {
			return err
		}
		switch v, _ := prompt.YesNo(answer); v {
		case "no":
			logging.Debugf("Pager stopped at row %d of %d", pg.cursor, t.Len())
			return nil
		case "yes":
			if pg.cursor == 0 {
				logging.Debugf("Pager started on %d rows", t.Len())
			}
			pg.P.PrintPage(t.Header, pg.next(t))
		default:
			pg.P.Invalid(tryAgain)
			pg.P.Rule()
		}
	}
}

// next returns the page at the cursor and advances it. Past the end the page
// is empty.
func (pg *Pager) next(t *trips.Table) []trips.Trip {
	size := pg.PageSize
	if size <= 0 {
		size = 5
	}
	from := min(pg.cursor, t.Len())
	to := min(pg.cursor+size, t.Len())
	pg.cursor += size
	return t.Trips[from:to]
}
