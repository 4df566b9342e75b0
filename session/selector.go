package session

import (
	"github.com/andareed/siftly-bikeshare/filters"
	"github.com/andareed/siftly-bikeshare/prompt"
	"github.com/andareed/siftly-bikeshare/report"
)

const (
	cityQuestion  = "Which city do you want to see? chicago, new york city or washington?"
	monthQuestion = "Which month do you want to see?\nPlease type in January, February, March, April, May, June or All."
	dayQuestion   = "Which day do you want to see?\nPlease type in Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday or All."

	cityRejected = "Invalid input.\nPlease type in name without capital."
	tryAgain     = "Invalid input. Please try again."
)

// Selector asks for city, month and day until each is valid.
type Selector struct {
	Prompter *prompt.Prompter
	P        *report.Printer
}

// Select returns the validated Selection. It only fails when input ends.
func (s *Selector) Select() (filters.Selection, error) {
	s.P.Print("Hello! Let's explore some US bikeshare data!")

	city, err := s.Prompter.AskValid(cityQuestion, cityRejected, filters.NormalizeCity)
	if err != nil {
		return filters.Selection{}, err
	}
	s.P.Rule()

	month, err := s.Prompter.AskValid(monthQuestion, tryAgain, filters.NormalizeMonth)
	if err != nil {
		return filters.Selection{}, err
	}
	s.P.Rule()

	day, err := s.Prompter.AskValid(dayQuestion, tryAgain, filters.NormalizeDay)
	if err != nil {
		return filters.Selection{}, err
	}
	s.P.Rule()

	return filters.Selection{City: city, Month: month, Day: day}, nil
}
