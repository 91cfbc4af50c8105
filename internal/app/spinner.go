package app

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// progressRefreshRate is the spinner frame interval.
const progressRefreshRate = 150 * time.Millisecond

// Spinner abstracts the terminal spinner so commands can run without one.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text after the spinner. Progress callbacks arrive
// from measurement goroutines, so the update takes the spinner's lock.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

func newSpinner(w io.Writer) Spinner {
	return &realSpinner{spinner.New(spinner.CharSets[11], progressRefreshRate, spinner.WithWriter(w))}
}

// nopSpinner is used with --quiet.
type nopSpinner struct{}

func (nopSpinner) Start()              {}
func (nopSpinner) Stop()               {}
func (nopSpinner) UpdateSuffix(string) {}

func (a *Application) progressSpinner() Spinner {
	if a.quiet || a.newSpinner == nil {
		return nopSpinner{}
	}
	return a.newSpinner(a.ErrOut)
}
