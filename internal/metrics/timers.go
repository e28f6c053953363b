package metrics

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Timers records how long each pipeline stage took.
type Timers struct {
	Timers map[string]*Timer `json:"timers,omitempty"`
	last   string
}

func NewTimers() Timers {
	return Timers{Timers: make(map[string]*Timer)}
}

// set starts a timer, or stops it when it already exists.
func (ts *Timers) set(k string) {
	if _, ok := ts.Timers[k]; !ok {
		ts.Timers[k] = &Timer{start: time.Now()}
	} else {
		stop := time.Now()
		ts.Timers[k].Total = stop.Sub(ts.Timers[k].start).Seconds()
	}
}

// Set stops the last stage timer and starts k (lap).
func (ts *Timers) Set(k string) {
	if ts.last != "" {
		ts.set(ts.last)
	}
	ts.set(k)
	ts.last = k
}

// Add starts or stops a standalone timer.
func (ts *Timers) Add(k string) {
	ts.set(k)
}

// Stop stops the running stage timer, if any.
func (ts *Timers) Stop() {
	if ts.last != "" {
		ts.set(ts.last)
		ts.last = ""
	}
}

// Fields exports stopped timers, in seconds, as log fields.
func (ts *Timers) Fields() log.Fields {
	fields := log.Fields{}
	for k, t := range ts.Timers {
		fields[k] = t.Total
	}
	return fields
}

type Timer struct {
	start time.Time

	// Total time in seconds
	Total float64 `json:"seconds"`
}
