package ics

import (
	"errors"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// maxOccurrencesPerEvent caps the expansion of a single recurring event.
const maxOccurrencesPerEvent = 500

// Occurrence is one concrete instance of an event in the display time zone.
type Occurrence struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

// Expand resolves events into occurrences starting in [from, to), converted to
// loc (time.Local when nil). RRULE, EXDATE and RECURRENCE-ID overrides are
// honoured. The result is sorted by start time, then summary.
func Expand(events []Event, from, to time.Time, loc *time.Location) ([]Occurrence, error) {
	if to.Before(from) {
		return nil, errors.New("expand: range end is before range start")
	}
	if loc == nil {
		loc = time.Local
	}

	overrides := map[string][]Event{}
	for _, ev := range events {
		if ev.IsOverride() {
			overrides[ev.UID] = append(overrides[ev.UID], ev)
		}
	}

	var out []Occurrence
	for _, ev := range events {
		var starts []time.Time
		switch {
		case ev.IsOverride():
			starts = []time.Time{ev.Start}
		case ev.RawRRule == "":
			starts = []time.Time{ev.Start}
		default:
			var err error
			if starts, err = recurrences(ev, from, to); err != nil {
				tracer().Errorf("event %s: bad RRULE %q: %v", ev.UID, ev.RawRRule, err)
				continue
			}
		}
		for _, s := range starts {
			if !ev.IsOverride() && overridden(overrides[ev.UID], s) {
				continue
			}
			if s.Before(from) || !s.Before(to) {
				continue
			}
			out = append(out, occurrence(ev, s, loc))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].Summary < out[j].Summary
	})
	tracer().Debugf("expanded %d events into %d occurrences", len(events), len(out))
	return out, nil
}

func recurrences(ev Event, from, to time.Time) ([]time.Time, error) {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		return nil, err
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}
	times := set.Between(from.In(ev.Start.Location()), to.In(ev.Start.Location()), true)
	if len(times) > maxOccurrencesPerEvent {
		tracer().Infof("event %s: truncated to %d occurrences", ev.UID, maxOccurrencesPerEvent)
		times = times[:maxOccurrencesPerEvent]
	}
	return times, nil
}

func overridden(overrides []Event, start time.Time) bool {
	for _, ov := range overrides {
		if ov.Recurrence.Equal(start) {
			return true
		}
	}
	return false
}

func occurrence(ev Event, start time.Time, loc *time.Location) Occurrence {
	end := start.Add(ev.End.Sub(ev.Start))
	if ev.AllDay {
		// Calendar dates do not move with the display zone.
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 1)
	}
	return Occurrence{
		UID:         ev.UID,
		Summary:     ev.Summary,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       start.In(loc),
		End:         end.In(loc),
		AllDay:      ev.AllDay,
	}
}
