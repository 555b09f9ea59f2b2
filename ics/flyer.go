package ics

import (
	"time"

	"github.com/NicholeMattera/Outclimb-Event-Image-Generator/layout"
)

// DayLabel is the time layout of an event's day column, e.g. "Sat 5".
const DayLabel = "Mon 2"

// MonthRange returns the first instant of month's month in loc and the first
// instant of the following month.
func MonthRange(month time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// ToFlyer converts the occurrences that start in month into flyer data. Events
// with a description are numbered 1..n in order and carry it as details.
func ToFlyer(occurrences []Occurrence, month time.Time, loc *time.Location) layout.FlyerData {
	from, to := MonthRange(month, loc)
	data := layout.FlyerData{Month: from.Format("January")}

	num := 0
	for _, occ := range occurrences {
		start := occ.Start.In(from.Location())
		if start.Before(from) || !start.Before(to) {
			continue
		}
		ev := layout.EventRecord{
			Day:      start.Format(DayLabel),
			Name:     occ.Summary,
			Location: occ.Location,
		}
		if occ.Description != "" {
			num++
			ev.DetailsNum = num
			ev.Details = occ.Description
		}
		data.Events = append(data.Events, ev)
	}
	tracer().Infof("%s: %d events, %d with details", data.Month, len(data.Events), num)
	return data
}

// MonthFlyer parses an ICS payload and builds the flyer for month.
func MonthFlyer(body []byte, month time.Time, loc *time.Location) (layout.FlyerData, error) {
	events, err := Parse(body)
	if err != nil {
		return layout.FlyerData{}, err
	}
	from, to := MonthRange(month, loc)
	occurrences, err := Expand(events, from, to, from.Location())
	if err != nil {
		return layout.FlyerData{}, err
	}
	return ToFlyer(occurrences, month, from.Location()), nil
}
