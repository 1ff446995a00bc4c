package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-day form accepted wherever a date is entered.
const DateLayout = "2006-01-02"

// parseJSONDate accepts a JSON string holding either a calendar day or an
// RFC 3339 timestamp. null yields nil.
func parseJSONDate(raw json.RawMessage) (*time.Time, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("date must be a string: %w", err)
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return &t, nil
}

// UnmarshalJSON decodes an Entry, accepting "date" as YYYY-MM-DD or RFC 3339.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type plain Entry
	aux := struct {
		*plain
		Date json.RawMessage `json:"date"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d, err := parseJSONDate(aux.Date)
	if err != nil {
		return err
	}
	if d != nil {
		e.Date = *d
	}
	return nil
}

// UnmarshalJSON decodes a Patch, accepting "date" as YYYY-MM-DD or RFC 3339.
func (p *Patch) UnmarshalJSON(data []byte) error {
	type plain Patch
	aux := struct {
		*plain
		Date json.RawMessage `json:"date"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d, err := parseJSONDate(aux.Date)
	if err != nil {
		return err
	}
	p.Date = d
	return nil
}
