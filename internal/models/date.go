package models

import (
	"encoding/json"
	"strings"
)

// rawMark prefixes dates that arrived as a JSON value other than a string.
// A string date that happens to start with rawMark gets a second one.
const rawMark = "\x1f"

// Date is the booking date exactly as the client sent it. Dates are compared
// by equality only, so "2024-05-01", 20240501 and "20240501" are three
// different dates. A missing or null date is the empty string.
type Date string

// DateFromJSON builds a Date from one JSON value.
func DateFromJSON(b []byte) (Date, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return "", err
	}

	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		if strings.HasPrefix(t, rawMark) {
			return Date(rawMark + t), nil
		}
		return Date(t), nil
	}

	canonical, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return Date(rawMark + string(canonical)), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := DateFromJSON(b)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	s := string(d)
	if !strings.HasPrefix(s, rawMark) {
		return json.Marshal(s)
	}

	rest := s[len(rawMark):]
	if strings.HasPrefix(rest, rawMark) || !json.Valid([]byte(rest)) {
		return json.Marshal(rest)
	}

	return []byte(rest), nil
}
