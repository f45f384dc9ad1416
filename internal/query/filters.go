package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "movie-catalog/internal/errors"
)

// DateLayout is the calendar date layout accepted in filters and create requests.
const DateLayout = "2006-01-02"

// Bound is a parsed range condition. Nil ends are open.
type Bound struct {
	Field string
	Min   any
	Max   any
}

// ParseFilters decodes the filters JSON object against the schema's ranges.
// Unknown keys, null values and empty date strings are ignored. Anything after
// the object is rejected.
func (s Schema) ParseFilters(raw string) ([]Bound, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var values map[string]any
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidFilters, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after the filters object", apperrors.ErrInvalidFilters)
	}

	var bounds []Bound
	for _, r := range s.Ranges {
		minVal, err := convert(values[r.Min], r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrInvalidFilters, r.Min, err)
		}
		maxVal, err := convert(values[r.Max], r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrInvalidFilters, r.Max, err)
		}
		if minVal == nil && maxVal == nil {
			continue
		}
		bounds = append(bounds, Bound{Field: r.Field, Min: minVal, Max: maxVal})
	}
	return bounds, nil
}

func convert(v any, r Range) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch r.Kind {
	case Number:
		switch n := v.(type) {
		case json.Number:
			return n.Float64()
		case string:
			return strconv.ParseFloat(strings.TrimSpace(n), 64)
		}
		return nil, fmt.Errorf("expected a number, got %T", v)
	case Date:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected a date string, got %T", v)
		}
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		return ParseDate(s)
	}
	return nil, fmt.Errorf("unsupported filter kind %d", r.Kind)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns a UTC time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t.UTC(), nil
}
