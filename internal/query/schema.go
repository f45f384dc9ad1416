// Package query builds MongoDB filters and aggregation pipelines for catalog listings.
package query

import "slices"

// Kind is the value type of a range filter.
type Kind int

const (
	Number Kind = iota
	Date
)

// Range maps a pair of filter keys onto an inclusive range over one document field.
type Range struct {
	Field string
	Min   string
	Max   string
	Kind  Kind
}

// Lookup replaces a reference id array with the referenced documents.
type Lookup struct {
	From  string
	Field string
}

// Schema describes how a collection can be searched, filtered, sorted and populated.
type Schema struct {
	DefaultSort string
	Sortable    []string
	Search      []string
	Ranges      []Range
	Lookups     []Lookup
}

// SortField returns requested when it is sortable, otherwise the default sort field.
func (s Schema) SortField(requested string) string {
	if requested != "" && slices.Contains(s.Sortable, requested) {
		return requested
	}
	return s.DefaultSort
}
