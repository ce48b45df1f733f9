// Package dummy is the example domain served by the commandable CLI and used
// by the transport tests: a small in-memory store of Dummy records exposed as
// a command set.
package dummy

import (
	"github.com/erraggy/commandable/command"
)

// Dummy is the example record.
type Dummy struct {
	ID      string `json:"id"`
	Key     string `json:"key"`
	Content string `json:"content"`
	Flag    bool   `json:"flag"`
}

// FromParameters reads a Dummy out of a parameter map. Absent or mistyped
// fields keep their zero values.
func FromParameters(p command.Parameters) Dummy {
	return Dummy{
		ID:      p.GetAsStringWithDefault("id", ""),
		Key:     p.GetAsStringWithDefault("key", ""),
		Content: p.GetAsStringWithDefault("content", ""),
		Flag:    p.GetAsBooleanWithDefault("flag", false),
	}
}

// Filter selects dummies by exact field match. Empty fields match anything.
type Filter struct {
	Key string
}

// FilterFromParameters reads a Filter from the "filter" argument.
func FilterFromParameters(p command.Parameters) Filter {
	return Filter{Key: p.GetAsStringWithDefault("key", "")}
}

func (f Filter) matches(d Dummy) bool {
	return f.Key == "" || f.Key == d.Key
}

// Paging selects a window of results.
type Paging struct {
	// Skip is the number of items to skip
	Skip int64
	// Take is the maximum number of items to return; 0 means the default
	Take int64
	// Total asks for the total count of matching items
	Total bool
}

// DefaultTake is the page size used when none is requested.
const DefaultTake = 100

// PagingFromParameters reads Paging from the "paging" argument.
func PagingFromParameters(p command.Parameters) Paging {
	return Paging{
		Skip:  max(p.GetAsIntegerWithDefault("skip", 0), 0),
		Take:  max(p.GetAsIntegerWithDefault("take", 0), 0),
		Total: p.GetAsBooleanWithDefault("total", false),
	}
}

// Page is one window of results.
type Page struct {
	Data  []Dummy `json:"data"`
	Total *int64  `json:"total,omitempty"`
}
