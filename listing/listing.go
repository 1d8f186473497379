// Package listing implements the client-side search and month filters used by the table views.
package listing

import (
	"fmt"
	"github.com/samber/lo"
	"sort"
	"strings"
	"time"
)

// All disables a select filter. AllMonths is its name on the month filter.
const (
	All       = "all"
	AllMonths = All
)

// Search keeps items whose key contains query, ignoring case.
func Search[T any](items []T, query string, key func(T) string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	return lo.Filter(items, func(item T, _ int) bool {
		return strings.Contains(strings.ToLower(key(item)), q)
	})
}

// Months returns the distinct months present in items as sorted "MM" strings.
func Months[T any](items []T, at func(T) time.Time) []string {
	months := lo.Uniq(lo.Map(items, func(item T, _ int) int {
		return int(at(item).Month())
	}))
	sort.Ints(months)

	return lo.Map(months, func(m int, _ int) string {
		return fmt.Sprintf("%02d", m)
	})
}

// ByMonth keeps items whose timestamp falls in month ("01".."12"), in any year.
func ByMonth[T any](items []T, month string, at func(T) time.Time) []T {
	if month == "" || month == AllMonths {
		return items
	}
	return lo.Filter(items, func(item T, _ int) bool {
		return fmt.Sprintf("%02d", int(at(item).Month())) == month
	})
}

// Where keeps items whose key equals want. An empty want or All keeps everything.
func Where[T any](items []T, want string, key func(T) string) []T {
	if want == "" || want == All {
		return items
	}
	return lo.Filter(items, func(item T, _ int) bool {
		return key(item) == want
	})
}

// Options returns the distinct non-empty keys of items, sorted, for a select filter.
func Options[T any](items []T, key func(T) string) []string {
	values := lo.Uniq(lo.Filter(lo.Map(items, func(item T, _ int) string {
		return key(item)
	}), func(v string, _ int) bool {
		return v != ""
	}))
	sort.Strings(values)
	return values
}
