// Package report renders user records as the plain-text listing printed on
// standard output.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vk/usersfetch/internal/users"
)

const (
	// NotAvailable replaces any field that is missing or not a string.
	NotAvailable = "N/A"
	// NoMatches is printed instead of a listing when there is nothing to show.
	NoMatches = "No users matched the filter or API returned no users."
)

// Separator is printed between two consecutive user blocks.
var Separator = strings.Repeat("-", 40)

// Block renders a single record with its 1-based position in the listing.
func Block(index int, r users.Record) string {
	city, ok := r.City()
	if !ok {
		city = NotAvailable
	}
	return fmt.Sprintf(
		"User %d:\n\nName: %s\n\nUsername: %s\n\nEmail: %s\n\nCity: %s\n",
		index,
		field(r, "name"),
		field(r, "username"),
		field(r, "email"),
		city,
	)
}

// Write prints every record to w, separated by Separator. An empty slice
// prints the NoMatches line.
func Write(w io.Writer, records []users.Record) error {
	bw := bufio.NewWriter(w)

	if len(records) == 0 {
		if _, err := fmt.Fprintln(bw, NoMatches); err != nil {
			return err
		}
		return bw.Flush()
	}

	for i, r := range records {
		if _, err := fmt.Fprintln(bw, Block(i+1, r)); err != nil {
			return fmt.Errorf("failed to write user %d: %w", i+1, err)
		}
		if i != len(records)-1 {
			if _, err := fmt.Fprintln(bw, Separator); err != nil {
				return fmt.Errorf("failed to write separator: %w", err)
			}
		}
	}
	return bw.Flush()
}

func field(r users.Record, name string) string {
	if v, ok := r.Field(name); ok {
		return v
	}
	return NotAvailable
}
