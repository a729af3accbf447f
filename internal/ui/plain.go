package ui

import (
	"fmt"
	"io"
	"strings"

	"portfolio/internal/search"
)

// WritePlain prints one line per result: category, label and absolute URL.
func WritePlain(w io.Writer, results []search.Result, siteURL string) error {
	base := strings.TrimRight(siteURL, "/")
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%-9s%s\t%s\n", r.Entry.Category, rowLabel(r), base+r.URL()); err != nil {
			return err
		}
	}
	return nil
}
