package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"KaspaWorth/internal/model"
)

// textSink prints views as plain text. The first write error is kept.
type textSink struct {
	w   io.Writer
	err error
}

func (s *textSink) Publish(v model.View) {
	if s.err != nil {
		return
	}
	s.err = writeView(s.w, v)
}

func writeView(w io.Writer, v model.View) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", v.Labels["title"], v.Labels["subtitle"])
	// Without a price the line already carries its title.
	if priced(v) {
		fmt.Fprintf(&b, "%s: %s\n", v.Labels["kaspaPriceTitle"], v.PriceText)
	} else {
		fmt.Fprintln(&b, v.PriceText)
	}
	if v.LastUpdated != "" {
		fmt.Fprintln(&b, v.LastUpdated)
	}
	b.WriteString("\n")

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, it := range v.Items {
		qty := it.Quantity
		if it.Unit != "" {
			qty += " " + it.Unit
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Name, qty, it.Fiat)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if v.QuoteText != "" {
		fmt.Fprintf(&b, "\n%s\n%s\n", v.QuoteText, v.QuoteAuthor)
	}
	if f := v.Labels["footer"]; f != "" {
		fmt.Fprintf(&b, "\n%s\n", f)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func priced(v model.View) bool {
	return len(v.Items) > 0 && v.Items[0].Available
}
