// Package output provides utilities for formatting and displaying comparison reports.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/mr-compare/internal/report"
	"github.com/iwvelando/mr-compare/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, r report.Report) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "--- MR %d pts | gift card baseline %s ---\n", r.Balance, format.KRW(r.GiftValue)); err != nil {
		return err
	}
	fmt.Fprintf(w, "Partner | Category | Ratio | Converted | Value | Notes\n")
	fmt.Fprintf(w, "_______ | ________ | _____ | _________ | _____ | _____\n")
	for _, e := range r.Partners {
		notes := make([]string, 0, 2)
		if e.Badge != nil {
			notes = append(notes, e.Badge.Label)
		}
		if e.AboveGift {
			notes = append(notes, "above gift")
		}
		fmt.Fprintf(w, "%s | %s | %s | %s | %s | %s\n",
			e.Partner.Name,
			e.Partner.Category.Label(),
			e.Ratio,
			format.Units(e.Miles, e.Partner.Category.Unit()),
			format.KRW(e.CashValue),
			strings.Join(notes, ","),
		)
	}

	if best, ok := r.Best(); ok {
		fmt.Fprintf(w, "\nBest conversion: %s (%s)\n", best.Partner.Name, format.KRW(best.CashValue))
	}

	if len(r.Links) > 0 {
		fmt.Fprintf(w, "\n--- Award search %s → %s ---\n", r.Search.Origin, r.Search.Destination)
		for _, l := range r.Links {
			fmt.Fprintf(w, "%s: %s\n", l.Name, l.URL)
		}
	}
	return nil
}

var csvHeader = []string{
	"id", "name", "category", "ratio", "converted", "unit",
	"cash_value", "above_gift", "badge", "booking_url",
}

// CsvFormat outputs the partner table in comma-separated value format.
func CsvFormat(w io.Writer, r report.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range r.Partners {
		badge := ""
		if e.Badge != nil {
			badge = e.Badge.Label
		}
		record := []string{
			e.Partner.ID,
			e.Partner.Name,
			string(e.Partner.Category),
			e.Ratio,
			strconv.FormatFloat(e.Miles, 'f', 2, 64),
			e.Partner.Category.Unit(),
			strconv.FormatFloat(e.CashValue, 'f', 2, 64),
			strconv.FormatBool(e.AboveGift),
			badge,
			e.BookingURL,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs the whole report as indented JSON.
func JSONFormat(w io.Writer, r report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}
