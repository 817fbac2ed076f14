// Package formatter renders numbers, amounts and timestamps for a display
// language.
package formatter

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"KaspaWorth/internal/model"
)

var (
	printersMu sync.Mutex
	printers   = make(map[string]*message.Printer)
)

// printer returns the cached printer for lang's base language. Input without
// a known base language shares the English printer.
func printer(lang string) *message.Printer {
	key := "en"
	if tag, err := language.Parse(lang); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			key = base.String()
		}
	}

	printersMu.Lock()
	defer printersMu.Unlock()
	if p, ok := printers[key]; ok {
		return p
	}
	p := message.NewPrinter(language.Make(key))
	printers[key] = p
	return p
}

// Number formats v with exactly decimals fraction digits and the language's
// grouping and decimal separators.
func Number(lang string, v float64, decimals int) string {
	return printer(lang).Sprintf("%v", number.Decimal(v, number.Scale(decimals)))
}

// Money prefixes a formatted amount with the currency sign.
func Money(lang string, cur model.Currency, v float64, decimals int) string {
	return cur.Symbol() + Number(lang, v, decimals)
}

type dateLayout struct {
	date  string
	clock string
}

// numeric day/month/year and two-digit hour/minute per language
var layouts = map[string]dateLayout{
	"en": {"1/2/2006", "03:04 PM"},
	"de": {"2.1.2006", "15:04"},
	"fr": {"02/01/2006", "15:04"},
	"es": {"2/1/2006", "15:04"},
	"ar": {"2/1/2006", "03:04 PM"},
}

var defaultLayout = dateLayout{"2006-01-02", "15:04"}

// DateTime formats t as a short date followed by hour and minute.
func DateTime(lang string, t time.Time) string {
	l, ok := layouts[primary(lang)]
	if !ok {
		l = defaultLayout
	}
	return t.Format(l.date) + " " + t.Format(l.clock)
}

func primary(lang string) string {
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return strings.ToLower(lang)
}
