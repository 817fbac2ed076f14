package i18n

import (
	"math/rand"
	"testing"

	"KaspaWorth/internal/catalog"
)

func TestLoad_EmbeddedTablesComplete(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"ar", "de", "en", "es", "fr"}
	got := b.Languages()
	if len(got) != len(want) {
		t.Fatalf("expected languages %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected languages %v, got %v", want, got)
		}
	}
	for _, lang := range got {
		for _, it := range catalog.Items {
			if _, ok := b.ItemName(lang, it.ID); !ok {
				t.Errorf("%s: missing item name for %s", lang, it.ID)
			}
		}
		for _, key := range []string{"kaspaPriceTitle", "lastUpdated", "noData", "apiDataError", "apiLoadingError", "notAvailable"} {
			if _, ok := b.Label(lang, key); !ok {
				t.Errorf("%s: missing label %s", lang, key)
			}
		}
	}
}

func TestDetect(t *testing.T) {
	b := NewBundle(map[string]*Table{"en": {}, "fr": {}, "ar": {}})
	tests := []struct {
		locale string
		want   string
	}{
		{"fr-FR", "fr"},
		{"fr_CA.UTF-8", "fr"},
		{"AR", "ar"},
		{"ja-JP", "en"},
		{"", "en"},
		{"C", "en"},
	}
	for _, tt := range tests {
		if got := b.Detect(tt.locale); got != tt.want {
			t.Errorf("Detect(%q): expected %q, got %q", tt.locale, tt.want, got)
		}
	}
}

func TestLabel_MissingReportsFalse(t *testing.T) {
	b := NewBundle(map[string]*Table{
		"en": {Labels: map[string]string{"title": "Kaspa Worth"}},
	})
	if v, ok := b.Label("en", "title"); !ok || v != "Kaspa Worth" {
		t.Errorf("expected title, got %q ok=%v", v, ok)
	}
	if _, ok := b.Label("en", "missing"); ok {
		t.Error("expected missing key to report false")
	}
	if _, ok := b.Label("xx", "title"); ok {
		t.Error("expected missing language to report false")
	}
}

func TestDirection(t *testing.T) {
	if Direction("ar") != "rtl" {
		t.Error("expected rtl for ar")
	}
	for _, l := range []string{"en", "de", "fr", "es", "xx"} {
		if Direction(l) != "ltr" {
			t.Errorf("expected ltr for %s", l)
		}
	}
}

func TestPickQuote(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	if _, ok := PickQuote(nil, rnd); ok {
		t.Error("expected no quote from empty list")
	}
	quotes := []Quote{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		q, ok := PickQuote(quotes, rnd)
		if !ok {
			t.Fatal("expected a quote")
		}
		seen[q.Text] = true
	}
	if len(seen) != len(quotes) {
		t.Errorf("expected every quote to be picked eventually, saw %v", seen)
	}
}
