// Package web embeds the portal's HTML templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"bank-portal/entities"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const BankName = "SecureBank"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template with the portal's helper funcs.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

// Static serves app.css and app.js.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":       Money,
		"title":       Title,
		"shortTime":   ShortTime,
		"icon":        func(t entities.NotificationType) string { return t.Icon() },
		"roleDisplay": func(r entities.Role) string { return r.DisplayName() },
		"lower":       strings.ToLower,
		"ttlMillis":   func(d time.Duration) int64 { return d.Milliseconds() },
		"dict":        dict,
		"slice1":      func(c *entities.Customer) []entities.Customer { return []entities.Customer{*c} },
	}
}

// dict builds a map from alternating keys and values so partials can take several arguments.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict needs an even number of arguments, got %d", len(pairs))
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// Money renders rupees with digit grouping and two decimals: ₹12,345.60.
func Money(amount float64) string {
	return message.NewPrinter(language.English).Sprintf("₹%.2f", amount)
}

// Title turns upstream enum values like DEPOSIT into Deposit.
// Casers keep state, so each call gets its own.
func Title(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ShortTime formats upstream timestamps as 1/2/06, 3:04 PM. Unparseable values are shown as sent.
func ShortTime(s string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("1/2/06, 3:04 PM")
		}
	}
	return s
}
