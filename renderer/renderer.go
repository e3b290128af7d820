// Package renderer turns taxfolio views into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/taxfolio"
)

//go:embed *.md
var templates embed.FS

// Options holds configuration shared by every renderer.
type Options struct {
	Locale string // amounts are formatted for this locale, taxfolio.DefaultLocale when empty
}

// eur formats an amount for the configured locale.
func (o Options) eur(m taxfolio.Money) string {
	return taxfolio.FormatCurrency(m, taxfolio.FormatOptions{Locale: o.Locale})
}

// optEUR formats an optional amount, N/A when absent.
func (o Options) optEUR(m *taxfolio.Money) string {
	if m == nil {
		return taxfolio.NA
	}
	return o.eur(*m)
}

func (o Options) funcs() template.FuncMap {
	return template.FuncMap{
		"eur":    o.eur,
		"optEUR": o.optEUR,
		"pct":    taxfolio.PercentString,
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, opts Options, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(opts.funcs()).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// yearTitle names the selected period in titles.
func yearTitle(y taxfolio.Year) string {
	if y.IsAll() {
		return "All Years"
	}
	return y.String()
}
