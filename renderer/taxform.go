package renderer

import "github.com/etnz/taxfolio"

// RenderTaxForm renders the Anexo J tables of a tax form.
// Empty tables are replaced by a short notice.
func RenderTaxForm(f *taxfolio.TaxForm, opts Options) string {
	partials := map[string]string{
		"taxform_dividends": "taxform_dividends.md",
		"taxform_stocks":    "taxform_stocks.md",
		"taxform_options":   "taxform_options.md",
	}
	if f.Year.IsAll() {
		// the form is filed per year, there is nothing to list
		partials["taxform_dividends"] = ""
		partials["taxform_stocks"] = ""
		partials["taxform_options"] = ""
	}
	return renderTemplate("taxform", "taxform.md", partials, opts, f)
}
