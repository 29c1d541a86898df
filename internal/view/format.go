// Package view projects catalog and cart state into the display models
// consumed by the HTTP API and the CLI.
package view

import "github.com/dustin/go-humanize"

// FormatCLP renders a whole-peso amount the way es-CL displays CLP:
// dot thousands separator and no decimals, e.g. "$89.990".
func FormatCLP(amount int64) string {
	return "$" + humanize.FormatInteger("#.###,", int(amount))
}
