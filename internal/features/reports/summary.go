package reports

import (
	"fmt"
	"strings"
)

// FormatSummary renders the human-readable multi-line detail text shown when
// a report is selected from the list.
func FormatSummary(report *LeakReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Détails:\n%s\n\n", report.Address)
	fmt.Fprintf(&b, "Statut: %s\n", report.Status.Label())
	fmt.Fprintf(&b, "Date: %s\n", report.IdentificationDate)
	fmt.Fprintf(&b, "Nom: %s\n", report.ClaimantName)
	fmt.Fprintf(&b, "Tel: %s\n", report.ClaimantPhone)
	fmt.Fprintf(&b, "Commentaire: %s", report.Comments)

	return b.String()
}

// NavigationURL builds the external map application URL for a coordinate
// pair. Opening it is gated by explicit user confirmation on the client.
func NavigationURL(c Coordinates) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v", c.Latitude, c.Longitude)
}
