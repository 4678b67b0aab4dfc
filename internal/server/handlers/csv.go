package handlers

import (
	"encoding/csv"
	"net/http"

	"github.com/AlexTLDR/phonenorm/internal/database"
	"github.com/AlexTLDR/phonenorm/internal/phone"
)

var csvHeader = []string{"Name", "Email", "Office phone", "Mobile phone"}

// internationalOrDash renders an optional phone for the CSV export
func internationalOrDash(n *phone.Number) string {
	if n == nil {
		return "-"
	}
	return n.InternationalForm()
}

// formatContactForCSV converts a contact to a CSV record
func formatContactForCSV(c *database.Contact) []string {
	email := c.Email
	if email == "" {
		email = "-"
	}
	return []string{c.Name, email, internationalOrDash(c.OfficePhone), internationalOrDash(c.MobilePhone)}
}

// writeCSVHeaders sets HTTP headers and writes the UTF-8 BOM
func writeCSVHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=contacts.csv")

	// Write UTF-8 BOM for Excel compatibility
	_, _ = w.Write([]byte{0xEF, 0xBB, 0xBF})
}

// HandleExportCSV exports contacts to CSV with phones in international form
func HandleExportCSV(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := s.GetStore().ListContacts()
		if err != nil {
			writeError(w, s, "export contacts", err)
			return
		}

		writeCSVHeaders(w)

		cw := csv.NewWriter(w)
		_ = cw.Write(csvHeader)
		for _, c := range contacts {
			_ = cw.Write(formatContactForCSV(c))
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			s.GetLogger().Error("csv_export_failed", "error", err)
		}
	}
}
