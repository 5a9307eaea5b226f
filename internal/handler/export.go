package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"
)

// exportHeader is the first CSV row; column order matches writeExportRow.
var exportHeader = []string{
	"trip_id", "trip_name", "trip_country",
	"poi_id", "title", "city", "category", "zone",
	"day", "time_slot",
}

// ExportCSV handles GET /export.csv.
// Streams the full flat export: one row per trip item with its computed
// itinerary assignment, empty-item rows for empty trips.
func (s *Server) ExportCSV(w http.ResponseWriter, _ *http.Request) {
	rows := s.exports.Export()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return
	}
	for _, row := range rows {
		day := ""
		if row.Day > 0 {
			day = strconv.Itoa(row.Day)
		}
		record := []string{
			row.TripID, row.TripName, row.TripCountry,
			row.POIID, row.Title, row.City, string(row.Category), row.Zone,
			day, string(row.Slot),
		}
		if err := cw.Write(record); err != nil {
			return
		}
	}
	cw.Flush()
}
