package service

import (
	"github.com/aina-travel/backend/internal/domain"
	"github.com/aina-travel/backend/internal/itinerary"
	"github.com/aina-travel/backend/internal/session"
)

// ExportService assembles a full flat export of all trips with their
// computed itinerary assignments.
type ExportService struct {
	session *session.Session
}

// NewExportService constructs an ExportService over the shared session.
func NewExportService(sess *session.Session) *ExportService {
	return &ExportService{session: sess}
}

// Export returns one ExportRow per trip item, in trip order then item order,
// each carrying the item's day/slot from a fresh itinerary generation.
// Trips with no items contribute one row with empty item fields and Day 0.
// Always returns a non-nil slice.
func (s *ExportService) Export() []domain.ExportRow {
	rows := []domain.ExportRow{}
	for _, trip := range s.session.Snapshot().Trips {
		if len(trip.Items) == 0 {
			rows = append(rows, domain.ExportRow{
				TripID:      trip.ID.String(),
				TripName:    trip.Name,
				TripCountry: trip.Country,
			})
			continue
		}
		for _, entry := range itinerary.Generate(trip.Items) {
			rows = append(rows, domain.ExportRow{
				TripID:      trip.ID.String(),
				TripName:    trip.Name,
				TripCountry: trip.Country,
				POIID:       entry.POI.ID,
				Title:       entry.POI.Title,
				City:        entry.POI.City,
				Category:    entry.POI.Category,
				Zone:        entry.POI.Zone,
				Day:         entry.Day,
				Slot:        entry.Slot,
			})
		}
	}
	return rows
}
