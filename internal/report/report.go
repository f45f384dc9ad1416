// Package report renders favorites reports as PDF or DOCX documents.
package report

import (
	"fmt"
	"strconv"

	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
)

const dateLayout = "2006-01-02"

// Title returns the document title for a favorites kind, e.g. "Favorite Movies Report".
func Title(kind models.FavoriteKind) string {
	return "Favorite " + kind.Title() + "s Report"
}

// Render produces the document bytes in the requested format.
func Render(format models.ReportFormat, title string, entries []models.ReportEntry) ([]byte, error) {
	switch format {
	case models.ReportPDF:
		return RenderPDF(title, entries)
	case models.ReportDOCX:
		return RenderDOCX(title, entries)
	}
	return nil, apperrors.ErrInvalidReportFormat
}

// MovieEntries lists title, genre, release date and budget of each movie.
func MovieEntries(movies []models.Movie) []models.ReportEntry {
	entries := make([]models.ReportEntry, 0, len(movies))
	for _, m := range movies {
		entries = append(entries, models.ReportEntry{
			Heading: m.Title,
			Details: []models.ReportField{
				{Label: "Genre", Value: m.Genre},
				{Label: "Release Date", Value: m.CreationDate.Format(dateLayout)},
				{Label: "Budget", Value: fmt.Sprintf("$%d", m.Budget)},
			},
		})
	}
	return entries
}

// ActorEntries lists name, birthday, place of birth and height of each actor.
func ActorEntries(actors []models.Actor) []models.ReportEntry {
	entries := make([]models.ReportEntry, 0, len(actors))
	for _, a := range actors {
		entry := personEntry(a.Person)
		if a.Height != nil {
			entry.Details = append(entry.Details, models.ReportField{
				Label: "Height",
				Value: strconv.FormatFloat(*a.Height, 'f', -1, 64) + " cm",
			})
		}
		entries = append(entries, entry)
	}
	return entries
}

// DirectorEntries lists name, birthday and place of birth of each director.
func DirectorEntries(directors []models.Director) []models.ReportEntry {
	entries := make([]models.ReportEntry, 0, len(directors))
	for _, d := range directors {
		entries = append(entries, personEntry(d.Person))
	}
	return entries
}

func personEntry(p models.Person) models.ReportEntry {
	return models.ReportEntry{
		Heading: p.FullName(),
		Details: []models.ReportField{
			{Label: "Birthday", Value: p.Birthday.Format(dateLayout)},
			{Label: "Place of Birth", Value: p.PlaceOfBirth},
		},
	}
}

// line formats a field as "Label: Value".
func line(f models.ReportField) string {
	return f.Label + ": " + f.Value
}
