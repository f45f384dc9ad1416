package service

import (
	"context"
	"fmt"
	"time"

	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/metrics"
	"movie-catalog/internal/models"
	"movie-catalog/internal/report"
)

// ReportService builds downloadable favorites reports.
type ReportService struct {
	users UserServicer
}

// NewReportService creates a new ReportService.
func NewReportService(users UserServicer) *ReportService {
	return &ReportService{users: users}
}

// FavoritesReport renders the user's favorites of one kind. A user without
// favorites of that kind gets ErrNoFavorites.
func (s *ReportService) FavoritesReport(ctx context.Context, userID string, kind models.FavoriteKind, format models.ReportFormat) (*models.Report, error) {
	if !format.Valid() {
		return nil, apperrors.ErrInvalidReportFormat
	}

	entries, err := s.entries(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNoFavorites
	}

	start := time.Now()
	body, err := report.Render(format, report.Title(kind), entries)
	if err != nil {
		return nil, err
	}
	metrics.RecordReport(string(kind), string(format), time.Since(start))

	return &models.Report{
		Filename:    fmt.Sprintf("favorite-%s.%s", kind.Plural(), format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func (s *ReportService) entries(ctx context.Context, userID string, kind models.FavoriteKind) ([]models.ReportEntry, error) {
	switch kind {
	case models.FavoriteMovie:
		movies, err := s.users.FavoriteMovies(ctx, userID)
		if err != nil {
			return nil, err
		}
		return report.MovieEntries(movies), nil
	case models.FavoriteActor:
		actors, err := s.users.FavoriteActors(ctx, userID)
		if err != nil {
			return nil, err
		}
		return report.ActorEntries(actors), nil
	case models.FavoriteDirector:
		directors, err := s.users.FavoriteDirectors(ctx, userID)
		if err != nil {
			return nil, err
		}
		return report.DirectorEntries(directors), nil
	}
	return nil, apperrors.ErrInvalidFavoriteKind
}
