package service

import (
	"context"

	"github.com/fakhrymubarak/sunny-weather/internal/model"
	"github.com/fakhrymubarak/sunny-weather/internal/repository"
)

type PlaceServiceInterface interface {
	SearchPlaces(ctx context.Context, query string) Result[[]model.Place]
	SavePlace(ctx context.Context, place model.Place) error
	GetSavedPlace(ctx context.Context) (*model.Place, error)
	IsPlaceSaved(ctx context.Context) (bool, error)
}

type PlaceService struct {
	Repo repository.Repository
}

func NewPlaceService(repo repository.Repository) *PlaceService {
	return &PlaceService{Repo: repo}
}

// SearchPlaces searches by free text. An empty query clears the list without
// touching the network.
func (s *PlaceService) SearchPlaces(ctx context.Context, query string) Result[[]model.Place] {
	if query == "" {
		return Success([]model.Place{})
	}
	return fire("search places", func() ([]model.Place, error) {
		return s.Repo.SearchPlaces(ctx, query)
	})
}

func (s *PlaceService) SavePlace(ctx context.Context, place model.Place) error {
	return s.Repo.SavePlace(ctx, place)
}

func (s *PlaceService) GetSavedPlace(ctx context.Context) (*model.Place, error) {
	return s.Repo.GetSavedPlace(ctx)
}

func (s *PlaceService) IsPlaceSaved(ctx context.Context) (bool, error) {
	return s.Repo.IsPlaceSaved(ctx)
}
