package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jtaclogs/internal/interfaces"
	"jtaclogs/internal/logger"
	"jtaclogs/internal/models"
	"jtaclogs/internal/repository"
)

// DestinationsService manages the user's travel destinations, geocoding the
// address on creation. Collection writes follow the same atomic dual-write
// pattern as favorites.
type DestinationsService struct {
	destinations repository.DestinationRepository
	users        repository.UserRepository
	geocoder     Geocoder
}

func NewDestinationsService(destinations repository.DestinationRepository, users repository.UserRepository, geocoder Geocoder) *DestinationsService {
	return &DestinationsService{destinations: destinations, users: users, geocoder: geocoder}
}

func (s *DestinationsService) Create(ctx context.Context, ownerID string, req *models.CreateDestinationRequest) (*models.Destination, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		logger.Log.Error("owner lookup failed", zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, interfaces.NotFound("Could not find user")
	}

	location, err := s.geocoder.Geocode(ctx, req.Address)
	if err != nil {
		logger.Log.Warn("geocoding failed", zap.String("address", req.Address), zap.Error(err))
		return nil, interfaces.Validation("Could not resolve coordinates for the provided address")
	}

	destination := &models.Destination{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Location:    location,
		Image:       req.Image,
		CreatorID:   ownerID,
	}

	if err := s.destinations.Create(ctx, destination); err != nil {
		logger.Log.Error("destination insert failed", zap.String("user_id", ownerID), zap.Error(err))
		return nil, err
	}

	return destination, nil
}

func (s *DestinationsService) Get(ctx context.Context, id string) (*models.Destination, error) {
	destination, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDestinationNotFound) {
			return nil, interfaces.NotFound("Could not find a destination for the provided id")
		}
		logger.Log.Error("destination lookup failed", zap.Error(err))
		return nil, err
	}
	return destination, nil
}

func (s *DestinationsService) Update(ctx context.Context, id, callerID string, req *models.UpdateDestinationRequest) (*models.Destination, error) {
	destination, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDestinationNotFound) {
			return nil, interfaces.NotFound("Could not find a destination for that id")
		}
		logger.Log.Error("destination lookup failed", zap.Error(err))
		return nil, err
	}

	if destination.CreatorID != callerID {
		return nil, interfaces.Forbidden("You are not allowed to edit this destination")
	}

	if err := s.destinations.Update(ctx, id, req); err != nil {
		logger.Log.Error("destination update failed", zap.String("destination_id", id), zap.Error(err))
		return nil, err
	}

	destination.Title = req.Title
	destination.Description = req.Description
	return destination, nil
}

func (s *DestinationsService) Remove(ctx context.Context, id, callerID string) (*models.Destination, error) {
	destination, err := s.destinations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDestinationNotFound) {
			return nil, interfaces.NotFound("Could not find destination for this id")
		}
		logger.Log.Error("destination lookup failed", zap.Error(err))
		return nil, err
	}

	if destination.CreatorID != callerID {
		return nil, interfaces.Forbidden("You are not allowed to delete this item")
	}

	if err := s.destinations.Delete(ctx, id, destination.CreatorID); err != nil {
		// A concurrent remove can win between the lookup and the delete.
		if errors.Is(err, repository.ErrDestinationNotFound) {
			return nil, interfaces.NotFound("Could not find destination for this id")
		}
		logger.Log.Error("destination delete failed", zap.String("destination_id", id), zap.Error(err))
		return nil, err
	}

	return destination, nil
}

func (s *DestinationsService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Destination, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		logger.Log.Error("owner lookup failed", zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, interfaces.NotFound("Could not find user")
	}

	destinations, err := s.destinations.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Error("destinations load failed", zap.String("user_id", ownerID), zap.Error(err))
		return nil, err
	}
	return destinations, nil
}
