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

// FavoritesService keeps the user's saved-titles collection consistent with
// the item rows: add and remove always touch both sides atomically.
type FavoritesService struct {
	favorites repository.FavoriteRepository
	users     repository.UserRepository
}

func NewFavoritesService(favorites repository.FavoriteRepository, users repository.UserRepository) *FavoritesService {
	return &FavoritesService{favorites: favorites, users: users}
}

func (s *FavoritesService) Add(ctx context.Context, ownerID string, req *models.AddFavoriteRequest) (*models.Favorite, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		logger.Log.Error("owner lookup failed", zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, interfaces.NotFound("Could not find user")
	}

	favorite := &models.Favorite{
		ID:         uuid.NewString(),
		NFID:       req.NFID,
		Title:      req.Title,
		Synopsis:   req.Synopsis,
		Year:       req.Year,
		IMDBRating: req.IMDBRating,
		Image:      req.Image,
		CreatorID:  ownerID,
	}

	if err := s.favorites.Create(ctx, favorite); err != nil {
		logger.Log.Error("favorite insert failed", zap.String("user_id", ownerID), zap.Error(err))
		return nil, err
	}

	return favorite, nil
}

func (s *FavoritesService) Remove(ctx context.Context, favoriteID, callerID string) (*models.RemovedFavorite, error) {
	favorite, err := s.favorites.GetByID(ctx, favoriteID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil, interfaces.NotFound("Could not find favorite for this id")
		}
		logger.Log.Error("favorite lookup failed", zap.Error(err))
		return nil, err
	}

	if favorite.CreatorID != callerID {
		return nil, interfaces.Forbidden("You are not allowed to delete this item")
	}

	if err := s.favorites.Delete(ctx, favoriteID, favorite.CreatorID); err != nil {
		// A concurrent remove can win between the lookup and the delete.
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil, interfaces.NotFound("Could not find favorite for this id")
		}
		logger.Log.Error("favorite delete failed", zap.String("favorite_id", favoriteID), zap.Error(err))
		return nil, err
	}

	return &models.RemovedFavorite{ID: favorite.ID, NFID: favorite.NFID}, nil
}

// ListByOwner returns the owner's favorites; an existing owner with nothing
// saved gets an empty list, not an error.
func (s *FavoritesService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Favorite, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		logger.Log.Error("owner lookup failed", zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, interfaces.NotFound("Could not find user")
	}

	favorites, err := s.favorites.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Error("favorites load failed", zap.String("user_id", ownerID), zap.Error(err))
		return nil, err
	}
	return favorites, nil
}
