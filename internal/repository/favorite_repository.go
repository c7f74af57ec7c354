package repository

import (
	"context"
	"database/sql"

	"jtaclogs/internal/models"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	GetByID(ctx context.Context, id string) (*models.Favorite, error)
	Delete(ctx context.Context, id string, ownerID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Favorite, error)
}

type favoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create writes the item row and the owner's membership row in one
// transaction; the collection must never be observed half-linked.
func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertItem := `
		INSERT INTO favorites (id, nfid, title, synopsis, year, imdb_rating, img, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := tx.ExecContext(ctx, insertItem,
		favorite.ID, favorite.NFID, favorite.Title, favorite.Synopsis,
		favorite.Year, favorite.IMDBRating, favorite.Image, favorite.CreatorID,
	); err != nil {
		return err
	}

	insertLink := `INSERT INTO user_favorites (user_id, favorite_id) VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, insertLink, favorite.CreatorID, favorite.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *favoriteRepository) GetByID(ctx context.Context, id string) (*models.Favorite, error) {
	query := `
		SELECT id, nfid, title, synopsis, year, imdb_rating, img, creator_id
		FROM favorites
		WHERE id = $1
	`

	var f models.Favorite
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.NFID, &f.Title, &f.Synopsis, &f.Year, &f.IMDBRating, &f.Image, &f.CreatorID,
	)
	if err == sql.ErrNoRows {
		return nil, ErrFavoriteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id string, ownerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	deleteLink := `DELETE FROM user_favorites WHERE user_id = $1 AND favorite_id = $2`
	if _, err := tx.ExecContext(ctx, deleteLink, ownerID, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFavoriteNotFound
	}

	return tx.Commit()
}

func (r *favoriteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Favorite, error) {
	query := `
		SELECT f.id, f.nfid, f.title, f.synopsis, f.year, f.imdb_rating, f.img, f.creator_id
		FROM favorites f
		JOIN user_favorites uf ON uf.favorite_id = f.id
		WHERE uf.user_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []*models.Favorite{}
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.NFID, &f.Title, &f.Synopsis, &f.Year, &f.IMDBRating, &f.Image, &f.CreatorID); err != nil {
			return nil, err
		}
		favorites = append(favorites, &f)
	}

	return favorites, rows.Err()
}
