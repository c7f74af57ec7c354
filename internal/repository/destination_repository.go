package repository

import (
	"context"
	"database/sql"

	"jtaclogs/internal/models"
)

type DestinationRepository interface {
	Create(ctx context.Context, destination *models.Destination) error
	GetByID(ctx context.Context, id string) (*models.Destination, error)
	Update(ctx context.Context, id string, req *models.UpdateDestinationRequest) error
	Delete(ctx context.Context, id string, ownerID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Destination, error)
}

type destinationRepository struct {
	db *sql.DB
}

func NewDestinationRepository(db *sql.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

// Create follows the same dual-write transaction as favorites: item row plus
// owner membership row, all or nothing.
func (r *destinationRepository) Create(ctx context.Context, destination *models.Destination) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertItem := `
		INSERT INTO destinations (id, title, description, address, lat, lng, image, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := tx.ExecContext(ctx, insertItem,
		destination.ID, destination.Title, destination.Description, destination.Address,
		destination.Location.Lat, destination.Location.Lng, destination.Image, destination.CreatorID,
	); err != nil {
		return err
	}

	insertLink := `INSERT INTO user_destinations (user_id, destination_id) VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, insertLink, destination.CreatorID, destination.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	query := `
		SELECT id, title, description, address, lat, lng, image, creator_id
		FROM destinations
		WHERE id = $1
	`

	var d models.Destination
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Title, &d.Description, &d.Address, &d.Location.Lat, &d.Location.Lng, &d.Image, &d.CreatorID,
	)
	if err == sql.ErrNoRows {
		return nil, ErrDestinationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *destinationRepository) Update(ctx context.Context, id string, req *models.UpdateDestinationRequest) error {
	query := `UPDATE destinations SET title = $1, description = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, req.Title, req.Description, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDestinationNotFound
	}
	return nil
}

func (r *destinationRepository) Delete(ctx context.Context, id string, ownerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	deleteLink := `DELETE FROM user_destinations WHERE user_id = $1 AND destination_id = $2`
	if _, err := tx.ExecContext(ctx, deleteLink, ownerID, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDestinationNotFound
	}

	return tx.Commit()
}

func (r *destinationRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Destination, error) {
	query := `
		SELECT d.id, d.title, d.description, d.address, d.lat, d.lng, d.image, d.creator_id
		FROM destinations d
		JOIN user_destinations ud ON ud.destination_id = d.id
		WHERE ud.user_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	destinations := []*models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.Address, &d.Location.Lat, &d.Location.Lng, &d.Image, &d.CreatorID); err != nil {
			return nil, err
		}
		destinations = append(destinations, &d)
	}

	return destinations, rows.Err()
}
