package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	venueQuery := `INSERT INTO venues (id, name, venue_type, address, latitude, longitude, created_at, updated_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, venueQuery, v.ID, v.Name, v.VenueType, v.Address,
		v.Latitude, v.Longitude, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}

	spaceQuery := `INSERT INTO spaces (id, venue_id, name, space_type, capacity)
				   VALUES ($1, $2, $3, $4, $5)`
	for _, sp := range v.Spaces {
		if _, err = tx.ExecContext(ctx, spaceQuery, sp.ID, v.ID, sp.Name, sp.SpaceType, sp.Capacity); err != nil {
			return fmt.Errorf("insert space: %w", err)
		}
	}

	hoursQuery := `INSERT INTO operating_hours (venue_id, weekday, open_time, close_time)
				   VALUES ($1, $2, $3, $4)`
	for day, w := range v.Hours {
		if _, err = tx.ExecContext(ctx, hoursQuery, v.ID, day, w.Open, w.Close); err != nil {
			return fmt.Errorf("insert operating hours: %w", err)
		}
	}

	return tx.Commit()
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT id, name, venue_type, address, latitude, longitude, created_at, updated_at
			  FROM venues
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	var v domain.Venue
	if err = row.Scan(
		&v.ID, &v.Name, &v.VenueType, &v.Address,
		&v.Latitude, &v.Longitude, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	if v.Spaces, err = r.listSpaces(ctx, id); err != nil {
		return nil, err
	}
	if v.Hours, err = r.loadHours(ctx, id); err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *VenueRepository) GetSpace(ctx context.Context, venueID, spaceID string) (*domain.Space, error) {
	query := `SELECT s.id, s.venue_id, s.name, s.space_type, s.capacity
			  FROM spaces s
			  WHERE s.venue_id=$1 AND s.id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, venueID, spaceID)
	if err != nil {
		return nil, fmt.Errorf("get space: %w", err)
	}

	var sp domain.Space
	if err = row.Scan(&sp.ID, &sp.VenueID, &sp.Name, &sp.SpaceType, &sp.Capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Distinguish an unknown venue from an unknown space.
			var exists bool
			checkRow, checkErr := r.db.QueryRowWithRetry(
				ctx, r.strategy,
				`SELECT EXISTS(SELECT 1 FROM venues WHERE id=$1)`, venueID,
			)
			if checkErr == nil {
				checkErr = checkRow.Scan(&exists)
			}
			if checkErr != nil {
				return nil, fmt.Errorf("check venue: %w", checkErr)
			}
			if !exists {
				return nil, domain.ErrVenueNotFound
			}
			return nil, domain.ErrSpaceNotFound
		}
		return nil, fmt.Errorf("scan space: %w", err)
	}

	return &sp, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT id, name, venue_type, address, latitude, longitude, created_at, updated_at
			  FROM venues
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		var v domain.Venue
		if err = rows.Scan(
			&v.ID, &v.Name, &v.VenueType, &v.Address,
			&v.Latitude, &v.Longitude, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *VenueRepository) listSpaces(ctx context.Context, venueID string) ([]domain.Space, error) {
	query := `SELECT id, venue_id, name, space_type, capacity
			  FROM spaces
			  WHERE venue_id=$1
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("list spaces: %w", err)
	}
	defer rows.Close()

	var res []domain.Space
	for rows.Next() {
		var sp domain.Space
		if err = rows.Scan(&sp.ID, &sp.VenueID, &sp.Name, &sp.SpaceType, &sp.Capacity); err != nil {
			return nil, fmt.Errorf("scan space: %w", err)
		}
		res = append(res, sp)
	}

	return res, rows.Err()
}

func (r *VenueRepository) loadHours(ctx context.Context, venueID string) (domain.OperatingHours, error) {
	query := `SELECT weekday, open_time, close_time
			  FROM operating_hours
			  WHERE venue_id=$1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("list operating hours: %w", err)
	}
	defer rows.Close()

	hours := domain.OperatingHours{}
	for rows.Next() {
		var day string
		var w domain.OperatingWindow
		if err = rows.Scan(&day, &w.Open, &w.Close); err != nil {
			return nil, fmt.Errorf("scan operating hours: %w", err)
		}
		hours[day] = w
	}

	return hours, rows.Err()
}
