package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.TimeSlot) error {
	query := `INSERT INTO time_slots (id, venue_id, space_id, date, start_time, end_time,
									  price, is_custom, is_active, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.VenueID, s.SpaceID, s.Date, s.StartTime, s.EndTime,
		s.Price, s.IsCustom, s.IsActive, nullable(s.CreatedBy), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotOverlap
		}
		return fmt.Errorf("insert slot: %w", err)
	}

	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	query := `SELECT id, venue_id, space_id, date, start_time, end_time,
					 price, is_custom, is_active, COALESCE(created_by, ''), created_at, updated_at
			  FROM time_slots
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	var s domain.TimeSlot
	if err = row.Scan(
		&s.ID, &s.VenueID, &s.SpaceID, &s.Date, &s.StartTime, &s.EndTime,
		&s.Price, &s.IsCustom, &s.IsActive, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

func (r *SlotRepository) Update(ctx context.Context, s *domain.TimeSlot) error {
	query := `UPDATE time_slots
			  SET date=$2, start_time=$3, end_time=$4, price=$5, updated_at=$6
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Date, s.StartTime, s.EndTime, s.Price, s.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotOverlap
		}
		return fmt.Errorf("update slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}

	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM time_slots WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}

	return nil
}

func (r *SlotRepository) ListActiveCustom(ctx context.Context, venueID, spaceID string, dates []string) ([]*domain.TimeSlot, error) {
	query := `SELECT id, venue_id, space_id, date, start_time, end_time,
					 price, is_custom, is_active, COALESCE(created_by, ''), created_at, updated_at
			  FROM time_slots
			  WHERE venue_id=$1 AND space_id=$2 AND date = ANY($3)
			    AND is_custom AND is_active
			  ORDER BY date, start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID, spaceID, pq.Array(dates))
	if err != nil {
		return nil, fmt.Errorf("list custom slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.TimeSlot
	for rows.Next() {
		var s domain.TimeSlot
		if err = rows.Scan(
			&s.ID, &s.VenueID, &s.SpaceID, &s.Date, &s.StartTime, &s.EndTime,
			&s.Price, &s.IsCustom, &s.IsActive, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
