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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, venue_id, space_id, date, start_time, end_time,
									user_id, event_name, notes, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.VenueID, b.SpaceID, b.Date, b.StartTime, b.EndTime,
		b.UserID, b.EventName, b.Notes, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, venue_id, space_id, date, start_time, end_time,
					 user_id, event_name, notes, status, reminded_at, created_at, updated_at
			  FROM bookings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.VenueID, &b.SpaceID, &b.Date, &b.StartTime, &b.EndTime,
		&b.UserID, &b.EventName, &b.Notes, &b.Status, &b.RemindedAt, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ExistsAt(ctx context.Context, venueID, spaceID, date, startTime string) (bool, error) {
	query := `SELECT EXISTS(
				SELECT 1 FROM bookings
				WHERE venue_id=$1 AND space_id=$2 AND date=$3 AND start_time=$4
				  AND status = ANY($5)
			  )`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		venueID, spaceID, date, startTime, pq.Array(domain.ActiveStatuses),
	)
	if err != nil {
		return false, fmt.Errorf("check booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}

	return exists, nil
}

func (r *BookingRepository) ListInRange(ctx context.Context, venueID, spaceID string, dates []string) ([]*domain.Booking, error) {
	query := `SELECT b.id, b.venue_id, b.space_id, b.date, b.start_time, b.end_time,
					 b.user_id, u.username, b.event_name, b.notes, b.status,
					 b.reminded_at, b.created_at, b.updated_at
			  FROM bookings b
			  JOIN users u ON u.id = b.user_id
			  WHERE b.venue_id=$1 AND b.space_id=$2 AND b.date = ANY($3)
			    AND b.status = ANY($4)
			  ORDER BY b.date, b.start_time`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		venueID, spaceID, pq.Array(dates), pq.Array(domain.ActiveStatuses),
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.VenueID, &b.SpaceID, &b.Date, &b.StartTime, &b.EndTime,
			&b.UserID, &b.Username, &b.EventName, &b.Notes, &b.Status,
			&b.RemindedAt, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT id, venue_id, space_id, date, start_time, end_time,
					 user_id, event_name, notes, status, reminded_at, created_at, updated_at
			  FROM bookings
			  WHERE user_id=$1
			  ORDER BY date DESC, start_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.VenueID, &b.SpaceID, &b.Date, &b.StartTime, &b.EndTime,
			&b.UserID, &b.EventName, &b.Notes, &b.Status, &b.RemindedAt, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) Confirm(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET status=$2, updated_at=now()
			  WHERE id=$1 AND status=$3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusConfirmed, domain.BookingStatusPending,
	)
	if err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotPending
	}

	return nil
}

// Cancel is a soft transition; the record stays for audit and the partial
// unique index stops covering it, freeing the slot key.
func (r *BookingRepository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET status=$2, updated_at=now()
			  WHERE id=$1 AND status <> $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) ListDueReminders(ctx context.Context, window time.Duration) ([]*domain.Booking, error) {
	query := `SELECT id, venue_id, space_id, date, start_time, end_time,
					 user_id, event_name, notes, status, reminded_at, created_at, updated_at
			  FROM bookings
			  WHERE status = ANY($1)
			    AND reminded_at IS NULL
			    AND (date || ' ' || start_time)::timestamp
					BETWEEN now() AND now() + make_interval(secs => $2)
			  ORDER BY date, start_time`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pq.Array(domain.ActiveStatuses), window.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.VenueID, &b.SpaceID, &b.Date, &b.StartTime, &b.EndTime,
			&b.UserID, &b.EventName, &b.Notes, &b.Status, &b.RemindedAt, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) MarkReminded(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE bookings SET reminded_at=$2, updated_at=now() WHERE id=$1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at); err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}

	return nil
}
