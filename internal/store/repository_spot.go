// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/models"
)

// spotRepository is the database/sql implementation of [SpotRepository].
// It works with both the sqlite3 and pgx drivers; the embedded [*DB]
// supplies the placeholder format and the retry classification.
type spotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSpotRepository constructs a [SpotRepository] backed by db.
func NewSpotRepository(db *DB, logger *logger.Logger) SpotRepository {
	return &spotRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *spotRepository) List(ctx context.Context) ([]models.Spot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSpotsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "spotRepository.List").Msg("failed to create query")
		return nil, err
	}

	var rows *sql.Rows
	err = r.withRetry(ctx, "spotRepository.List", func() error {
		var queryErr error
		rows, queryErr = r.DB.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "spotRepository.List").Msg("failed to execute query for listing spots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	spots := make([]models.Spot, 0, 32)
	for rows.Next() {
		spot, scanErr := scanSpot(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "spotRepository.List").Msg("failed to scan spot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		spots = append(spots, spot)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "spotRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return spots, nil
}

func (r *spotRepository) Get(ctx context.Context, id models.SpotID) (models.Spot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSpotQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "spotRepository.Get").Msg("failed to create query")
		return models.Spot{}, err
	}

	var spot models.Spot
	err = r.withRetry(ctx, "spotRepository.Get", func() error {
		var scanErr error
		spot, scanErr = scanSpot(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Spot{}, fmt.Errorf("get spot %s: %w", id, ErrSpotNotFound)
	}
	if err != nil {
		log.Err(err).Str("func", "spotRepository.Get").Str("spot_id", id.String()).Msg("failed to get spot")
		return models.Spot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return spot, nil
}

func (r *spotRepository) Create(ctx context.Context, spot models.Spot) (models.Spot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSpotQuery(r.builder, spot)
	if err != nil {
		log.Err(err).Str("func", "spotRepository.Create").Msg("failed to create query")
		return models.Spot{}, err
	}

	err = r.withRetry(ctx, "spotRepository.Create", func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "spotRepository.Create").Str("spot_id", spot.ID.String()).Msg("failed to insert spot")
		return models.Spot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return spot, nil
}

func (r *spotRepository) Update(ctx context.Context, spot models.Spot) (models.Spot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSpotQuery(r.builder, spot)
	if err != nil {
		log.Err(err).Str("func", "spotRepository.Update").Msg("failed to create query")
		return models.Spot{}, err
	}

	var affected int64
	err = r.withRetry(ctx, "spotRepository.Update", func() error {
		result, execErr := r.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "spotRepository.Update").Str("spot_id", spot.ID.String()).Msg("failed to update spot")
		return models.Spot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Spot{}, fmt.Errorf("update spot %s: %w", spot.ID, ErrSpotNotFound)
	}

	return r.Get(ctx, spot.ID)
}

func (r *spotRepository) Delete(ctx context.Context, id models.SpotID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSpotQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "spotRepository.Delete").Msg("failed to create query")
		return err
	}

	var affected int64
	err = r.withRetry(ctx, "spotRepository.Delete", func() error {
		result, execErr := r.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "spotRepository.Delete").Str("spot_id", id.String()).Msg("failed to delete spot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete spot %s: %w", id, ErrSpotNotFound)
	}

	return nil
}

// scanSpot reads one row in spotColumns order.
func scanSpot(row rowScanner) (models.Spot, error) {
	var (
		spot        models.Spot
		id          string
		parkingType sql.NullString
		links       sql.NullString
	)

	err := row.Scan(
		&id,
		&spot.Name,
		&spot.Address,
		&spot.SpotType,
		&spot.HasWifi,
		&spot.HasOutlets,
		&spot.HasIndoorSeating,
		&spot.HasOutdoorSeating,
		&spot.HasRestroom,
		&spot.AcceptsCreditCard,
		&parkingType,
		&links,
		&spot.Hours,
		&spot.PhoneNumber,
		&spot.ImageURL,
		&spot.CreatedAt,
		&spot.UpdatedAt,
	)
	if err != nil {
		return models.Spot{}, err
	}

	spot.ID = models.SpotID(id)
	spot.ParkingType = models.ParkingType(parkingType.String)
	spot.Links = links.String

	return spot, nil
}
