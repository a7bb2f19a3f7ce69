// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/study-spots/models"
)

const spotsTable = "spots"

// spotColumns is the column order of every SELECT and INSERT; scanSpot
// relies on it.
var spotColumns = []string{
	"id",
	"name",
	"address",
	"spot_type",
	"has_wifi",
	"has_outlets",
	"has_indoor_seating",
	"has_outdoor_seating",
	"has_restroom",
	"accepts_credit_card",
	"parking_type",
	"links",
	"hours",
	"phone_number",
	"image_url",
	"created_at",
	"updated_at",
}

func buildListSpotsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(spotColumns...).
		From(spotsTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetSpotQuery(b sq.StatementBuilderType, id models.SpotID) (string, []any, error) {
	query, args, err := b.Select(spotColumns...).
		From(spotsTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertSpotQuery(b sq.StatementBuilderType, spot models.Spot) (string, []any, error) {
	query, args, err := b.Insert(spotsTable).
		Columns(spotColumns...).
		Values(
			spot.ID.String(),
			spot.Name,
			spot.Address,
			spot.SpotType,
			spot.HasWifi,
			spot.HasOutlets,
			spot.HasIndoorSeating,
			spot.HasOutdoorSeating,
			spot.HasRestroom,
			spot.AcceptsCreditCard,
			nullString(string(spot.ParkingType)),
			nullString(spot.Links),
			spot.Hours,
			spot.PhoneNumber,
			spot.ImageURL,
			spot.CreatedAt,
			spot.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateSpotQuery sets every column but id and created_at. Columns are
// emitted in alphabetical order.
func buildUpdateSpotQuery(b sq.StatementBuilderType, spot models.Spot) (string, []any, error) {
	query, args, err := b.Update(spotsTable).
		SetMap(map[string]any{
			"name":                spot.Name,
			"address":             spot.Address,
			"spot_type":           spot.SpotType,
			"has_wifi":            spot.HasWifi,
			"has_outlets":         spot.HasOutlets,
			"has_indoor_seating":  spot.HasIndoorSeating,
			"has_outdoor_seating": spot.HasOutdoorSeating,
			"has_restroom":        spot.HasRestroom,
			"accepts_credit_card": spot.AcceptsCreditCard,
			"parking_type":        nullString(string(spot.ParkingType)),
			"links":               nullString(spot.Links),
			"hours":               spot.Hours,
			"phone_number":        spot.PhoneNumber,
			"image_url":           spot.ImageURL,
			"updated_at":          spot.UpdatedAt,
		}).
		Where(sq.Eq{"id": spot.ID.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSpotQuery(b sq.StatementBuilderType, id models.SpotID) (string, []any, error) {
	query, args, err := b.Delete(spotsTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
