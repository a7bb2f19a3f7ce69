// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/study-spots/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildListSpotsQuery(t *testing.T) {
	query, args, err := buildListSpotsQuery(questionBuilder)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT "+strings.Join(spotColumns, ", ")+" FROM spots ORDER BY created_at ASC, id ASC",
		query,
	)
}

func Test_buildGetSpotQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{"sqlite", questionBuilder, "WHERE id = ?"},
		{"postgres", dollarBuilder, "WHERE id = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetSpotQuery(tt.builder, "abc")
			require.NoError(t, err)

			assert.True(t, strings.HasSuffix(query, tt.want), query)
			assert.Equal(t, []any{"abc"}, args)
		})
	}
}

func Test_buildInsertSpotQuery_ArgsFollowColumns(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	spot := models.Spot{
		ID:          "id-1",
		Name:        "Cafe",
		Address:     "Main St",
		SpotType:    "Cafe",
		HasWifi:     models.Bool(true),
		ParkingType: models.ParkingPaid,
		Links:       `["https://a.com"]`,
		Hours:       models.String("9-5"),
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	query, args, err := buildInsertSpotQuery(dollarBuilder, spot)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO spots ("+strings.Join(spotColumns, ",")+") VALUES ($1,"), query)
	assert.Contains(t, query, "$17)")
	require.Len(t, args, len(spotColumns))

	assert.Equal(t, "id-1", args[0])
	assert.Equal(t, "Cafe", args[1])
	assert.Equal(t, models.Bool(true), args[4])
	assert.Nil(t, args[5])
	assert.Equal(t, sql.NullString{String: "paid", Valid: true}, args[10])
	assert.Equal(t, sql.NullString{String: `["https://a.com"]`, Valid: true}, args[11])
	assert.Equal(t, &now, args[15])
}

func Test_buildInsertSpotQuery_UnsetParkingIsNull(t *testing.T) {
	_, args, err := buildInsertSpotQuery(questionBuilder, models.Spot{ID: "x"})
	require.NoError(t, err)

	assert.Equal(t, sql.NullString{}, args[10])
	assert.Equal(t, sql.NullString{}, args[11])
}

func Test_buildUpdateSpotQuery_SkipsImmutableColumns(t *testing.T) {
	query, args, err := buildUpdateSpotQuery(questionBuilder, models.Spot{ID: "id-9", Name: "N"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "update spots set "))
	assert.True(t, strings.HasSuffix(q, "where id = ?"))
	assert.NotContains(t, q, "created_at")
	assert.NotContains(t, q, "set id")
	assert.Contains(t, q, "updated_at = ?")

	// 15 updatable columns plus the id in WHERE
	require.Len(t, args, 16)
	assert.Equal(t, "id-9", args[len(args)-1])
}

func Test_buildDeleteSpotQuery(t *testing.T) {
	query, args, err := buildDeleteSpotQuery(dollarBuilder, "gone")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM spots WHERE id = $1", query)
	assert.Equal(t, []any{"gone"}, args)
}
