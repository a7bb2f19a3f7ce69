// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MKhiriev/study-spots/models"
)

// decodeSpots decodes a JSON array of spots. Only a body that is not an
// array is an error. A record whose fields don't match their types keeps
// the fields that do; an element that is not an object becomes a
// [models.Spot] with Malformed set.
func (h *httpServerAdapter) decodeSpots(body []byte) ([]models.Spot, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	spots := make([]models.Spot, 0, len(elements))
	for i, raw := range elements {
		var spot models.Spot
		if err := json.Unmarshal(raw, &spot); err == nil && !isNull(raw) {
			spots = append(spots, spot)
			continue
		}

		spot, dropped := salvageSpot(raw)
		h.logger.Warn().
			Str("func", "httpServerAdapter.decodeSpots").
			Int("index", i).
			Str("id", spot.ID.String()).
			Strs("dropped_fields", dropped).
			Bool("malformed", spot.Malformed).
			Msg("partially decoded spot")
		spots = append(spots, spot)
	}

	return spots, nil
}

// salvageSpot decodes raw field by field and returns the spot built from the
// fields that decoded, with the names of the fields that did not.
func salvageSpot(raw json.RawMessage) (models.Spot, []string) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return models.Spot{Malformed: true}, nil
	}

	var dropped []string
	for name, value := range fields {
		single, err := json.Marshal(map[string]json.RawMessage{name: value})
		if err == nil {
			err = json.Unmarshal(single, &models.Spot{})
		}
		if err != nil {
			dropped = append(dropped, name)
			delete(fields, name)
		}
	}
	sort.Strings(dropped)

	kept, err := json.Marshal(fields)
	if err != nil {
		return models.Spot{Malformed: true}, dropped
	}

	var spot models.Spot
	if err = json.Unmarshal(kept, &spot); err != nil {
		return models.Spot{Malformed: true}, dropped
	}
	return spot, dropped
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
