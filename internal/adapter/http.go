// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/study-spots/internal/config"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/utils"
	"github.com/MKhiriev/study-spots/models"
	"github.com/go-resty/resty/v2"
)

const (
	dataPath    = "/data"
	dataIDPath  = "/data/{id}"
	versionPath = "/api/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// List implements [ServerAdapter]. It GETs /data and decodes the JSON array.
// A null body decodes to an empty list. Elements are decoded one by one, so a
// record with badly typed fields never fails the whole list.
func (h *httpServerAdapter) List(ctx context.Context) ([]models.Spot, error) {
	resp, err := h.request(ctx).Get(dataPath)
	if err != nil {
		return nil, h.transportError("httpServerAdapter.List", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}

	spots, err := h.decodeSpots(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}

	return spots, nil
}

// Create implements [ServerAdapter]. It POSTs spot to /data. The id is never
// sent, the server assigns it.
func (h *httpServerAdapter) Create(ctx context.Context, spot models.Spot) (models.Spot, error) {
	spot.ID = ""

	resp, err := h.request(ctx).
		SetBody(spot).
		Post(dataPath)
	if err != nil {
		return models.Spot{}, h.transportError("httpServerAdapter.Create", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Spot{}, fmt.Errorf("create spot: %w", err)
	}

	var created models.Spot
	if err = decode(resp, &created); err != nil {
		return models.Spot{}, fmt.Errorf("create spot: %w", err)
	}

	return created, nil
}

// Update implements [ServerAdapter]. It PUTs spot to /data/{id}.
func (h *httpServerAdapter) Update(ctx context.Context, spot models.Spot) (models.Spot, error) {
	if spot.IsNew() {
		return models.Spot{}, fmt.Errorf("update spot: %w", ErrMissingID)
	}

	resp, err := h.request(ctx).
		SetPathParam("id", spot.ID.String()).
		SetBody(spot).
		Put(dataIDPath)
	if err != nil {
		return models.Spot{}, h.transportError("httpServerAdapter.Update", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Spot{}, fmt.Errorf("update spot %s: %w", spot.ID, err)
	}

	var updated models.Spot
	if err = decode(resp, &updated); err != nil {
		return models.Spot{}, fmt.Errorf("update spot %s: %w", spot.ID, err)
	}

	return updated, nil
}

// Delete implements [ServerAdapter]. It sends DELETE /data/{id}.
func (h *httpServerAdapter) Delete(ctx context.Context, id models.SpotID) (models.DeleteResponse, error) {
	if id == "" {
		return models.DeleteResponse{}, fmt.Errorf("delete spot: %w", ErrMissingID)
	}

	resp, err := h.request(ctx).
		SetPathParam("id", id.String()).
		Delete(dataIDPath)
	if err != nil {
		return models.DeleteResponse{}, h.transportError("httpServerAdapter.Delete", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteResponse{}, fmt.Errorf("delete spot %s: %w", id, err)
	}

	var deleted models.DeleteResponse
	if len(resp.Body()) > 0 {
		if err = decode(resp, &deleted); err != nil {
			return models.DeleteResponse{}, fmt.Errorf("delete spot %s: %w", id, err)
		}
	}

	return deleted, nil
}

// Version implements [ServerAdapter]. It GETs /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	resp, err := h.request(ctx).Get(versionPath)
	if err != nil {
		return models.VersionResponse{}, h.transportError("httpServerAdapter.Version", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, fmt.Errorf("server version: %w", err)
	}

	var version models.VersionResponse
	if err = decode(resp, &version); err != nil {
		return models.VersionResponse{}, fmt.Errorf("server version: %w", err)
	}

	return version, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) transportError(funcName string, err error) error {
	h.logger.Err(err).Str("func", funcName).Msg("request to server failed")
	return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}
