// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/study-spots/models"
	"github.com/go-resty/resty/v2"
)

// ResponseError describes a non-success response of the server.
type ResponseError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// ServerMessage is the "error" field of the JSON body, empty when the
	// body had none.
	ServerMessage string

	kind error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message())
}

// Unwrap returns the status sentinel, e.g. [ErrBadRequest].
func (e *ResponseError) Unwrap() error {
	return e.kind
}

// Message returns the text meant for the user: the server's own message,
// or the status text when the server gave none.
func (e *ResponseError) Message() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}
	if text := http.StatusText(e.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

// UserMessage extracts the text to alert the user with from any error
// returned by a [ServerAdapter].
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message()
	}
	if errors.Is(err, ErrServerUnavailable) {
		return ErrServerUnavailable.Error()
	}
	if errors.Is(err, ErrDecodeResponse) {
		return ErrDecodeResponse.Error()
	}

	return err.Error()
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &ResponseError{
		StatusCode:    resp.StatusCode(),
		ServerMessage: serverMessage(resp.Body()),
		kind:          statusKind(resp.StatusCode()),
	}
}

func statusKind(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessableEntity
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}

// serverMessage returns the "error" field of a JSON body, or "" for any
// other body.
func serverMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return strings.TrimSpace(errResp.Error)
}
