// Package client provides a transport-agnostic interface for the event
// catalog API and an HTTP/JSON implementation that talks to the server.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"eventhub/internal/domain"
)

// CatalogClient is the interface consumers use to reach the catalog API.
// It is implemented by HTTPClient and can be backed by any transport.
type CatalogClient interface {
	// ListEvents fetches all events, or only those of the given domain
	// when d is non-nil. Results arrive date-ascending.
	ListEvents(ctx context.Context, d *domain.Domain) ([]*domain.Event, error)
	// GetEvent fetches a single event by id.
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	// CreateEvent submits a candidate record and returns the stored
	// record including server-assigned id and timestamps.
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*domain.Event, error)
}

// CreateEventRequest is the payload for CreateEvent. Date is an ISO-8601
// string, either a full timestamp or YYYY-MM-DD.
type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Domain      string `json:"domain"`
}

// APIError is a non-2xx response from the server, carrying the HTTP status
// and the server's message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
