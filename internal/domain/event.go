package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Domain is the closed category set an Event belongs to.
type Domain string

const (
	DomainTech     Domain = "Tech"
	DomainNonTech  Domain = "Non-Tech"
	DomainCultural Domain = "Cultural"
	DomainSports   Domain = "Sports"
)

// Domains returns all valid domain values.
func Domains() []Domain {
	return []Domain{DomainTech, DomainNonTech, DomainCultural, DomainSports}
}

// ParseDomain returns the Domain matching s, or ErrInvalidInput when s is
// not a member of the closed set. Matching is exact, not case-folded.
func ParseDomain(s string) (Domain, error) {
	for _, d := range Domains() {
		if s == string(d) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown domain %q", ErrInvalidInput, s)
}

// Valid reports whether d is a member of the closed domain set.
func (d Domain) Valid() bool {
	_, err := ParseDomain(string(d))
	return err == nil
}

// Event represents a single listed event in the catalog.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Domain      Domain    `json:"domain"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewEvent returns a new Event with the given fields. ID and timestamps are
// set by the service and repository on create.
func NewEvent(name, description string, date time.Time, domain Domain) *Event {
	return &Event{
		Name:        name,
		Description: description,
		Date:        date,
		Domain:      domain,
	}
}

// ValidateForCreate checks the presence rules enforced before persistence:
// name, description, date, and domain must all be set, and domain must be a
// member of the closed set. Returns an ErrInvalidInput-wrapped error naming
// the failure, or nil.
func (e *Event) ValidateForCreate() error {
	var missing []string
	if strings.TrimSpace(e.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(e.Description) == "" {
		missing = append(missing, "description")
	}
	if e.Date.IsZero() {
		missing = append(missing, "date")
	}
	if e.Domain == "" {
		missing = append(missing, "domain")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	if !e.Domain.Valid() {
		return fmt.Errorf("%w: unknown domain %q", ErrInvalidInput, e.Domain)
	}
	return nil
}

// EventFilter narrows a catalog list query. A nil Domain means no filter.
// The domain filter is strict equality on one field, never a substring match.
type EventFilter struct {
	Domain *Domain
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns events matching the filter ordered by date ascending,
	// ties broken by insertion order.
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
}

// EventService defines the catalog operations exposed to delivery layers.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
}
