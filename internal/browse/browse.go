// Package browse derives the displayed subset of a fetched event catalog
// from two live refinement inputs: a free-text search term and a selected
// domain. The derivation is pure and recomputed from scratch on every input
// change; it never re-sorts, so the store's date-ascending order is kept.
package browse

import (
	"strings"

	"eventhub/internal/domain"
)

// DomainAll is the sentinel meaning "no domain constraint".
const DomainAll = "All"

// Filter returns the events matching the search term and selected domain,
// preserving the relative order of the input. selected equal to DomainAll
// (or empty) applies no domain constraint. A term that is empty after
// trimming applies no text constraint; otherwise an event matches when its
// name or description contains the term case-insensitively.
func Filter(events []*domain.Event, term, selected string) []*domain.Event {
	out := make([]*domain.Event, 0, len(events))

	byDomain := selected != "" && selected != DomainAll
	needle := strings.ToLower(strings.TrimSpace(term))

	for _, e := range events {
		if byDomain && string(e.Domain) != selected {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.Name), needle) &&
			!strings.Contains(strings.ToLower(e.Description), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Browser holds the fetched event set and the two refinement inputs, and
// recomputes the visible subset whenever any of them changes. It is the
// single owner of this state; callers read the derived view through
// Visible and Count.
type Browser struct {
	events  []*domain.Event
	term    string
	domain  string
	visible []*domain.Event
}

// NewBrowser returns a Browser with no events, an empty search term, and
// the DomainAll sentinel selected.
func NewBrowser() *Browser {
	return &Browser{domain: DomainAll, visible: []*domain.Event{}}
}

// SetEvents replaces the full event set, typically after a fetch.
func (b *Browser) SetEvents(events []*domain.Event) {
	b.events = events
	b.recompute()
}

// Add appends a newly created event to the set, matching the original
// behavior of appending the create response to the in-memory list.
func (b *Browser) Add(e *domain.Event) {
	b.events = append(b.events, e)
	b.recompute()
}

// SetSearch updates the free-text search term.
func (b *Browser) SetSearch(term string) {
	b.term = term
	b.recompute()
}

// SetDomain updates the selected domain. DomainAll or "" clears the filter.
func (b *Browser) SetDomain(selected string) {
	if selected == "" {
		selected = DomainAll
	}
	b.domain = selected
	b.recompute()
}

// Visible returns the currently displayed subset.
func (b *Browser) Visible() []*domain.Event {
	return b.visible
}

// Count returns the number of displayed events; "no results" messaging
// derives from this being zero.
func (b *Browser) Count() int {
	return len(b.visible)
}

func (b *Browser) recompute() {
	b.visible = Filter(b.events, b.term, b.domain)
}
