package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures the incoming request details and returns a canned response.
type testHandler struct {
	// captured from the request
	method      string
	path        string
	query       string
	body        string
	contentType string

	// canned response
	statusCode   int
	responseBody string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.query = r.URL.RawQuery
	h.contentType = r.Header.Get("Content-Type")
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		h.body = string(data)
	}

	w.Header().Set("Content-Type", "application/json")
	if h.statusCode != 0 {
		w.WriteHeader(h.statusCode)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if h.responseBody != "" {
		_, _ = w.Write([]byte(h.responseBody))
	}
}

// newTestClient creates an HTTPClient pointed at a test server with the given handler.
func newTestClient(h http.Handler) (*HTTPClient, *httptest.Server) {
	srv := httptest.NewServer(h)
	c := NewHTTPClient(srv.URL)
	return c, srv
}

func TestHTTPClient_ListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("all events", func(t *testing.T) {
		h := &testHandler{
			responseBody: `[
				{"id":"ev-1","name":"Tech Conference 2025","description":"AI and cloud","date":"2025-03-15T00:00:00Z","domain":"Tech","createdAt":"2025-01-01T00:00:00Z","updatedAt":"2025-01-01T00:00:00Z"},
				{"id":"ev-2","name":"Cultural Festival","description":"Music and dance","date":"2025-04-20T00:00:00Z","domain":"Cultural","createdAt":"2025-01-02T00:00:00Z","updatedAt":"2025-01-02T00:00:00Z"}
			]`,
		}
		c, srv := newTestClient(h)
		defer srv.Close()

		events, err := c.ListEvents(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, h.method)
		assert.Equal(t, "/events", h.path)
		assert.Empty(t, h.query)
		require.Len(t, events, 2)
		assert.Equal(t, "ev-1", events[0].ID)
		assert.Equal(t, domain.DomainCultural, events[1].Domain)
	})

	t.Run("domain filter in query", func(t *testing.T) {
		h := &testHandler{responseBody: `[]`}
		c, srv := newTestClient(h)
		defer srv.Close()

		d := domain.DomainNonTech
		events, err := c.ListEvents(ctx, &d)
		require.NoError(t, err)
		assert.Equal(t, "domain=Non-Tech", h.query)
		require.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("server fault surfaces message", func(t *testing.T) {
		h := &testHandler{
			statusCode:   http.StatusInternalServerError,
			responseBody: `{"message":"Error fetching events","error":"connection refused"}`,
		}
		c, srv := newTestClient(h)
		defer srv.Close()

		_, err := c.ListEvents(ctx, nil)
		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "Error fetching events", apiErr.Message)
	})
}

func TestHTTPClient_GetEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		h := &testHandler{
			responseBody: `{"id":"ev-1","name":"Conf","description":"Desc","date":"2025-03-15T00:00:00Z","domain":"Tech","createdAt":"2025-01-01T00:00:00Z","updatedAt":"2025-01-01T00:00:00Z"}`,
		}
		c, srv := newTestClient(h)
		defer srv.Close()

		event, err := c.GetEvent(ctx, "ev-1")
		require.NoError(t, err)
		assert.Equal(t, "/events/ev-1", h.path)
		assert.Equal(t, "Conf", event.Name)
	})

	t.Run("not found detectable", func(t *testing.T) {
		h := &testHandler{
			statusCode:   http.StatusNotFound,
			responseBody: `{"message":"Event not found"}`,
		}
		c, srv := newTestClient(h)
		defer srv.Close()

		_, err := c.GetEvent(ctx, "missing")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestHTTPClient_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		h := &testHandler{
			statusCode:   http.StatusCreated,
			responseBody: `{"id":"ev-new","name":"X","description":"Y","date":"2025-01-01T00:00:00Z","domain":"Tech","createdAt":"2025-01-01T00:00:00Z","updatedAt":"2025-01-01T00:00:00Z"}`,
		}
		c, srv := newTestClient(h)
		defer srv.Close()

		event, err := c.CreateEvent(ctx, &CreateEventRequest{
			Name:        "X",
			Description: "Y",
			Date:        "2025-01-01",
			Domain:      "Tech",
		})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, h.method)
		assert.Equal(t, "application/json", h.contentType)
		assert.JSONEq(t, `{"name":"X","description":"Y","date":"2025-01-01","domain":"Tech"}`, h.body)
		assert.Equal(t, "ev-new", event.ID)
	})

	t.Run("validation failure surfaces message", func(t *testing.T) {
		h := &testHandler{
			statusCode:   http.StatusBadRequest,
			responseBody: `{"message":"All fields are required"}`,
		}
		c, srv := newTestClient(h)
		defer srv.Close()

		_, err := c.CreateEvent(ctx, &CreateEventRequest{Name: "X"})
		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "All fields are required", apiErr.Message)
		assert.False(t, IsNotFound(err))
	})
}
