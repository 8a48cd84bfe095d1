// Package testutil provides testing utilities for the Horizon client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// MockResponse defines a canned response for a mock Horizon endpoint.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockHorizon is a configurable mock ledger query server. Paths registered
// with SetDataset serve cursor-paginated pages honoring the cursor, order and
// limit query parameters; SetHandler and SetResponse override individual
// paths for error and edge-case scenarios.
type MockHorizon struct {
	server *httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	datasets map[string][]json.RawMessage
	failures map[string]failure
	counts   map[string]int

	// Tracking
	RequestCount int
	LastQuery    url.Values
}

type failure struct {
	fetchNumber int
	statusCode  int
}

// NewMockHorizon creates a new mock server.
func NewMockHorizon() *MockHorizon {
	mock := &MockHorizon{
		handlers: make(map[string]http.HandlerFunc),
		datasets: make(map[string][]json.RawMessage),
		failures: make(map[string]failure),
		counts:   make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.counts[r.URL.Path]++
		mock.LastQuery = r.URL.Query()
		count := mock.counts[r.URL.Path]
		handler, hasHandler := mock.handlers[r.URL.Path]
		records, hasDataset := mock.datasets[r.URL.Path]
		fail, hasFailure := mock.failures[r.URL.Path]
		mock.mu.Unlock()

		if hasFailure && count == fail.fetchNumber {
			http.Error(w, "injected failure", fail.statusCode)
			return
		}
		if hasHandler {
			handler(w, r)
			return
		}
		if hasDataset {
			mock.servePage(w, r, records)
			return
		}
		http.NotFound(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockHorizon) URL() string {
	return m.server.URL
}

// Client returns an HTTP client wired to the mock server.
func (m *MockHorizon) Client() *http.Client {
	return m.server.Client()
}

// Close shuts down the mock server.
func (m *MockHorizon) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockHorizon) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.counts = make(map[string]int)
	m.LastQuery = nil
}

// FetchCount returns how many requests the given path has received.
func (m *MockHorizon) FetchCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[path]
}

// SetHandler sets a custom handler for a specific path.
func (m *MockHorizon) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a canned response for a path.
func (m *MockHorizon) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		fmt.Fprint(w, resp.Body)
	})
}

// SetDataset registers the full record set for a collection path, in
// ascending paging-token order. Each record must carry a paging_token field.
func (m *MockHorizon) SetDataset(path string, records []json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.datasets[path] = records
}

// FailFetch makes the Nth request (1-based) to a path fail with the given
// status, regardless of any dataset registered for it.
func (m *MockHorizon) FailFetch(path string, fetchNumber, statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[path] = failure{fetchNumber: fetchNumber, statusCode: statusCode}
}

// defaultPageLimit mirrors the server-side default page size.
const defaultPageLimit = 10

// servePage slices one page out of the dataset according to the cursor,
// order and limit parameters and wraps it in the collection envelope.
func (m *MockHorizon) servePage(w http.ResponseWriter, r *http.Request, records []json.RawMessage) {
	q := r.URL.Query()

	seq := records
	if q.Get("order") == "desc" {
		seq = make([]json.RawMessage, len(records))
		for i, rec := range records {
			seq[len(records)-1-i] = rec
		}
	}

	start := 0
	if cursor := q.Get("cursor"); cursor != "" {
		for i, rec := range seq {
			if pagingToken(rec) == cursor {
				start = i + 1
				break
			}
		}
	}

	limit := defaultPageLimit
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		limit = n
	}

	end := start + limit
	if end > len(seq) {
		end = len(seq)
	}
	if start > len(seq) {
		start = len(seq)
	}

	page := struct {
		Embedded struct {
			Records []json.RawMessage `json:"records"`
		} `json:"_embedded"`
	}{}
	page.Embedded.Records = seq[start:end]

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func pagingToken(rec json.RawMessage) string {
	var token struct {
		PagingToken string `json:"paging_token"`
	}
	_ = json.Unmarshal(rec, &token)
	return token.PagingToken
}

// TransactionRecords generates n transaction-shaped records with sequential
// paging tokens, usable as a SetDataset payload.
func TransactionRecords(n int) []json.RawMessage {
	records := make([]json.RawMessage, n)
	for i := 0; i < n; i++ {
		records[i] = json.RawMessage(fmt.Sprintf(
			`{"id":"tx-%04d","paging_token":"%d","hash":"hash-%04d","ledger":%d,"source_account":"GSOURCE","created_at":"2019-02-27T12:00:00Z","operation_count":1}`,
			i+1, i+1, i+1, 1000+i,
		))
	}
	return records
}
