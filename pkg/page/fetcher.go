// Package page implements cursor pagination over Horizon collections: a
// single-page fetcher, a pull-based lazy iterator that advances the cursor
// across pages, and a pager that bounds page sizes and drives a consumer.
package page

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/lumenlab/horizon-client/pkg/endpoint"
	"github.com/lumenlab/horizon-client/pkg/logging"
)

// Prometheus metrics for page fetching.
var (
	pagesFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "horizon_pages_fetched_total",
		Help: "Total pages fetched by collection template and outcome",
	}, []string{"collection", "outcome"})

	recordsFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "horizon_records_fetched_total",
		Help: "Total records decoded by collection template",
	}, []string{"collection"})
)

// Errors distinguishing the two failure modes of a page fetch.
var (
	// ErrTransport indicates a network or HTTP-layer failure. Retries, if
	// any, belong to the transport collaborator, never to this engine.
	ErrTransport = errors.New("transport failure")

	// ErrDecode indicates the response body did not match the expected page
	// schema.
	ErrDecode = errors.New("decode page")
)

// Transport executes one wire request. pkg/client.Client satisfies it, as
// does a plain *http.Client.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// Page is one fetched page of records in server order, plus the cursor that
// continues after its last record. NextCursor is empty when the page carried
// no records.
type Page[T any] struct {
	Records    []T
	NextCursor string
}

// Fetcher fetches and decodes single pages of a record type from one host.
// It is stateless and safe to share between iterators.
type Fetcher[T any] struct {
	transport Transport
	host      string
	logger    zerolog.Logger
}

// NewFetcher creates a fetcher for the given transport and host.
func NewFetcher[T any](transport Transport, host string) *Fetcher[T] {
	return &Fetcher[T]{
		transport: transport,
		host:      host,
		logger:    logging.NewLogger("page-fetcher"),
	}
}

// pageEnvelope is the wire shape of a collection page. Records are held raw
// so the paging token can be read without knowing the record schema.
type pageEnvelope struct {
	Embedded struct {
		Records []json.RawMessage `json:"records"`
	} `json:"_embedded"`
}

// Fetch executes one page request for the descriptor and decodes the result.
// Failures are classified as ErrTransport (network or HTTP status) or
// ErrDecode (unexpected body); encode failures pass through unchanged.
func (f *Fetcher[T]) Fetch(ctx context.Context, d endpoint.Descriptor) (Page[T], error) {
	req, err := endpoint.Encode(d, f.host)
	if err != nil {
		return Page[T]{}, err
	}
	req = req.WithContext(ctx)

	resp, err := f.transport.Do(req)
	if err != nil {
		pagesFetchedTotal.WithLabelValues(d.Template(), "transport_error").Inc()
		return Page[T]{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		pagesFetchedTotal.WithLabelValues(d.Template(), "transport_error").Inc()
		f.logger.Warn().
			Str("collection", d.Template()).
			Int("status", resp.StatusCode).
			Msg("Page request failed")
		return Page[T]{}, fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		pagesFetchedTotal.WithLabelValues(d.Template(), "transport_error").Inc()
		return Page[T]{}, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	page, err := decodePage[T](body)
	if err != nil {
		pagesFetchedTotal.WithLabelValues(d.Template(), "decode_error").Inc()
		return Page[T]{}, err
	}

	pagesFetchedTotal.WithLabelValues(d.Template(), "ok").Inc()
	recordsFetchedTotal.WithLabelValues(d.Template()).Add(float64(len(page.Records)))
	f.logger.Debug().
		Str("collection", d.Template()).
		Int("records", len(page.Records)).
		Str("next_cursor", page.NextCursor).
		Msg("Fetched page")

	return page, nil
}

// decodePage parses the page envelope, decodes each record in server order
// and derives the next cursor from the last record's paging token.
func decodePage[T any](body []byte) (Page[T], error) {
	var env pageEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Page[T]{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	raws := env.Embedded.Records
	page := Page[T]{Records: make([]T, 0, len(raws))}
	for i, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return Page[T]{}, fmt.Errorf("%w: record %d: %v", ErrDecode, i, err)
		}
		page.Records = append(page.Records, rec)
	}

	if len(raws) > 0 {
		var token struct {
			PagingToken string `json:"paging_token"`
		}
		if err := json.Unmarshal(raws[len(raws)-1], &token); err != nil {
			return Page[T]{}, fmt.Errorf("%w: paging token: %v", ErrDecode, err)
		}
		// Every record carries a paging token. A page without one cannot
		// advance the cursor, so iteration would refetch the same page
		// indefinitely.
		if token.PagingToken == "" {
			return Page[T]{}, fmt.Errorf("%w: last record carries no paging token", ErrDecode)
		}
		page.NextCursor = token.PagingToken
	}
	return page, nil
}
