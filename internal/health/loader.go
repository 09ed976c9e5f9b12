package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

// Loader reads dashboard_data.json from a local path or an http(s) URL.
type Loader struct {
	httpClient *resty.Client
}

func NewLoader(timeout time.Duration) *Loader {
	httpClient := resty.NewWithClient(&http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Loader{httpClient: httpClient}
}

// Load fetches and decodes the record list. The fetch is attempted once.
func (l *Loader) Load(ctx context.Context, source string) (_ []HealthRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "health.loader.load")
	span.SetAttributes(attribute.String("source", source))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var raw []byte
	if pkg.IsHTTPURL(source) {
		raw, err = l.fetch(ctx, source)
	} else {
		raw, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("%w: read %s: %w", ErrLoadFailed, source, err)
		}
	}
	if err != nil {
		return nil, err
	}

	records, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	log.Debugf("loaded %d records from [%s]", len(records), source)
	return records, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := l.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrLoadFailed, url, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: get %s: status %d", ErrLoadFailed, url, resp.StatusCode())
	}
	return resp.Body(), nil
}

// Decode parses a JSON array of records. Any other shape is a malformed dataset.
func Decode(raw []byte) ([]HealthRecord, error) {
	var records []HealthRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataset, err)
	}
	if records == nil {
		// literal null
		return nil, fmt.Errorf("%w: expected a json array", ErrMalformedDataset)
	}
	return records, nil
}
