package source

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/tmurov/reqdesk/internal/config"
	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/models"
)

//go:embed requisition.schema.json
var requisitionSchemaJSON []byte

type httpRecordSource struct {
	client *resty.Client
	schema *jsonschema.Schema
	logger *logger.Logger
}

// NewHTTPRecordSource constructs an HTTP/REST implementation of
// [RecordSource]. It normalises and validates the base URL from
// cfg.HTTPAddress, configures the underlying client with the resolved base
// URL and request timeout, and compiles the row validation schema.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRecordSource(cfg config.Source, log *logger.Logger) (RecordSource, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid source http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	schema, err := compileRowSchema()
	if err != nil {
		return nil, fmt.Errorf("compile requisition row schema: %w", err)
	}

	return &httpRecordSource{client: client, schema: schema, logger: log}, nil
}

func compileRowSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(requisitionSchemaJSON))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("requisition.schema.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("requisition.schema.json")
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

// FetchAll implements [RecordSource]. Each row of the response array is
// validated against the embedded JSON schema before mapping; rows that fail
// validation or mapping are logged and skipped so that one malformed record
// never hides the rest.
func (h *httpRecordSource) FetchAll(ctx context.Context) (models.Snapshot, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/api/requisitions")
	if err != nil {
		return nil, fmt.Errorf("fetch requisitions: %w: %w", ErrConnectivity, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("fetch requisitions: %w: %w", ErrConnectivity, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("fetch requisitions: %w: malformed response: %w", ErrConnectivity, err)
	}
	rows, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("fetch requisitions: %w: expected a json array", ErrConnectivity)
	}

	snapshot := make(models.Snapshot, 0, len(rows))
	for i, row := range rows {
		if err = h.schema.Validate(row); err != nil {
			h.logger.Warn().Err(err).
				Str("func", "httpRecordSource.FetchAll").
				Int("row", i).
				Msg("requisition row failed schema validation, skipping")
			continue
		}

		req, mapErr := mapRow(row.(map[string]any))
		if mapErr != nil {
			h.logger.Warn().Err(mapErr).
				Str("func", "httpRecordSource.FetchAll").
				Int("row", i).
				Msg("requisition row failed mapping, skipping")
			continue
		}
		snapshot = append(snapshot, req)
	}

	return snapshot, nil
}

// UpdateStatus implements [RecordSource].
func (h *httpRecordSource) UpdateStatus(ctx context.Context, recordID string, status models.Status) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"status": string(status)}).
		Put("/api/requisitions/" + url.PathEscape(recordID) + "/status")
	if err != nil {
		return fmt.Errorf("update status of %s: %w: %w", recordID, ErrMutation, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("update status of %s: %w: %w", recordID, ErrMutation, err)
	}

	return nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
