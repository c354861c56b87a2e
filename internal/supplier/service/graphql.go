// Package service implements the supplier integration: the GraphQL transport,
// the access-token cache, and the versioned client adapters built on them.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/brightstone/gemgate/internal/errors"
)

// SupplierError carries the HTTP status and error payload of a failed supplier
// call. It unwraps to apperrors.ErrSupplier so handlers can map it.
type SupplierError struct {
	StatusCode int
	Messages   []string
}

// Error implements the error interface.
func (e *SupplierError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("supplier returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("supplier returned status %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// Unwrap links SupplierError into the domain error taxonomy.
func (e *SupplierError) Unwrap() error {
	return apperrors.ErrSupplier
}

// graphqlRequest is the JSON body of a GraphQL POST.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlError is one entry of a GraphQL errors array.
type graphqlError struct {
	Message string `json:"message"`
}

// graphqlEnvelope is the standard GraphQL response envelope.
type graphqlEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// GraphQLClient executes queries against a single GraphQL endpoint. Every call
// is attempted exactly once; there are no retries.
type GraphQLClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGraphQLClient creates a GraphQL client for the given endpoint with a
// bounded outbound timeout.
func NewGraphQLClient(endpoint string, timeout time.Duration, logger *slog.Logger) *GraphQLClient {
	return &GraphQLClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Execute posts the query with the given variables, applies the authorize hook
// to the outgoing request (bearer or basic credential), and unmarshals the
// response data into out. Transport failures and application-level GraphQL
// errors both surface as *SupplierError.
func (c *GraphQLClient) Execute(
	ctx context.Context,
	query string,
	variables map[string]any,
	authorize func(*http.Request),
	out any,
) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return apperrors.Wrap(err, "failed to encode supplier query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return apperrors.Wrap(err, "failed to build supplier request")
	}
	req.Header.Set("Content-Type", "application/json")
	if authorize != nil {
		authorize(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSupplier, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSupplier, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("supplier call failed",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(raw)),
		)
		return &SupplierError{StatusCode: resp.StatusCode, Messages: []string{string(raw)}}
	}

	var envelope graphqlEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return apperrors.Wrap(apperrors.ErrSupplier, "malformed supplier response")
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		c.logger.Error("supplier query returned errors", slog.Any("errors", messages))
		return &SupplierError{StatusCode: resp.StatusCode, Messages: messages}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return apperrors.Wrap(apperrors.ErrSupplier, "malformed supplier response data")
		}
	}

	return nil
}
