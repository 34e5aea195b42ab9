// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/styloguard/internal/httputil"
	"github.com/pdiddy/styloguard/pkg/types"
)

// Remote posts text to an HTTP annotation service and decodes the
// AnnotatedDocument it returns. The service is expected to answer
// POST {"text": "..."} with the JSON form of types.AnnotatedDocument.
type Remote struct {
	Client     *http.Client
	Endpoint   string
	APIKey     string
	UserAgent  string
	MaxRetries int
}

// NewRemote returns a Remote annotator for cfg. The endpoint is required.
func NewRemote(cfg types.AnnotatorConfig, client *http.Client) (*Remote, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("remote annotator requires an endpoint")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{
		Client:     client,
		Endpoint:   cfg.Endpoint,
		APIKey:     cfg.APIKey,
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}, nil
}

type annotateRequest struct {
	Text string `json:"text"`
}

// Annotate implements Annotator.
func (r *Remote) Annotate(ctx context.Context, text string) (types.AnnotatedDocument, error) {
	var doc types.AnnotatedDocument

	body, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return doc, fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		return doc, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}
	if r.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, r.Client, req, r.MaxRetries)
	if err != nil {
		return doc, fmt.Errorf("annotator request: %w: %w", types.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return doc, fmt.Errorf("annotator returned HTTP %d: %s: %w",
			resp.StatusCode, bytes.TrimSpace(msg), types.ErrCollaboratorUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return doc, fmt.Errorf("parsing annotator response: %w", err)
	}
	if err := validate(doc); err != nil {
		return types.AnnotatedDocument{}, fmt.Errorf("annotator response: %w", err)
	}
	return doc, nil
}

// validate checks that every span lies within the token sequence and that
// sentences partition the tokens in order.
func validate(doc types.AnnotatedDocument) error {
	n := len(doc.Tokens)
	next := 0
	for i, s := range doc.Sentences {
		if s.Start != next || s.End < s.Start || s.End > n {
			return fmt.Errorf("sentence %d [%d,%d) does not continue the partition of %d tokens", i, s.Start, s.End, n)
		}
		next = s.End
	}
	if len(doc.Sentences) > 0 && next != n {
		return fmt.Errorf("sentences cover %d of %d tokens", next, n)
	}
	for i, s := range doc.NounChunks {
		if s.Start < 0 || s.End < s.Start || s.End > n {
			return fmt.Errorf("noun chunk %d [%d,%d) out of range", i, s.Start, s.End)
		}
	}
	for i, e := range doc.Entities {
		if e.Start < 0 || e.End < e.Start || e.End > n {
			return fmt.Errorf("entity %d [%d,%d) out of range", i, e.Start, e.End)
		}
	}
	return nil
}
