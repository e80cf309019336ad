// Package httpembed provides an embedder backed by an HTTP embedding
// service exposing text and image endpoints (a CLIP-style model served
// behind a small JSON API).
package httpembed

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure Embedder implements the interface.
var _ driven.Embedder = (*Embedder)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "http://localhost:11434"
	DefaultModel      = "clip-vit-b32"
	DefaultTimeout    = 30 * time.Second
	DefaultDimensions = 512 // clip-vit-b32 default
)

// Config holds configuration for the HTTP embedder.
type Config struct {
	// BaseURL is the embedding service base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the embedding model to use (default: clip-vit-b32).
	Model string

	// APIKey is sent as a bearer token when set.
	APIKey string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// Dimensions is the embedding vector size (model-dependent).
	Dimensions int
}

// Embedder generates embeddings over HTTP. Text and image queries must
// use one model family so their vectors share a space with the
// precomputed index entries.
type Embedder struct {
	client     *http.Client
	baseURL    string
	model      string
	apiKey     string
	dimensions int
}

// embedTextRequest is the text endpoint request format.
type embedTextRequest struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

// embedImageRequest is the image endpoint request format. The image is
// sent inline as base64.
type embedImageRequest struct {
	Model string `json:"model"`
	Image string `json:"image"`
}

// embedResponse is the response format shared by both endpoints.
type embedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// New creates a new HTTP embedder.
func New(cfg Config) *Embedder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Dimensions == 0 {
		cfg.Dimensions = DefaultDimensions
	}

	return &Embedder{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		dimensions: cfg.Dimensions,
	}
}

// EmbedText generates a vector embedding for the given text.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return e.post(ctx, "/embed/text", embedTextRequest{Model: e.model, Text: text})
}

// EmbedImage generates a vector embedding for the image at the given
// path. The file is read and sent inline.
func (e *Embedder) EmbedImage(ctx context.Context, imagePath string) ([]float32, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	return e.post(ctx, "/embed/image", embedImageRequest{
		Model: e.model,
		Image: base64.StdEncoding.EncodeToString(data),
	})
}

// Dimensions returns the embedding vector size.
func (e *Embedder) Dimensions() int {
	return e.dimensions
}

// Available reports that a real backend is configured.
func (e *Embedder) Available() bool {
	return true
}

// Ping validates the service is reachable via its health endpoint.
// This is a lightweight check that validates connectivity without
// running inference.
func (e *Embedder) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}
	e.authorize(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("embedding service returned status %d", resp.StatusCode)
	}
	return nil
}

// post sends a JSON request and decodes the embedding response.
func (e *Embedder) post(ctx context.Context, path string, body any) ([]float32, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		e.baseURL+path,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	e.authorize(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("embedding service error (status %d): failed to read response", resp.StatusCode)
		}
		return nil, fmt.Errorf("embedding service error (status %d): %s", resp.StatusCode, string(msg))
	}

	var embedResp embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&embedResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(embedResp.Embedding) == 0 {
		return nil, fmt.Errorf("embedding service returned an empty vector")
	}

	// Convert float64 to float32
	embedding := make([]float32, len(embedResp.Embedding))
	for i, v := range embedResp.Embedding {
		embedding[i] = float32(v)
	}

	return embedding, nil
}

func (e *Embedder) authorize(req *http.Request) {
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}
}
