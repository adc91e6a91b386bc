package drawing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ErrNotFound is returned by a Source for an unknown drawing id.
var ErrNotFound = errors.New("drawing not found")

// Source lists and fetches recorded drawings.
type Source interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id string) (*Drawing, error)
}

// HTTPSource reads drawings from the drawings REST API (GET /api/drawings and
// GET /api/drawings/{id}).
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource returns a Source for the API rooted at baseURL (e.g. "http://localhost:8080").
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// List returns drawing summaries, newest first as served.
func (s *HTTPSource) List(ctx context.Context) ([]Summary, error) {
	body, err := s.get(ctx, "/api/drawings")
	if err != nil {
		return nil, err
	}
	return DecodeSummaries(body)
}

// Get fetches one drawing with its strokes.
func (s *HTTPSource) Get(ctx context.Context, id string) (*Drawing, error) {
	body, err := s.get(ctx, "/api/drawings/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	return Decode(body)
}

func (s *HTTPSource) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("drawings api: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("drawings api: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("drawings api: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("drawings api: %s: %w", path, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		// Error responses still carry the envelope; prefer its message over the bare status.
		if _, uerr := unwrap(body); uerr != nil {
			return nil, fmt.Errorf("drawings api: %s: %w", resp.Status, uerr)
		}
		return nil, fmt.Errorf("drawings api: %s", resp.Status)
	}
	return body, nil
}

// FileSource serves drawings decoded from a local JSON file (one drawing, an array, or an API
// envelope around either).
type FileSource struct {
	drawings []*Drawing
}

// LoadFile reads path into a FileSource.
func LoadFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("drawing: %w", err)
	}
	ds, err := DecodeAll(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &FileSource{drawings: ds}, nil
}

// NewMemorySource serves the given drawings.
func NewMemorySource(ds ...*Drawing) *FileSource {
	return &FileSource{drawings: ds}
}

func (s *FileSource) List(ctx context.Context) ([]Summary, error) {
	out := make([]Summary, 0, len(s.drawings))
	for _, d := range s.drawings {
		out = append(out, Summary{DrawingID: d.DrawingID, DrawTimestamp: d.DrawTimestamp})
	}
	return out, nil
}

func (s *FileSource) Get(ctx context.Context, id string) (*Drawing, error) {
	for _, d := range s.drawings {
		if d.DrawingID == id {
			return d.Clone()
		}
	}
	return nil, fmt.Errorf("drawing %q: %w", id, ErrNotFound)
}
