package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// Source fetches the raw catalog document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: unexpected status %d", s.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return data, nil
}

// Loader makes a single attempt per Load call to read the catalog and falls
// back to FallbackProducts on any failure or an empty result.
type Loader struct {
	src     Source
	timeout time.Duration
	logger  *zap.Logger
}

func NewLoader(src Source, timeout time.Duration, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{src: src, timeout: timeout, logger: logger}
}

func (l *Loader) Load(ctx context.Context) []Product {
	if l.src == nil {
		l.logger.Warn("no catalog source configured, using fallback catalog")
		return FallbackProducts()
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	products, err := l.fetch(ctx)
	if err != nil {
		l.logger.Warn("catalog load failed, using fallback catalog", zap.Error(err))
		return FallbackProducts()
	}
	if len(products) == 0 {
		l.logger.Warn("catalog is empty, using fallback catalog")
		return FallbackProducts()
	}

	l.logger.Info("catalog loaded", zap.Int("products", len(products)))
	return products
}

func (l *Loader) fetch(ctx context.Context) ([]Product, error) {
	raw, err := l.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}
