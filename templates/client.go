// Package templates talks to the github/gitignore repository:
// listing the available templates and downloading their bodies.
package templates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/mhmorgan/gitignore-cli/config"
	"io"
	"net/http"
	"sort"
	"strings"
)

type Client struct {
	http      *http.Client
	apiURL    string
	rawURL    string
	suffix    string
	userAgent string
}

// NewClient returns a client for the endpoints in cfg. A nil
// http client means http.DefaultClient.
func NewClient(h *http.Client, cfg *config.Config) Client {
	if h == nil {
		h = http.DefaultClient
	}
	return Client{
		http:      h,
		apiURL:    cfg.Catalog.APIURL,
		rawURL:    strings.TrimRight(cfg.Catalog.RawURL, "/"),
		suffix:    cfg.Catalog.Suffix,
		userAgent: cfg.UserAgent,
	}
}

type entry struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

// Catalog returns the sorted names of all templates in the
// repository root, without the template suffix.
func (c Client) Catalog(ctx context.Context) ([]string, error) {
	req, err := c.request(ctx, c.apiURL)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if !success(res.StatusCode) {
		return nil, &RemoteError{StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	entries, err := decodeEntries(body)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if *e.Type != "file" || !strings.HasSuffix(*e.Name, c.suffix) {
			continue
		}
		name := strings.TrimSuffix(*e.Name, c.suffix)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Fetch downloads the body of the named template.
func (c Client) Fetch(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/%s%s", c.rawURL, name, c.suffix)
	req, err := c.request(ctx, url)
	if err != nil {
		return "", err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch template %s: %w", name, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if !success(res.StatusCode) {
		return "", &NotFoundError{Name: name}
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", name, err)
	}
	return string(body), nil
}

func (c Client) request(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

func decodeEntries(body []byte) ([]entry, error) {
	var entries []entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &ParseError{Err: err}
	}
	if entries == nil {
		return nil, &ParseError{Err: errors.New("expected a JSON array")}
	}
	for i, e := range entries {
		if e.Name == nil || e.Type == nil {
			return nil, &ParseError{Err: fmt.Errorf("entry %d: missing name or type", i)}
		}
	}
	return entries, nil
}

func success(code int) bool {
	return code >= 200 && code < 300
}
