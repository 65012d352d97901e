package templates

import (
	"github.com/mhmorgan/gitignore-cli/config"
	"io"
	"net/http"
	"strings"
	"testing"
)

type stubTransport struct {
	res  map[string]stubResponse
	reqs *[]*http.Request
}

type stubResponse struct {
	status int
	body   string
}

func (s stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if s.reqs != nil {
		*s.reqs = append(*s.reqs, req)
	}
	r, ok := s.res[req.URL.String()]
	if !ok {
		r = stubResponse{status: http.StatusNotFound, body: "404: Not Found"}
	}
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func newTestClient(t *testing.T, res map[string]stubResponse) (Client, *[]*http.Request) {
	t.Helper()
	var reqs []*http.Request
	cfg := config.Default()
	h := &http.Client{Transport: stubTransport{res: res, reqs: &reqs}}
	return NewClient(h, &cfg), &reqs
}
