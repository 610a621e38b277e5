package testutil

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// Response is a fully read HTTP response with its parsed document.
type Response struct {
	Status int
	Header http.Header
	Body   string
	Doc    *goquery.Document
}

// Browser drives a test server the way the page's htmx controls do: it keeps
// cookies between requests and echoes the CSRF token on every POST.
type Browser struct {
	t        testing.TB
	server   *httptest.Server
	client   *http.Client
	basePath string
	csrf     string
}

// NewBrowser returns a Browser with an empty cookie jar that does not follow redirects.
func NewBrowser(t testing.TB, ts *httptest.Server, basePath string) *Browser {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &Browser{
		t:        t,
		server:   ts,
		basePath: strings.TrimRight(basePath, "/"),
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Open loads the full page and remembers the CSRF token from its meta tag.
func (b *Browser) Open() *Response {
	b.t.Helper()

	res := b.Get("", false)
	if res.Status != http.StatusOK {
		b.t.Fatalf("open page: status %d", res.Status)
	}
	token, _ := res.Doc.Find(`meta[name="csrf-token"]`).Attr("content")
	if token == "" {
		b.t.Fatalf("open page: missing csrf token")
	}
	b.csrf = token
	return res
}

// Get issues a GET for path under the base path.
func (b *Browser) Get(path string, htmx bool) *Response {
	b.t.Helper()

	req, err := http.NewRequest(http.MethodGet, b.url(path), nil)
	if err != nil {
		b.t.Fatalf("new request: %v", err)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return b.do(req)
}

// HTMX posts form to path as an htmx request with the CSRF header set.
func (b *Browser) HTMX(path string, form url.Values) *Response {
	b.t.Helper()
	return b.post(path, form, true)
}

// Submit posts form to path as a plain browser form submission.
func (b *Browser) Submit(path string, form url.Values) *Response {
	b.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	form.Set("csrf_token", b.csrf)
	return b.post(path, form, false)
}

// CSRFToken returns the token captured by Open.
func (b *Browser) CSRFToken() string {
	return b.csrf
}

func (b *Browser) post(path string, form url.Values, htmx bool) *Response {
	b.t.Helper()

	if form == nil {
		form = url.Values{}
	}
	req, err := http.NewRequest(http.MethodPost, b.url(path), strings.NewReader(form.Encode()))
	if err != nil {
		b.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
		req.Header.Set("X-CSRF-Token", b.csrf)
	}
	return b.do(req)
}

func (b *Browser) do(req *http.Request) *Response {
	b.t.Helper()

	res, err := b.client.Do(req)
	if err != nil {
		b.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		b.t.Fatalf("read body: %v", err)
	}
	return &Response{
		Status: res.StatusCode,
		Header: res.Header,
		Body:   string(body),
		Doc:    ParseHTML(b.t, body),
	}
}

func (b *Browser) url(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.server.URL + b.basePath + path
}
