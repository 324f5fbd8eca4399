package fetcher

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/andybalholm/brotli"

	"news_analytics/internal/config"
	"news_analytics/internal/metrics"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	// Route names the proxy identity or "direct" that served the response.
	Route string
}

// FetchError is returned once every route has been tried.
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-200 response from a single route.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.StatusCode)
}

// HTTPFetcher tries each proxy identity in order and falls back to a direct
// connection. The first 200 response wins.
type HTTPFetcher struct {
	routes    []route
	clients   map[string]*http.Client
	maxBody   int64
	userAgent string
	logger    *slog.Logger
}

func New(scrape config.ScrapeConfig, proxy config.ProxyConfig, logger *slog.Logger) *HTTPFetcher {
	return NewWithProxies(scrape, ProxyURLs(proxy), logger)
}

func NewWithProxies(scrape config.ScrapeConfig, proxies []*url.URL, logger *slog.Logger) *HTTPFetcher {
	routes := buildRoutes(proxies)
	clients := make(map[string]*http.Client, len(routes))
	for _, r := range routes {
		clients[r.name] = newClient(r.proxy, scrape.Timeout)
	}

	userAgent := scrape.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &HTTPFetcher{
		routes:    routes,
		clients:   clients,
		maxBody:   scrape.MaxBodySize,
		userAgent: userAgent,
		logger:    logger.With("component", "fetcher"),
	}
}

func newClient(proxy *url.URL, timeout time.Duration) *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  true,
	}
	if proxy != nil {
		transport.Proxy = http.ProxyURL(proxy)
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}

// Routes returns the number of attempts a single Fetch may make.
func (f *HTTPFetcher) Routes() int {
	return len(f.routes)
}

func (f *HTTPFetcher) Get(ctx context.Context, rawURL string) (*Response, error) {
	return f.Fetch(ctx, &Request{Method: http.MethodGet, URL: rawURL})
}

func (f *HTTPFetcher) Fetch(ctx context.Context, req *Request) (*Response, error) {
	var lastErr error
	attempts := 0

	for _, r := range f.routes {
		if err := ctx.Err(); err != nil {
			return nil, &FetchError{URL: req.URL, Attempts: attempts, Err: err}
		}
		attempts++

		start := time.Now()
		resp, err := f.attempt(ctx, r, req)
		if err != nil {
			lastErr = err
			metrics.RecordFetch(r.kind(), "error")
			f.logger.Warn("fetch attempt failed",
				"url", req.URL,
				"route", r.name,
				"attempt", attempts,
				"error", err,
			)
			continue
		}

		metrics.RecordFetch(r.kind(), "ok")
		metrics.RecordFetchDuration(r.kind(), time.Since(start).Seconds())
		f.logger.Debug("fetch complete",
			"url", req.URL,
			"route", r.name,
			"size", len(resp.Body),
			"duration", time.Since(start),
		)
		return resp, nil
	}

	return nil, &FetchError{URL: req.URL, Attempts: attempts, Err: lastErr}
}

func (f *HTTPFetcher) attempt(ctx context.Context, r route, req *Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("User-Agent", f.userAgent)
	httpReq.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	httpReq.Header.Set("Accept-Language", "en-US,en;q=0.9")
	httpReq.Header.Set("Accept-Encoding", "gzip, deflate, br")
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Set(key, v)
		}
	}

	httpResp, err := f.clients[r.name].Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(httpResp.Body, 4096))
		return nil, &StatusError{StatusCode: httpResp.StatusCode}
	}

	var reader io.Reader = httpResp.Body
	if f.maxBody > 0 {
		reader = io.LimitReader(reader, f.maxBody)
	}

	reader, err = decompressReader(httpResp.Header.Get("Content-Encoding"), reader)
	if err != nil {
		return nil, fmt.Errorf("decompress body: %w", err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Response{
		URL:        req.URL,
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
		Route:      r.name,
	}, nil
}

func decompressReader(encoding string, reader io.Reader) (io.Reader, error) {
	switch encoding {
	case "gzip":
		return gzip.NewReader(reader)
	case "deflate":
		return flate.NewReader(reader), nil
	case "br":
		return brotli.NewReader(reader), nil
	default:
		return reader, nil
	}
}
