package trigger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// target is an endpoint with its resolved URL.
type target struct {
	endpoint Endpoint
	url      string
}

// Dispatcher issues the downstream cron-job calls.
// It holds no per-invocation state and is safe for concurrent use:
// overlapping invocations run independently.
type Dispatcher struct {
	client    Doer
	logger    *slog.Logger
	observer  Observer
	baseURL   string
	userAgent string
	targets   []target
	timeout   time.Duration
}

// New creates a dispatcher for baseURL.
// Without WithEndpoints the default chunk and leaderboard routes are used.
func New(baseURL string, opts ...Option) (*Dispatcher, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	cfg := &config{
		endpoints: DefaultEndpoints(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.client == nil {
		cfg.client = &http.Client{}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(cfg.endpoints) == 0 {
		return nil, ErrNoEndpoints
	}

	targets := make([]target, 0, len(cfg.endpoints))
	for _, ep := range cfg.endpoints {
		if strings.TrimSpace(ep.Path) == "" {
			return nil, fmt.Errorf("%w: empty path for %q", ErrInvalidEndpoint, ep.Name)
		}
		if ep.Name == "" {
			ep.Name = EndpointFromPath(ep.Path).Name
		}
		targets = append(targets, target{endpoint: ep, url: joinURL(base, ep.Path)})
	}

	return &Dispatcher{
		client:    cfg.client,
		logger:    cfg.logger,
		observer:  cfg.observer,
		baseURL:   base,
		userAgent: cfg.userAgent,
		targets:   targets,
		timeout:   cfg.timeout,
	}, nil
}

func parseBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrBaseURLRequired
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// BaseURL returns the normalized base URL.
func (d *Dispatcher) BaseURL() string {
	return d.baseURL
}

// URLs returns the resolved endpoint URLs in dispatch order.
func (d *Dispatcher) URLs() []string {
	urls := make([]string, len(d.targets))
	for i, t := range d.targets {
		urls[i] = t.url
	}
	return urls
}

// Dispatch calls every endpoint concurrently and returns after all of them settled.
// Request failures are recorded in the report and never abort the other calls.
func (d *Dispatcher) Dispatch(ctx context.Context) Report {
	runID := uuid.NewString()
	ctx = withRunID(ctx, runID)

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	report := Report{
		RunID:     runID,
		Source:    SourceFromContext(ctx),
		StartedAt: time.Now(),
		Outcomes:  make([]Outcome, len(d.targets)),
	}

	// Every goroutine returns nil, so Wait joins all calls and nothing is cancelled early.
	var g errgroup.Group
	for i, t := range d.targets {
		g.Go(func() error {
			report.Outcomes[i] = d.call(ctx, t)
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = time.Since(report.StartedAt)
	d.logReport(ctx, report)

	if d.observer != nil {
		d.observer.ObserveReport(report)
	}

	return report
}

// call performs one GET and drains the body so the connection can be reused.
func (d *Dispatcher) call(ctx context.Context, t target) Outcome {
	out := Outcome{Endpoint: t.endpoint.Name, URL: t.url}
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		out.Err = fmt.Errorf("trigger: build request: %w", err)
		out.Duration = time.Since(start)
		return out
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		out.Err = err
		out.Duration = time.Since(start)
		return out
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	out.StatusCode = resp.StatusCode
	out.Duration = time.Since(start)
	return out
}

func (d *Dispatcher) logReport(ctx context.Context, report Report) {
	for _, o := range report.Outcomes {
		attrs := []any{
			slog.String("endpoint", o.Endpoint),
			slog.String("url", o.URL),
			slog.Int("status", o.StatusCode),
			slog.Duration("duration", o.Duration),
		}
		if o.OK() {
			d.logger.DebugContext(ctx, "endpoint triggered", attrs...)
			continue
		}
		if o.Err != nil {
			attrs = append(attrs, slog.Any("error", o.Err))
		}
		d.logger.WarnContext(ctx, "endpoint trigger failed", attrs...)
	}

	d.logger.InfoContext(ctx, "dispatch completed",
		slog.String("source", report.Source),
		slog.Int("endpoints", len(report.Outcomes)),
		slog.Int("failed", len(report.Failed())),
		slog.Duration("duration", report.Duration),
	)
}
