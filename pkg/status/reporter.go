package status

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/imroc/req/v3"

	"github.com/rodnney/biotech-x/apis/health"
	"github.com/rodnney/biotech-x/pkg/logger"
)

// Reporter queries a backend health endpoint and maps the outcome to a
// display state. A Reporter is safe for concurrent use; every activation is
// independent.
type Reporter struct {
	client   *req.Client
	target   string
	recorder Recorder
	now      func() time.Time
}

// Option customizes a Reporter.
type Option func(*Reporter)

// WithRecorder reports every completed activation to rec.
func WithRecorder(rec Recorder) Option {
	return func(r *Reporter) {
		r.recorder = rec
	}
}

// NewReporter creates a Reporter for cfg. Empty fields fall back to
// DefaultAPIURL and DefaultTimeout.
func NewReporter(cfg Config, opts ...Option) *Reporter {
	base := cfg.APIURL
	if base == "" {
		base = DefaultAPIURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// Retries stay disabled: an activation issues exactly one query.
	client := req.C().
		SetTimeout(timeout).
		SetCommonRetryCount(0).
		SetLogger(logger.NewHTTPClientLogger("status-reporter"))
	if cfg.UserAgent != "" {
		client.SetUserAgent(cfg.UserAgent)
	}

	r := &Reporter{
		client: client,
		target: strings.TrimRight(base, "/") + HealthPath,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Target returns the URL every activation queries.
func (r *Reporter) Target() string {
	return r.target
}

// Activate starts one asynchronous check. The returned Task reports
// StateChecking until the query resolves. Cancelling ctx or the Task aborts
// the query and resolves the Task as unavailable.
func (r *Reporter) Activate(ctx context.Context) *Task {
	ctx, cancel := context.WithCancel(ctx)
	task := newTask(r.target, cancel)

	go func() {
		defer cancel()

		report := r.query(ctx)
		r.observe(report)
		task.finish(report)
	}()

	return task
}

// Check runs one activation and blocks until it resolves.
func (r *Reporter) Check(ctx context.Context) Report {
	task := r.Activate(ctx)
	<-task.Done()
	return task.Current()
}

func (r *Reporter) query(ctx context.Context) Report {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(r.target)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return r.unavailable(ctxErr)
		}
		return r.unavailable(fmt.Errorf("%s: %w", ErrRequestFailed, err))
	}

	if !resp.IsSuccessState() {
		return r.degraded(resp.StatusCode)
	}

	body, err := resp.ToBytes()
	if err != nil {
		return r.unavailable(fmt.Errorf("%s: %w", ErrReadBody, err))
	}

	var doc health.HealthResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		return r.unavailable(fmt.Errorf("%s: %w", ErrMalformedBody, err))
	}

	return Report{
		State:       StateOnline,
		Text:        TextOnlinePrefix + doc.Message,
		Message:     doc.Message,
		Environment: doc.Environment,
		Target:      r.target,
		CheckedAt:   r.now(),
	}
}

func (r *Reporter) degraded(code int) Report {
	return Report{
		State:     StateDegraded,
		Text:      TextDegraded,
		Target:    r.target,
		CheckedAt: r.now(),
		Error:     fmt.Sprintf("%s %d", ErrUnexpectedStatus, code),
	}
}

func (r *Reporter) unavailable(err error) Report {
	return Report{
		State:     StateUnavailable,
		Text:      TextUnavailable,
		Target:    r.target,
		CheckedAt: r.now(),
		Error:     err.Error(),
	}
}

func (r *Reporter) observe(report Report) {
	if r.recorder != nil {
		r.recorder.RecordStatusCheck(string(report.State))
	}

	switch report.State {
	case StateOnline:
		logger.Debugf("Backend %s online: %s", report.Target, report.Message)
	case StateDegraded:
		logger.Warnf("Backend %s degraded: %s", report.Target, report.Error)
	default:
		logger.Warnf("Backend %s unavailable: %s", report.Target, report.Error)
	}
}
