package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace id to the favorites service.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient].
type HTTPClientOptions struct {
	// BaseURL is prepended to every relative request path.
	BaseURL string
	// Timeout bounds each request; zero keeps resty's default (none).
	Timeout time.Duration
	// Logger receives resty's own warnings and errors. Optional.
	Logger resty.Logger
	// TraceIDs generates the X-Trace-ID value of each request. Optional.
	TraceIDs interface{ Generate() string }
}

// NewHTTPClient creates an independent resty-backed client. Retries stay
// disabled: every request is sent exactly once.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetRetryCount(0)

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.Logger != nil {
		client.SetLogger(opts.Logger)
	}
	if opts.TraceIDs != nil {
		gen := opts.TraceIDs
		client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(TraceIDHeader) == "" {
				r.SetHeader(TraceIDHeader, gen.Generate())
			}
			return nil
		})
	}

	return &HTTPClient{Client: client}
}
