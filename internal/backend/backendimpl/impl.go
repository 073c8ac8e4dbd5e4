package backendimpl

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/motemen/go-loghttp"
	"github.com/orgball2608/crypto-blog/internal/backend"
	"github.com/orgball2608/crypto-blog/pkg/config"
	"github.com/orgball2608/crypto-blog/pkg/errors"
	"github.com/orgball2608/crypto-blog/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// BackendImpl talks to the blog backend over HTTP with JSON bodies.
type BackendImpl struct {
	BaseURL *url.URL
	HTTP    *http.Client
	Logger  logger.Logger
}

func New(opts Opts) (*BackendImpl, error) {
	base, err := url.Parse(opts.Config.Backend.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid backend url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("backend url %q must be absolute", opts.Config.Backend.URL))
	}

	log := opts.Logger.WithComponent("BackendClient")

	return &BackendImpl{
		BaseURL: base,
		HTTP: &http.Client{
			Timeout:   opts.Config.Backend.Timeout,
			Transport: newLoggingTransport(http.DefaultTransport, log),
		},
		Logger: log,
	}, nil
}

var _ backend.Client = (*BackendImpl)(nil)

func newLoggingTransport(next http.RoundTripper, log logger.Logger) http.RoundTripper {
	return &loghttp.Transport{
		Transport: next,
		LogRequest: func(req *http.Request) {
			log.Debug("Backend request", "method", req.Method, "url", req.URL.String())
		},
		LogResponse: func(resp *http.Response) {
			log.Debug("Backend response",
				"method", resp.Request.Method,
				"url", resp.Request.URL.String(),
				"status", resp.StatusCode,
			)
		},
	}
}

func (b *BackendImpl) postsURL() string {
	return b.BaseURL.JoinPath("posts").String()
}
