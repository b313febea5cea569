package http

import (
	"crypto/tls"
	"net"
	nethttp "net/http"
	"os"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/http2"

	"github.com/pakemessenger/messenger/internal/config"
	"github.com/pakemessenger/messenger/internal/constants"
	"github.com/pakemessenger/messenger/internal/logging"
)

// NewTransport returns the transport shared by downloads and icon fetches.
// Proxy settings come from HTTP_PROXY, HTTPS_PROXY and NO_PROXY.
func NewTransport() *nethttp.Transport {
	tr := &nethttp.Transport{
		Proxy: nethttp.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   constants.HTTPDialTimeout,
			KeepAlive: constants.HTTPDialKeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:          16,
		IdleConnTimeout:       constants.HTTPIdleConnTimeout,
		TLSHandshakeTimeout:   constants.HTTPTLSHandshakeTimeout,
		ExpectContinueTimeout: constants.HTTPExpectContinueTimeout,
		ForceAttemptHTTP2:     true,
	}

	_ = http2.ConfigureTransport(tr)

	// Set DISABLE_HTTP2=true to force HTTP/1.1
	if os.Getenv("DISABLE_HTTP2") == "true" {
		tr.ForceAttemptHTTP2 = false
		tr.TLSNextProto = make(map[string]func(string, *tls.Conn) nethttp.RoundTripper)
	}

	return tr
}

// NewDownloadClient builds the client used for file downloads.
//
// Downloads are not retried unless opts.DownloadRetries is raised, and the
// client has no overall deadline unless opts.HTTPTimeout is set. After the
// last attempt the final response or error is handed back unchanged so the
// caller can report it.
func NewDownloadClient(opts config.Options, logger *logging.Logger) *retryablehttp.Client {
	if logger == nil {
		logger = logging.Nop()
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = &nethttp.Client{
		Transport: NewTransport(),
		Timeout:   opts.HTTPTimeout,
	}
	client.RetryMax = opts.DownloadRetries
	client.RetryWaitMin = constants.RetryWaitMin
	client.RetryWaitMax = constants.RetryWaitMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = logging.RetryLogger{L: logger}

	return client
}
