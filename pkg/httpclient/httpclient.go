// pkg/httpclient/httpclient.go

package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

var defaultClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

// DefaultClient returns the preconfigured HTTP client used across
// commit-buddy. Per-request deadlines come from the caller's context.
func DefaultClient() *http.Client {
	return defaultClient
}

// SetDefaultClient allows replacing the default client for testing purposes.
func SetDefaultClient(client *http.Client) {
	defaultClient = client
}
