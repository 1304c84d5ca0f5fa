package utils

import (
	"crypto/tls"
	"errors"
	"net/http"
	"time"
)

// UserAgent is sent on outbound requests that do not set their own
const UserAgent = "ProfileRanker/1.0"

// ErrCrossHostRedirect is returned when a backend redirects to another host
var ErrCrossHostRedirect = errors.New("redirect to a different host refused")

// NewHTTPClient creates the client used for calls to the agent backend.
// Redirects are only followed within the original host, since request
// bodies carry resume text.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	transport.MaxIdleConnsPerHost = 10
	transport.ResponseHeaderTimeout = timeout

	return &http.Client{
		Timeout:       timeout,
		Transport:     &userAgentTransport{next: transport},
		CheckRedirect: sameHostRedirects,
	}
}

func sameHostRedirects(req *http.Request, via []*http.Request) error {
	if len(via) >= 3 {
		return http.ErrUseLastResponse
	}
	if req.URL.Host != via[0].URL.Host {
		return ErrCrossHostRedirect
	}
	return nil
}

type userAgentTransport struct {
	next http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", UserAgent)
	return t.next.RoundTrip(clone)
}
