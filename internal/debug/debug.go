// Package debug provides an HTTP transport that logs full request and
// response traffic for troubleshooting API calls.
package debug

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Transport wraps an http.RoundTripper and logs requests and responses to
// an output writer. Bearer tokens are redacted down to their last four
// characters.
type Transport struct {
	Base   http.RoundTripper
	Output io.Writer
}

// NewTransport creates a Transport over base (http.DefaultTransport if
// nil) writing to output (stderr if nil).
func NewTransport(base http.RoundTripper, output io.Writer) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if output == nil {
		output = os.Stderr
	}
	return &Transport{Base: base, Output: output}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	_, _ = fmt.Fprintf(t.Output, "\n--> %s %s\n", req.Method, req.URL)
	for key, values := range req.Header {
		val := strings.Join(values, ", ")
		if key == "Authorization" {
			val = redactBearer(values[0])
		}
		_, _ = fmt.Fprintf(t.Output, "    %s: %s\n", key, val)
	}
	t.logBody("    Body: ", req.Body, func(body io.ReadCloser) { req.Body = body }, 500)

	resp, err := t.Base.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		_, _ = fmt.Fprintf(t.Output, "<-- ERROR: %v (%s)\n\n", err, duration)
		return resp, err
	}

	_, _ = fmt.Fprintf(t.Output, "<-- %d %s (%s)\n", resp.StatusCode, resp.Status, duration)
	for key, values := range resp.Header {
		_, _ = fmt.Fprintf(t.Output, "    %s: %s\n", key, strings.Join(values, ", "))
	}
	t.logBody("    Body: ", resp.Body, func(body io.ReadCloser) { resp.Body = body }, 1000)
	_, _ = fmt.Fprintln(t.Output)

	return resp, nil
}

// logBody drains a body for logging and hands a replacement reader back so
// the request or response can still be consumed.
func (t *Transport) logBody(prefix string, body io.ReadCloser, restore func(io.ReadCloser), limit int) {
	if body == nil {
		return
	}
	data, err := io.ReadAll(body)
	if err != nil {
		_, _ = fmt.Fprintf(t.Output, "%s[ERROR reading body: %v]\n", prefix, err)
		return
	}
	restore(io.NopCloser(bytes.NewReader(data)))
	if len(data) == 0 {
		return
	}
	text := string(data)
	if len(text) > limit {
		text = text[:limit] + "... [truncated]"
	}
	_, _ = fmt.Fprintf(t.Output, "%s%s\n", prefix, text)
}

func redactBearer(val string) string {
	if !strings.HasPrefix(val, "Bearer ") {
		return val
	}
	token := val[len("Bearer "):]
	if len(token) > 10 {
		return "Bearer ..." + token[len(token)-4:]
	}
	return val
}
