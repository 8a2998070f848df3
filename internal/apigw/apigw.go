// Package apigw adapts API Gateway HTTP proxy events to a standard
// http.Handler, so the same routes serve both the Lambda entrypoint and the
// long-running server.
package apigw

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Handler wraps an http.Handler behind the API Gateway v2 payload format.
type Handler struct {
	next http.Handler
}

// New creates a Handler around next.
func New(next http.Handler) *Handler {
	return &Handler{next: next}
}

// Handle serves a single API Gateway event. It is designed to be passed to
// lambda.Start.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	r, err := newRequest(ctx, req)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusBadRequest,
			Body:       "malformed request",
		}, nil
	}

	w := &responseWriter{header: make(http.Header)}
	h.next.ServeHTTP(w, r)
	return w.result(), nil
}

// newRequest reconstructs an http.Request from the proxy event.
func newRequest(ctx context.Context, req events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body := req.Body
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, err
		}
		body = string(decoded)
	}

	u := url.URL{
		Path:     req.RawPath,
		RawQuery: req.RawQueryString,
	}
	if u.Path == "" {
		u.Path = "/"
	}

	method := req.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}

	r, err := http.NewRequestWithContext(ctx, method, u.String(), strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		r.Header.Set(k, v)
	}
	for _, c := range req.Cookies {
		r.Header.Add("Cookie", c)
	}
	r.Host = req.RequestContext.DomainName
	r.RemoteAddr = req.RequestContext.HTTP.SourceIP
	return r, nil
}

// responseWriter captures a handler's response for the proxy reply.
type responseWriter struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func (w *responseWriter) Header() http.Header {
	return w.header
}

func (w *responseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
}

func (w *responseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(p)
}

func (w *responseWriter) result() events.APIGatewayV2HTTPResponse {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	headers := make(map[string]string, len(w.header))
	for k, values := range w.header {
		headers[k] = strings.Join(values, ",")
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       w.body.String(),
	}
}
