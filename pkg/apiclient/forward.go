package apiclient

import (
	"context"
	"net/http"
)

type forwardedHeadersKey struct{}

// forwardedHeaderNames are copied from the browser request onto upstream
// requests so the API sees the browser's own session.
var forwardedHeaderNames = []string{"Cookie", "Authorization"}

// WithForwardedHeaders returns a context carrying the credentials of the
// incoming browser request.
func WithForwardedHeaders(ctx context.Context, incoming http.Header) context.Context {
	forwarded := http.Header{}
	for _, name := range forwardedHeaderNames {
		for _, value := range incoming.Values(name) {
			forwarded.Add(name, value)
		}
	}
	return context.WithValue(ctx, forwardedHeadersKey{}, forwarded)
}

func forwardedHeaders(ctx context.Context) http.Header {
	h, _ := ctx.Value(forwardedHeadersKey{}).(http.Header)
	return h
}
