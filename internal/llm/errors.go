package llm

import (
	"context"
	"errors"
	"net"

	"github.com/liushuangls/go-anthropic/v2"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// statusCode extracts the HTTP status from any provider's error type.
// Returns 0 when the error carries no status.
func statusCode(err error) int {
	var oaiErr *openai.APIError
	if errors.As(err, &oaiErr) {
		return oaiErr.HTTPStatusCode
	}
	var oaiReqErr *openai.RequestError
	if errors.As(err, &oaiReqErr) {
		return oaiReqErr.HTTPStatusCode
	}
	var antReqErr *anthropic.RequestError
	if errors.As(err, &antReqErr) {
		return antReqErr.StatusCode
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	return 0
}

// IsClientError reports whether the request itself was rejected (4xx). These
// will fail again on retry, so callers should move to the next model.
func IsClientError(err error) bool {
	code := statusCode(err)
	return code >= 400 && code < 500
}

// IsRetryable reports whether the error is transient: a timeout, a network
// failure, or a 5xx from the provider.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if code := statusCode(err); code >= 500 {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
