package llm

import (
	"net"
	"net/http"
	"time"
)

// httpClientWithBudget splits a total wall-clock budget between the connect
// phase (at most 30s, at most 20% of the budget) and the rest of the
// request.
func httpClientWithBudget(total time.Duration) *http.Client {
	if total <= 0 {
		total = 180 * time.Second
	}
	connect := total / 5
	if connect > 30*time.Second {
		connect = 30 * time.Second
	}
	return &http.Client{
		Timeout: total,
		Transport: &http.Transport{
			DialContext:         (&net.Dialer{Timeout: connect}).DialContext,
			TLSHandshakeTimeout: connect,
		},
	}
}
