package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON unmarshals a JSON object embedded in model output into T.
// It tolerates common quirks like markdown fences or prose around the object
// by cutting from the first '{' to the last '}'.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || start > end {
		return zero, fmt.Errorf("no JSON object found in response")
	}

	var result T
	if err := json.Unmarshal([]byte(response[start:end+1]), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}
