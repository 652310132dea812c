package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeJSON renders v as compact JSON for a jsonb column. HTML characters and
// non-ASCII text are written as-is.
func EncodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
