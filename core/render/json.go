// Package render provides output renderers over the result envelope.
// This file implements the JSON renderer, the canonical interchange
// format for downstream consumers.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/cargotab/core"
)

// JSONRenderer serializes the envelope as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the envelope.
func (r *JSONRenderer) Render(env *core.Envelope) ([]byte, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
