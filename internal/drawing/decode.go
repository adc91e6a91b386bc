package drawing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// envelope is the response wrapper used by the drawings API.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// unwrap returns the payload inside an API envelope, or data itself when it is not wrapped.
func unwrap(data []byte) ([]byte, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return data, nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	// A bare drawing may carry its own classification "success" flag; only data or error
	// alongside it marks an envelope.
	if env.Success == nil || (env.Data == nil && env.Error == "") {
		return data, nil
	}
	if !*env.Success {
		if env.Error == "" {
			env.Error = "request failed"
		}
		return nil, errors.New(env.Error)
	}
	return env.Data, nil
}

// Decode parses one drawing, either bare or wrapped in an API envelope.
func Decode(data []byte) (*Drawing, error) {
	payload, err := unwrap(data)
	if err != nil {
		return nil, fmt.Errorf("drawing: %w", err)
	}
	if len(payload) == 0 || string(payload) == "null" {
		return nil, fmt.Errorf("drawing: empty payload")
	}
	var d Drawing
	if err := json.Unmarshal(payload, &d); err != nil {
		return nil, fmt.Errorf("drawing: %w", err)
	}
	return &d, nil
}

// DecodeAll parses a file or response holding either a single drawing or an array of them.
func DecodeAll(data []byte) ([]*Drawing, error) {
	payload, err := unwrap(data)
	if err != nil {
		return nil, fmt.Errorf("drawing: %w", err)
	}
	if len(payload) > 0 && payload[0] == '[' {
		var out []*Drawing
		if err := json.Unmarshal(payload, &out); err != nil {
			return nil, fmt.Errorf("drawing: %w", err)
		}
		return out, nil
	}
	d, err := Decode(payload)
	if err != nil {
		return nil, err
	}
	return []*Drawing{d}, nil
}

// DecodeSummaries parses the drawings list endpoint.
func DecodeSummaries(data []byte) ([]Summary, error) {
	payload, err := unwrap(data)
	if err != nil {
		return nil, fmt.Errorf("drawing: %w", err)
	}
	var out []Summary
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("drawing: %w", err)
	}
	return out, nil
}
