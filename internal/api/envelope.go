package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The service sits behind an edge function that is loose about envelopes.
// Accepted profile shapes:
//
//	{...}                       bare record
//	{"profile": {...}}          wrapped
//	{"data": {...}}             wrapped
//	[{...}, ...]                array, first element taken
//	"<json string>"             any of the above, JSON-encoded again
//
// Accepted list shapes: {"items": [...]}, {"data": [...]}, or a bare array.
// Anything else decodes to nil (profile) or an empty list rather than an
// error; a body that is not JSON at all is the caller's error to raise.

// unwrapProfile extracts the single profile record from any accepted shape,
// returning nil when the payload holds no record.
func unwrapProfile(payload []byte) json.RawMessage {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil
	}

	switch payload[0] {
	case '"':
		var inner string
		if err := json.Unmarshal(payload, &inner); err != nil {
			return nil
		}
		return unwrapProfile([]byte(inner))
	case '[':
		var arr []json.RawMessage
		if err := json.Unmarshal(payload, &arr); err != nil || len(arr) == 0 {
			return nil
		}
		return unwrapProfile(arr[0])
	case '{':
		var envelope struct {
			Profile json.RawMessage `json:"profile"`
			Data    json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(payload, &envelope); err != nil {
			return nil
		}
		if inner := firstPresent(envelope.Profile, envelope.Data); inner != nil {
			return unwrapProfile(inner)
		}
		return payload
	default:
		return nil
	}
}

// unwrapList extracts the record array from any accepted list shape. A
// missing or malformed list yields an empty array, never an error.
func unwrapList(payload []byte) ([]json.RawMessage, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, nil
	}

	items := payload
	if payload[0] == '{' {
		var envelope struct {
			Items json.RawMessage `json:"items"`
			Data  json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(payload, &envelope); err != nil {
			return nil, fmt.Errorf("list envelope: %w", err)
		}
		items = firstPresent(envelope.Items, envelope.Data)
	}

	items = bytes.TrimSpace(items)
	if len(items) == 0 || items[0] != '[' {
		return nil, nil
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(items, &arr); err != nil {
		return nil, nil
	}
	return arr, nil
}

func firstPresent(candidates ...json.RawMessage) json.RawMessage {
	for _, c := range candidates {
		trimmed := bytes.TrimSpace(c)
		if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
			return trimmed
		}
	}
	return nil
}
