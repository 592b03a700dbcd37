package siteinfo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
	"github.com/nao1215/versioncompare/internal/model"
)

// NormalizeOption configures Normalize.
type NormalizeOption func(*normalizer)

type normalizer struct {
	repair bool
}

// WithRepair makes Normalize attempt a single JSON repair pass before
// giving up with ErrInvalidJSON. Off by default.
func WithRepair(enabled bool) NormalizeOption {
	return func(n *normalizer) {
		n.repair = enabled
	}
}

// Normalize decodes a siteinfo response body and converts it to a SiteInfo.
//
// Wiki-level properties missing from query.general default to "".
// Extension properties are copied only when present. Extensions without a
// name are skipped; a repeated name keeps the last entry.
func Normalize(data []byte, opts ...NormalizeOption) (*model.SiteInfo, error) {
	n := &normalizer{}
	for _, opt := range opts {
		opt(n)
	}

	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		if !n.repair {
			return nil, ErrInvalidJSON
		}
		repaired, err := jsonrepair.JSONRepair(string(data))
		if err != nil || !json.Valid([]byte(repaired)) {
			return nil, ErrInvalidJSON
		}
		data = []byte(repaired)
	}

	query, err := member(data, "query")
	if err != nil {
		return nil, err
	}
	general, err := member(query, "general")
	if err != nil {
		return nil, err
	}
	rawExtensions, err := member(query, "extensions")
	if err != nil {
		return nil, err
	}

	var props map[string]json.RawMessage
	if err := json.Unmarshal(general, &props); err != nil {
		return nil, fmt.Errorf("%w: query.general: %v", ErrMissingFields, err)
	}
	var extensions []map[string]json.RawMessage
	if err := json.Unmarshal(rawExtensions, &extensions); err != nil {
		return nil, fmt.Errorf("%w: query.extensions: %v", ErrMissingFields, err)
	}

	info := &model.SiteInfo{
		Extensions: make(map[string]model.ExtensionInfo, len(extensions)),
	}
	for _, name := range model.WikiProperties() {
		value, _ := scalarText(props[name])
		info.SetProperty(name, value)
	}

	for _, raw := range extensions {
		name, ok := scalarText(raw["name"])
		if !ok || name == "" {
			continue
		}
		var ext model.ExtensionInfo
		for _, prop := range model.ExtensionProperties() {
			if value, ok := scalarText(raw[prop]); ok {
				ext.SetProperty(prop, value)
			}
		}
		info.Extensions[name] = ext
	}
	info.ExtensionCount = len(info.Extensions)

	return info, nil
}

// member returns the value stored under key in the JSON object data.
// Keys match exactly; a missing key, a null value or a non-object data
// wraps ErrMissingFields.
func member(data []byte, key string) (json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	value, ok := obj[key]
	if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return nil, fmt.Errorf("%w: no %s", ErrMissingFields, key)
	}
	return value, nil
}

// scalarText returns the textual form of a JSON scalar. Strings are
// unquoted, numbers and booleans keep their literal spelling. Missing
// values, null, objects and arrays report false.
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[', 'n':
		return "", false
	default:
		return string(raw), true
	}
}
