package service

import (
	"bytes"
	"encoding/json"
)

// normalizeContent coerces a raw JSON content value to text: strings pass
// through unchanged, anything else is serialized to its compact JSON form.
func normalizeContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}

	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeTags materializes the stored tags column back into a slice. Absent or
// unreadable values normalize to an empty slice, never nil.
func decodeTags(stored string) []string {
	if stored == "" {
		return []string{}
	}

	var tags []string
	if err := json.Unmarshal([]byte(stored), &tags); err != nil {
		return []string{}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}
