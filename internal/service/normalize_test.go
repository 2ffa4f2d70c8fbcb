package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain string", `"hello"`, "hello"},
		{"empty string", `""`, ""},
		{"number", `42`, "42"},
		{"object", `{"a": 1, "b": [2, 3]}`, `{"a":1,"b":[2,3]}`},
		{"array", `[1, 2]`, `[1,2]`},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeContent(json.RawMessage(tt.input)))
		})
	}

	assert.Equal(t, "", normalizeContent(nil))
}

func TestTagCodec(t *testing.T) {
	assert.Equal(t, `[]`, encodeTags(nil))
	assert.Equal(t, `[]`, encodeTags([]string{}))
	assert.Equal(t, `["a","b"]`, encodeTags([]string{"a", "b"}))

	assert.Equal(t, []string{}, decodeTags(""))
	assert.Equal(t, []string{}, decodeTags("null"))
	assert.Equal(t, []string{}, decodeTags("not json"))
	assert.Equal(t, []string{"a", "b"}, decodeTags(`["a","b"]`))
}

func TestTagCodecRoundTrip(t *testing.T) {
	tags := []string{"work", "todo", "later"}
	assert.Equal(t, tags, decodeTags(encodeTags(tags)))
}
