package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	cases := []struct {
		name   string
		raw    any
		want   string
		wantOK bool
	}{
		{"plain", "Asha Rao", "Asha Rao", true},
		{"surrounding whitespace trimmed", "  Asha Rao \t", "Asha Rao", true},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
		{"not text", 42, "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FullName(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeMobile(t *testing.T) {
	cases := []struct {
		name   string
		raw    any
		want   string
		wantOK bool
	}{
		{"already normalized", "9876543210", "9876543210", true},
		{"country prefix with separators", "+91 98765 43210", "9876543210", true},
		{"country prefix no plus", "919876543210", "9876543210", true},
		{"leading zero", "09876543210", "9876543210", true},
		{"dashes", "98765-43210", "9876543210", true},
		{"json number", float64(9876543210), "9876543210", true},
		{"int", 9876543210, "9876543210", true},
		{"too short", "12345", "", false},
		{"bad leading digit", "1234567890", "", false},
		{"too long plain", "98765432101", "", false},
		{"starts with 91 but only 10 digits", "9187654321", "9187654321", true},
		{"not text or number", []any{"9876543210"}, "", false},
		{"nil", nil, "", false},
		{"empty", "", "", false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeMobile(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeMobile_Idempotent(t *testing.T) {
	for _, raw := range []string{"9876543210", "+91 98765 43210", "09876543210"} {
		first, ok := NormalizeMobile(raw)
		require.True(t, ok, raw)

		second, ok := NormalizeMobile(first)
		require.True(t, ok, raw)
		assert.Equal(t, first, second)
	}
}

func TestPAN(t *testing.T) {
	cases := []struct {
		name   string
		raw    any
		want   string
		wantOK bool
	}{
		{"upper", "ABCDE1234F", "ABCDE1234F", true},
		{"lower normalized", "abcde1234f", "ABCDE1234F", true},
		{"trimmed", " abcde1234f ", "ABCDE1234F", true},
		{"wrong shape", "AB1234567F", "", false},
		{"too short", "ABCDE123F", "", false},
		{"not text", 1234, "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PAN(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPAN_Idempotent(t *testing.T) {
	first, ok := PAN("abcde1234f")
	require.True(t, ok)

	second, ok := PAN(first)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestUUIDv4(t *testing.T) {
	valid := uuid.New().String()

	cases := []struct {
		name   string
		raw    any
		wantOK bool
	}{
		{"generated v4", valid, true},
		{"upper case accepted", "3F1C1A50-0C9C-4A7D-9F56-9A0E6B96B8AB", true},
		{"seeded manager id", "3f1c1a50-0c9c-4a7d-9f56-9a0e6b96b8ab", true},
		{"version nibble not 4", "3f1c1a50-0c9c-1a7d-9f56-9a0e6b96b8ab", false},
		{"variant nibble invalid", "3f1c1a50-0c9c-4a7d-0f56-9a0e6b96b8ab", false},
		{"not a uuid", "not-a-uuid", false},
		{"not text", 7, false},
		{"nil", nil, false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := UUIDv4(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, uuid.Nil, id)
			}
		})
	}
}

func TestMissingKeys(t *testing.T) {
	obj := map[string]any{
		"full_name": "Asha Rao",
		"mob_num":   "9876543210",
	}

	missing := MissingKeys(obj, []string{"full_name", "mob_num", "pan_num", "manager_id"})
	assert.Equal(t, []string{"pan_num", "manager_id"}, missing)

	assert.Empty(t, MissingKeys(obj, []string{"full_name", "mob_num"}))

	// present with a nil value still counts as present
	obj["pan_num"] = nil
	assert.Equal(t, []string{"manager_id"}, MissingKeys(obj, []string{"pan_num", "manager_id"}))
}
