// Package validator holds the pure field validators of the service.
// Every function is stateless and side-effect free: it takes a raw,
// untyped value as it arrived in the request body and returns either
// the normalized form or a rejection.
package validator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	// version nibble fixed to 4, variant nibble in 8/9/a/b
	uuidV4Re = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	panRe    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	mobileRe = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	digitRe  = regexp.MustCompile(`[^0-9]`)
)

// FullName trims surrounding whitespace and rejects non-string or
// empty values.
func FullName(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	return s, true
}

// NormalizeMobile reduces a raw value to a 10-digit Indian mobile
// number: non-digits are stripped, a "91" country prefix and a leading
// zero are dropped, and the result must start with 6-9. Idempotent.
func NormalizeMobile(raw any) (string, bool) {
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case float64:
		// JSON numbers decode as float64
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	default:
		return "", false
	}

	digits := digitRe.ReplaceAllString(s, "")
	if strings.HasPrefix(digits, "91") && len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	if len(digits) == 11 && strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}

	if !mobileRe.MatchString(digits) {
		return "", false
	}

	return digits, true
}

// PAN upper-cases and trims a raw tax identifier and accepts only the
// 5-letters + 4-digits + 1-letter form (e.g. ABCDE1234F). Idempotent.
func PAN(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if !panRe.MatchString(s) {
		return "", false
	}

	return s, true
}

// UUIDv4 accepts only the canonical textual form of a version-4 UUID,
// case-insensitive, and returns the parsed value.
func UUIDv4(raw any) (uuid.UUID, bool) {
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	s = strings.TrimSpace(s)
	if !uuidV4Re.MatchString(strings.ToLower(s)) {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// MissingKeys returns the required keys absent from obj, preserving the
// order of required. An empty result means all keys are present.
func MissingKeys(obj map[string]any, required []string) []string {
	var missing []string
	for _, k := range required {
		if _, ok := obj[k]; !ok {
			missing = append(missing, k)
		}
	}

	return missing
}
