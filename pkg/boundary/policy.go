package boundary

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/axkit/pkg/types"
)

// StringPolicy decides what happens to a string that cannot cross the
// boundary intact. Outgoing, that is a Go string with an embedded NUL.
// Incoming, a C string that is not valid UTF-8.
type StringPolicy uint8

const (
	// StringAbsent reports an outgoing string with an embedded NUL as
	// absent, and decodes invalid incoming UTF-8 lossily.
	StringAbsent StringPolicy = iota
	// StringTruncate cuts an outgoing string at its first NUL, and decodes
	// invalid incoming UTF-8 lossily.
	StringTruncate
	// StringReject fails the operation in both directions.
	StringReject
)

var policyNames = [...]string{"absent", "truncate", "reject"}

func (p StringPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("StringPolicy(%d)", uint8(p))
}

// ParseStringPolicy accepts the names returned by String.
func ParseStringPolicy(s string) (StringPolicy, error) {
	for i, n := range policyNames {
		if strings.EqualFold(s, n) {
			return StringPolicy(i), nil
		}
	}
	return 0, types.Errorf(types.ErrKindNotFound, "string policy", "unknown policy %q", s)
}

// outgoing returns the NUL-terminated bytes of s, or nil for absent.
func (p StringPolicy) outgoing(s string) ([]byte, error) {
	i := strings.IndexByte(s, 0)
	if i < 0 {
		return append([]byte(s), 0), nil
	}
	switch p {
	case StringTruncate:
		return append([]byte(s[:i]), 0), nil
	case StringReject:
		return nil, fmt.Errorf("embedded NUL at byte %d: %w", i, types.ErrMalformedString)
	default:
		return nil, nil
	}
}

// incoming decodes the bytes of a C string, up to its first NUL.
func (p StringPolicy) incoming(raw []byte, limit int) (string, error) {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	if len(raw) > limit {
		return "", types.Errorf(types.ErrKindInvalid, "string", "%d bytes exceeds limit %d", len(raw), limit)
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	if p == StringReject {
		return "", fmt.Errorf("invalid UTF-8: %w", types.ErrMalformedString)
	}
	out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), raw)
	if err != nil || !utf8.Valid(out) {
		return strings.ToValidUTF8(string(raw), "�"), nil
	}
	return string(out), nil
}
