package types

import (
	"strconv"
	"strings"
)

// EnumValue is satisfied by every closed enumeration in this package. Each is
// a uint8 on the wire, and values at or above the number of defined
// members are rejected by decoders.
type EnumValue interface {
	~uint8
	Valid() bool
	String() string
}

func enumString(names []string, v uint8, typ string) string {
	if int(v) < len(names) {
		return names[v]
	}
	return typ + "(" + strconv.Itoa(int(v)) + ")"
}

// EnumCount returns the number of defined members of E.
func EnumCount[E EnumValue]() int {
	n := 0
	for ; n < 256; n++ {
		if !E(uint8(n)).Valid() {
			break
		}
	}
	return n
}

// EnumNames lists the member names of E in wire order.
func EnumNames[E EnumValue]() []string {
	n := EnumCount[E]()
	names := make([]string, n)
	for i := range names {
		names[i] = E(uint8(i)).String()
	}
	return names
}

// ParseEnum looks a member of E up by name. Matching ignores case,
// underscores, dashes and spaces, so "CheckBox", "check_box" and
// "check-box" all name the same role.
func ParseEnum[E EnumValue](s string) (E, error) {
	want := foldName(s)
	n := EnumCount[E]()
	for i := 0; i < n; i++ {
		v := E(uint8(i))
		if foldName(v.String()) == want {
			return v, nil
		}
	}
	var zero E
	return zero, Errorf(ErrKindNotFound, "unknown enum member", "%q", s)
}

func foldName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '_', '-', ' ':
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
