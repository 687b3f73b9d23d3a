package manifest

import (
	"strconv"

	"github.com/matzehuels/webmanifest/pkg/errors"
)

// tokenTable maps each variant of a closed enumeration to its wire token.
// Index 0 is the unset variant and has no token.
type tokenTable[T ~int] struct {
	kind   string
	tokens []string
}

func (t tokenTable[T]) token(v T) (string, bool) {
	if v <= 0 || int(v) >= len(t.tokens) {
		return "", false
	}
	return t.tokens[v], true
}

func (t tokenTable[T]) marshal(v T) ([]byte, error) {
	s, ok := t.token(v)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidEnum, "invalid %s value %d", t.kind, int(v))
	}
	return []byte(s), nil
}

func (t tokenTable[T]) parse(s string) (T, error) {
	for i := 1; i < len(t.tokens); i++ {
		if t.tokens[i] == s {
			return T(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidEnum, "unknown %s %q", t.kind, s)
}

func (t tokenTable[T]) values() []T {
	out := make([]T, 0, len(t.tokens)-1)
	for i := 1; i < len(t.tokens); i++ {
		out = append(out, T(i))
	}
	return out
}

func invalidString(kind string, v int) string {
	return kind + "(" + strconv.Itoa(v) + ")"
}
