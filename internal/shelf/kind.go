package shelf

import (
	"fmt"
	"strings"
)

// Kind identifies one of the predefined shelves every user has.
type Kind string

const (
	KindToRead       Kind = "TO_READ"
	KindReading      Kind = "READING"
	KindRead         Kind = "READ"
	KindDidNotFinish Kind = "DID_NOT_FINISH"
)

// kinds is the declaration order. Listing operations follow it.
var kinds = [...]Kind{KindToRead, KindReading, KindRead, KindDidNotFinish}

var displayNames = map[Kind]string{
	KindToRead:       "To read",
	KindReading:      "Reading",
	KindRead:         "Read",
	KindDidNotFinish: "Did not finish",
}

// kindsByName is keyed by the lower-cased display name.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kinds))
	for _, k := range kinds {
		m[strings.ToLower(displayNames[k])] = k
	}
	return m
}()

// Kinds returns the predefined shelf kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds[:])
	return out
}

// String returns the display name, e.g. "Did not finish".
func (k Kind) String() string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	return string(k)
}

func (k Kind) IsValid() bool {
	_, ok := displayNames[k]
	return ok
}

// IsPredefined reports whether name is, ignoring case, the display name of a
// predefined shelf.
func IsPredefined(name string) bool {
	_, ok := kindsByName[strings.ToLower(name)]
	return ok
}

// ResolveKind maps a display name to its Kind, ignoring case. The error wraps
// ErrUnknownShelf.
func ResolveKind(name string) (Kind, error) {
	if k, ok := kindsByName[strings.ToLower(name)]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShelf, name)
}

// PredefinedNames returns the display names of the predefined shelves in
// declaration order.
func PredefinedNames() []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, displayNames[k])
	}
	return names
}

// order is the position of k in declaration order; unknown kinds sort last.
func (k Kind) order() int {
	for i, known := range kinds {
		if k == known {
			return i
		}
	}
	return len(kinds)
}
