package shelf

import "strings"

// AllBooks is the boundary name of the pseudo shelf spanning every
// predefined shelf.
const AllBooks = "All books"

// Selection is either every predefined shelf or one shelf chosen by name.
type Selection struct {
	all  bool
	name string
}

func AllShelves() Selection {
	return Selection{all: true}
}

func Named(name string) Selection {
	return Selection{name: name}
}

// ParseSelection turns a boundary shelf name into a Selection. AllBooks is
// matched ignoring case.
func ParseSelection(name string) Selection {
	if strings.EqualFold(name, AllBooks) {
		return AllShelves()
	}
	return Named(name)
}

func (s Selection) IsAll() bool {
	return s.all
}

// Name returns the chosen shelf name, or AllBooks.
func (s Selection) Name() string {
	if s.all {
		return AllBooks
	}
	return s.name
}
