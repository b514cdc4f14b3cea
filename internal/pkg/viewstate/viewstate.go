package viewstate

import (
	"errors"
	"fmt"
)

// View is one of the three client screens.
type View string

const (
	Map  View = "map"
	List View = "list"
	Form View = "form"
)

// Action is a navigation event the client shell can emit.
type Action string

const (
	ShowMap  Action = "show_map"
	ShowList Action = "show_list"
	Add      Action = "add"
	Created  Action = "created"
	Cancel   Action = "cancel"
)

// Initial is the view shown at startup.
const Initial = Map

var ErrInvalidTransition = errors.New("invalid view transition")

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case Map, List, Form:
		return true
	}
	return false
}

// Next resolves the view reached from current by action.
// Map and List navigate to each other freely, any view reaches Form via
// Add, and Form returns to List on a successful create or an explicit
// cancel. Everything else is rejected.
func Next(current View, action Action) (View, error) {
	if !current.Valid() {
		return "", fmt.Errorf("%w: unknown view %q", ErrInvalidTransition, current)
	}

	switch action {
	case ShowMap:
		if current == Form {
			return "", fmt.Errorf("%w: %q from %q", ErrInvalidTransition, action, current)
		}
		return Map, nil
	case ShowList:
		if current == Form {
			return "", fmt.Errorf("%w: %q from %q", ErrInvalidTransition, action, current)
		}
		return List, nil
	case Add:
		return Form, nil
	case Created, Cancel:
		if current != Form {
			return "", fmt.Errorf("%w: %q from %q", ErrInvalidTransition, action, current)
		}
		return List, nil
	}
	return "", fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
}
