package catalog

import "errors"

// ErrNotFound signals that the upstream catalog has no matching resource.
// Queries translate it into an empty result rather than a failure.
var ErrNotFound = errors.New("catalog: not found")

// Query is the parameter set understood by the upstream character
// search. Empty fields are omitted from the request; Page values below 1
// mean the first page.
type Query struct {
	Name   string
	Status string
	Gender string
	Page   int
}
