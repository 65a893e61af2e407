package catalog

// DefaultPageSize is the number of characters the upstream API serves per
// page, reused for local pagination in location-scoped queries.
const DefaultPageSize = 20

// Character represents a single catalog entry as served by the upstream
// API. It is constructed from an upstream response and never mutated.
type Character struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Species  string   `json:"species"`
	Gender   string   `json:"gender"`
	Image    string   `json:"image"`
	Origin   PlaceRef `json:"origin"`
	Location PlaceRef `json:"location"`
	Episodes []string `json:"episode"`
}

// PlaceRef is a named reference to a place embedded in a character.
type PlaceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Location represents a place with its resident character references.
// Residents are URLs whose final path segment is a character id.
type Location struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Residents []string `json:"residents"`
}

// PageInfo carries pagination metadata for a result page. Prev and Next
// are presence markers only: in direct queries the upstream returns
// continuation URLs which are reduced to booleans, in location-scoped
// queries they are synthesized locally. Pages is always >= 1, even for
// empty results.
type PageInfo struct {
	Pages int
	Prev  bool
	Next  bool
}

// EmptyPageInfo is the page info attached to empty or failed results.
func EmptyPageInfo() PageInfo {
	return PageInfo{Pages: 1}
}
