// Package pagination computes the sliding window of page controls shown
// around the current page.
package pagination

// maxVisible is the widest run of numbered page controls.
const maxVisible = 5

// Entry is one rendered pagination control: either a page number or an
// ellipsis placeholder. Ellipsis entries carry no page value and are not
// clickable.
type Entry struct {
	Page     int
	Ellipsis bool
}

// Window returns the ordered controls for currentPage within totalPages:
// at most maxVisible contiguous page numbers centered on currentPage,
// clamped to [1, totalPages], with an ellipsis on each truncated side.
// Callers must pass a currentPage already clamped to [1, totalPages].
func Window(currentPage, totalPages int) []Entry {
	half := maxVisible / 2

	startPage := max(1, currentPage-half)
	endPage := min(totalPages, currentPage+half)

	// Re-extend toward the open edge when clamping narrowed the window.
	if endPage-startPage+1 < maxVisible {
		if startPage == 1 {
			endPage = min(totalPages, maxVisible)
		} else if endPage == totalPages {
			startPage = max(1, totalPages-maxVisible+1)
		}
	}

	entries := make([]Entry, 0, maxVisible+2)
	if startPage > 1 {
		entries = append(entries, Entry{Ellipsis: true})
	}
	for page := startPage; page <= endPage; page++ {
		entries = append(entries, Entry{Page: page})
	}
	if endPage < totalPages {
		entries = append(entries, Entry{Ellipsis: true})
	}
	return entries
}
