package handler

import (
	"net/url"
	"strconv"
	"strings"
)

// firstValue reduces a possibly multi-valued query parameter to its
// first value. Absent keys and empty values both yield "", meaning "no
// constraint".
func firstValue(values url.Values, key string) string {
	vs := values[key]
	if len(vs) == 0 {
		return ""
	}
	return strings.TrimSpace(vs[0])
}

// pageValue parses the page parameter. Anything missing, non-numeric or
// below 1 is silently normalized to page 1; bad input is never an error
// for the user.
func pageValue(values url.Values) int {
	page, err := strconv.Atoi(firstValue(values, "page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
