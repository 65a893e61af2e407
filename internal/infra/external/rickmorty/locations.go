package rickmorty

import (
	"context"
	"errors"
	"net/url"

	"charview/internal/domain/catalog"
)

type locationListResponse struct {
	Results []catalog.Location `json:"results"`
}

// SearchLocations queries GET /location?name= and returns the matching
// places. A 404 means no match and yields an empty slice, not an error.
func (c *Client) SearchLocations(ctx context.Context, name string) ([]catalog.Location, error) {
	values := url.Values{}
	if name != "" {
		values.Set("name", name)
	}

	endpoint := c.baseURL + "/location"
	if encoded := values.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var payload locationListResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return payload.Results, nil
}

// LocationNames fetches the location list used to populate the place
// selector on the search form.
func (c *Client) LocationNames(ctx context.Context) ([]string, error) {
	locations, err := c.SearchLocations(ctx, "")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(locations))
	for _, loc := range locations {
		if loc.Name == "" {
			continue
		}
		names = append(names, loc.Name)
	}
	return names, nil
}
