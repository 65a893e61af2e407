package rickmorty

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"charview/internal/domain/catalog"
)

type characterListResponse struct {
	Info struct {
		Pages int     `json:"pages"`
		Prev  *string `json:"prev"`
		Next  *string `json:"next"`
	} `json:"info"`
	Results []catalog.Character `json:"results"`
}

// SearchCharacters queries GET /character with server-side filtering and
// pagination. The upstream continuation URLs are reduced to presence
// markers. A 404 surfaces as catalog.ErrNotFound.
func (c *Client) SearchCharacters(ctx context.Context, query catalog.Query) ([]catalog.Character, catalog.PageInfo, error) {
	values := url.Values{}
	if query.Name != "" {
		values.Set("name", query.Name)
	}
	if query.Status != "" {
		values.Set("status", query.Status)
	}
	if query.Gender != "" {
		values.Set("gender", query.Gender)
	}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}

	endpoint := c.baseURL + "/character"
	if encoded := values.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var payload characterListResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, catalog.PageInfo{}, err
	}

	info := catalog.PageInfo{
		Pages: payload.Info.Pages,
		Prev:  payload.Info.Prev != nil,
		Next:  payload.Info.Next != nil,
	}
	if info.Pages < 1 {
		info.Pages = 1
	}

	return payload.Results, info, nil
}

// CharacterByID fetches a single character. A 404 surfaces as
// catalog.ErrNotFound.
func (c *Client) CharacterByID(ctx context.Context, id int) (catalog.Character, error) {
	var character catalog.Character
	endpoint := fmt.Sprintf("%s/character/%d", c.baseURL, id)
	if err := c.getJSON(ctx, endpoint, &character); err != nil {
		return catalog.Character{}, err
	}
	return character, nil
}

// CharactersByIDs batch-fetches characters via GET /character/{id1,id2,...}.
// The upstream returns a bare object for a single id and an array
// otherwise, so both shapes are accepted.
func (c *Client) CharactersByIDs(ctx context.Context, ids []int) ([]catalog.Character, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	endpoint := c.baseURL + "/character/" + strings.Join(parts, ",")

	if len(ids) == 1 {
		var single catalog.Character
		if err := c.getJSON(ctx, endpoint, &single); err != nil {
			return nil, err
		}
		return []catalog.Character{single}, nil
	}

	var characters []catalog.Character
	if err := c.getJSON(ctx, endpoint, &characters); err != nil {
		return nil, err
	}
	return characters, nil
}
