package modio

import (
	"context"
	"fmt"
)

// Game represents a game profile on mod.io.
type Game struct {
	ID              int64           `json:"id"`
	Status          Status          `json:"status"`
	SubmittedBy     User            `json:"submitted_by"`
	DateAdded       Timestamp       `json:"date_added"`
	DateUpdated     Timestamp       `json:"date_updated"`
	DateLive        Timestamp       `json:"date_live"`
	Presentation    Presentation    `json:"presentation_option"`
	Submission      Submission      `json:"submission_option"`
	Curation        Curation        `json:"curation_option"`
	Community       Community       `json:"community_options"`
	Revenue         Revenue         `json:"revenue_options"`
	APIAccess       APIAccess       `json:"api_access_options"`
	Maturity        MaturityOptions `json:"maturity_options"`
	UGCName         string          `json:"ugc_name"`
	Icon            Image           `json:"icon"`
	Logo            Image           `json:"logo"`
	Header          Image           `json:"header"`
	Name            string          `json:"name"`
	NameID          string          `json:"name_id"`
	Summary         string          `json:"summary"`
	Instructions    string          `json:"instructions"`
	InstructionsURL string          `json:"instructions_url"`
	ProfileURL      string          `json:"profile_url"`
	TagOptions      []TagOption     `json:"tag_options"`

	client *Client
}

// Mod fetches a mod belonging to this game.
func (g *Game) Mod(ctx context.Context, id int64) (*Mod, error) {
	mod, err := get[Mod](ctx, g.client, fmt.Sprintf("/games/%d/mods/%d", g.ID, id))
	if err != nil {
		return nil, err
	}
	mod.client = g.client
	return mod, nil
}

// Mods lists the mods of this game. The filter may be nil.
func (g *Game) Mods(ctx context.Context, filter *Filter) ([]*Mod, Pagination, error) {
	mods, pg, err := getList[*Mod](ctx, g.client, fmt.Sprintf("/games/%d/mods", g.ID), filter)
	if err != nil {
		return nil, Pagination{}, err
	}
	for _, mod := range mods {
		mod.client = g.client
	}
	return mods, pg, nil
}

// Events lists mod events that occurred in this game, useful for keeping
// installed mods up to date. The filter may be nil.
func (g *Game) Events(ctx context.Context, filter *Filter) ([]Event, Pagination, error) {
	return getList[Event](ctx, g.client, fmt.Sprintf("/games/%d/mods/events", g.ID), filter)
}

// Tags lists the tag groups mods of this game can be flagged with.
func (g *Game) Tags(ctx context.Context, filter *Filter) ([]TagOption, Pagination, error) {
	return getList[TagOption](ctx, g.client, fmt.Sprintf("/games/%d/tags", g.ID), filter)
}
