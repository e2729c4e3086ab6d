package modio

import (
	"context"
	"fmt"
)

// Mod represents a mod profile on mod.io.
type Mod struct {
	ID           int64      `json:"id"`
	GameID       int64      `json:"game_id"`
	Status       Status     `json:"status"`
	Visibility   Visibility `json:"visible"`
	SubmittedBy  User       `json:"submitted_by"`
	DateAdded    Timestamp  `json:"date_added"`
	DateUpdated  Timestamp  `json:"date_updated"`
	DateLive     Timestamp  `json:"date_live"`
	Maturity     Maturity   `json:"maturity_option"`
	Logo         Image      `json:"logo"`
	HomepageURL  string     `json:"homepage_url"`
	Name         string     `json:"name"`
	NameID       string     `json:"name_id"`
	Summary      string     `json:"summary"`
	Description  string     `json:"description"`
	MetadataBlob string     `json:"metadata_blob"`
	ProfileURL   string     `json:"profile_url"`
	Media        ModMedia   `json:"media"`
	Modfile      *Modfile   `json:"modfile"`
	Stats        Stats      `json:"stats"`
	Tags         []Tag      `json:"tags"`

	client *Client
}

// ModMedia holds the additional media attached to a mod profile.
type ModMedia struct {
	YouTube   []string `json:"youtube"`
	Sketchfab []string `json:"sketchfab"`
	Images    []Image  `json:"images"`
}

// Modfile represents an uploaded release of a mod. Instances returned by
// Client.MyModfiles lack a game ID and cannot resolve their download
// endpoint paths.
type Modfile struct {
	ID            int64       `json:"id"`
	ModID         int64       `json:"mod_id"`
	DateAdded     Timestamp   `json:"date_added"`
	DateScanned   Timestamp   `json:"date_scanned"`
	VirusStatus   VirusStatus `json:"virus_status"`
	VirusPositive bool        `json:"virus_positive"`
	VirusHash     string      `json:"virustotal_hash"`
	Filesize      int64       `json:"filesize"`
	Filehash      FileHash    `json:"filehash"`
	Filename      string      `json:"filename"`
	Version       string      `json:"version"`
	Changelog     string      `json:"changelog"`
	MetadataBlob  string      `json:"metadata_blob"`
	Download      Download    `json:"download"`
}

func (m *Mod) path() string {
	return fmt.Sprintf("/games/%d/mods/%d", m.GameID, m.ID)
}

// File fetches a specific release of this mod.
func (m *Mod) File(ctx context.Context, id int64) (*Modfile, error) {
	return get[Modfile](ctx, m.client, fmt.Sprintf("%s/files/%d", m.path(), id))
}

// Files lists the releases of this mod. The filter may be nil.
func (m *Mod) Files(ctx context.Context, filter *Filter) ([]*Modfile, Pagination, error) {
	return getList[*Modfile](ctx, m.client, m.path()+"/files", filter)
}

// Events lists the events that occurred on this mod. The filter may be nil.
func (m *Mod) Events(ctx context.Context, filter *Filter) ([]Event, Pagination, error) {
	return getList[Event](ctx, m.client, m.path()+"/events", filter)
}

// GetTags lists the tags currently applied to this mod.
func (m *Mod) GetTags(ctx context.Context, filter *Filter) ([]Tag, Pagination, error) {
	return getList[Tag](ctx, m.client, m.path()+"/tags", filter)
}

// Dependencies lists the mods this mod depends on.
func (m *Mod) Dependencies(ctx context.Context, filter *Filter) ([]Dependency, Pagination, error) {
	return getList[Dependency](ctx, m.client, m.path()+"/dependencies", filter)
}

// Comments lists the comments posted on this mod's profile. The filter may
// be nil.
func (m *Mod) Comments(ctx context.Context, filter *Filter) ([]Comment, Pagination, error) {
	return getList[Comment](ctx, m.client, m.path()+"/comments", filter)
}

// Team lists the members of the team maintaining this mod.
func (m *Mod) Team(ctx context.Context, filter *Filter) ([]TeamMember, Pagination, error) {
	return getList[TeamMember](ctx, m.client, m.path()+"/team", filter)
}

// GetStats fetches a fresh statistics snapshot for this mod. The copy
// embedded in the Mod struct is not refreshed.
func (m *Mod) GetStats(ctx context.Context) (*Stats, error) {
	return get[Stats](ctx, m.client, m.path()+"/stats")
}
