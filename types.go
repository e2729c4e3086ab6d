package modio

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp wraps time.Time for JSON fields the API sends as Unix seconds.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON decodes a Unix-seconds integer. Zero decodes to the zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var secs int64
	if err := json.Unmarshal(data, &secs); err != nil {
		return fmt.Errorf("decode unix timestamp: %w", err)
	}
	if secs == 0 {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.Unix(secs, 0).UTC()
	return nil
}

// MarshalJSON encodes back to Unix seconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return json.Marshal(t.Unix())
}

// Message is the generic status body returned by write endpoints.
type Message struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (m *Message) String() string {
	return fmt.Sprintf("%d : %s", m.Code, m.Message)
}

// Image holds the logo, icon or header artwork of a game or mod.
type Image struct {
	Filename string `json:"filename"`
	Original string `json:"original"`
	Small    string `json:"thumb_320x180,omitempty"`
	Medium   string `json:"thumb_640x360,omitempty"`
	Large    string `json:"thumb_1280x720,omitempty"`
}

// Avatar holds a user's avatar images.
type Avatar struct {
	Filename string `json:"filename"`
	Original string `json:"original"`
	Thumb50  string `json:"thumb_50x50,omitempty"`
	Thumb100 string `json:"thumb_100x100,omitempty"`
}

// Download describes a time-limited binary download URL.
type Download struct {
	BinaryURL   string    `json:"binary_url"`
	DateExpires Timestamp `json:"date_expires"`
}

// Expired reports whether the download URL is no longer valid.
func (d Download) Expired() bool {
	return d.DateExpires.Before(time.Now())
}

// FileHash carries checksums for an uploaded file.
type FileHash struct {
	MD5 string `json:"md5"`
}

// Event records a change to a mod or to the authenticated user's
// relationship with one.
type Event struct {
	ID        int64     `json:"id"`
	ModID     int64     `json:"mod_id"`
	UserID    int64     `json:"user_id"`
	GameID    int64     `json:"game_id,omitempty"`
	DateAdded Timestamp `json:"date_added"`
	Type      EventType `json:"event_type"`
}

// Comment is a comment posted on a mod profile. Thread position encodes
// nesting: "01" is the first top-level comment, "01.02" a reply to it.
type Comment struct {
	ID             int64     `json:"id"`
	ModID          int64     `json:"mod_id"`
	User           User      `json:"user"`
	DateAdded      Timestamp `json:"date_added"`
	ReplyID        int64     `json:"reply_id"`
	ThreadPosition string    `json:"thread_position"`
	Karma          int       `json:"karma"`
	KarmaGuest     int       `json:"karma_guest"`
	Content        string    `json:"content"`
}

// Tag is a single tag applied to a mod.
type Tag struct {
	Name      string    `json:"name"`
	DateAdded Timestamp `json:"date_added"`
}

// TagOption is a group of tags a game makes available for its mods.
type TagOption struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"` // "checkboxes" or "dropdown"
	Hidden bool     `json:"hidden"`
	Tags   []string `json:"tags"`
}

// Dependency marks another mod a mod depends on.
type Dependency struct {
	ModID     int64     `json:"mod_id"`
	DateAdded Timestamp `json:"date_added"`
}

// Rating is a rating the authenticated user submitted for a mod.
type Rating struct {
	GameID    int64      `json:"game_id"`
	ModID     int64      `json:"mod_id"`
	Rating    RatingType `json:"rating"`
	DateAdded Timestamp  `json:"date_added"`
}

// Stats summarizes the popularity and rating figures of a mod. The figures
// are cached upstream; poll again after DateExpires.
type Stats struct {
	ModID                     int64     `json:"mod_id"`
	PopularityRankPosition    int       `json:"popularity_rank_position"`
	PopularityRankTotalMods   int       `json:"popularity_rank_total_mods"`
	DownloadsTotal            int       `json:"downloads_total"`
	SubscribersTotal          int       `json:"subscribers_total"`
	RatingsTotal              int       `json:"ratings_total"`
	RatingsPositive           int       `json:"ratings_positive"`
	RatingsNegative           int       `json:"ratings_negative"`
	RatingsPercentagePositive int       `json:"ratings_percentage_positive"`
	RatingsWeightedAggregate  float64   `json:"ratings_weighted_aggregate"`
	RatingsDisplayText        string    `json:"ratings_display_text"`
	DateExpires               Timestamp `json:"date_expires"`
}

// Stale reports whether the stats should be polled again.
func (s Stats) Stale() bool {
	return s.DateExpires.Before(time.Now())
}

// TeamMember is a user in the context of a mod team.
type TeamMember struct {
	TeamID    int64     `json:"id"`
	User      User      `json:"user"`
	Level     Level     `json:"level"`
	DateAdded Timestamp `json:"date_added"`
	Position  string    `json:"position"`
}
