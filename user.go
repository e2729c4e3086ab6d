package modio

// User represents a mod.io user profile.
type User struct {
	ID         int64     `json:"id"`
	NameID     string    `json:"name_id"`
	Username   string    `json:"username"`
	LastOnline Timestamp `json:"date_online"`
	Avatar     Avatar    `json:"avatar"`
	Timezone   string    `json:"timezone"`
	Language   string    `json:"language"`
	ProfileURL string    `json:"profile_url"`
}
