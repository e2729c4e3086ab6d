package modio

// Status is the moderation status of a game or mod.
type Status int

const (
	StatusNotAccepted Status = iota
	StatusAccepted
	StatusArchived
	StatusDeleted
)

func (s Status) String() string {
	switch s {
	case StatusNotAccepted:
		return "not_accepted"
	case StatusAccepted:
		return "accepted"
	case StatusArchived:
		return "archived"
	case StatusDeleted:
		return "deleted"
	}
	return "unknown"
}

// Presentation controls how a game's mods are displayed on mod.io.
type Presentation int

const (
	// PresentationGrid displays mods in a grid.
	PresentationGrid Presentation = iota
	// PresentationTable displays mods in a table.
	PresentationTable
)

// Submission controls where mod uploads may come from.
type Submission int

const (
	// SubmissionRestricted allows uploads only via tools created by the
	// game developers.
	SubmissionRestricted Submission = iota
	// SubmissionUnrestricted allows uploads from anywhere, including the
	// website and API.
	SubmissionUnrestricted
)

// Curation is the level of mod curation a game enforces.
type Curation int

const (
	// CurationNone makes mods immediately available to play.
	CurationNone Curation = iota
	// CurationPaid requires acceptance only for mods receiving donations.
	CurationPaid
	// CurationFull requires every mod to be accepted before listing.
	CurationFull
)

// Community is a bit field of community features enabled for a game.
type Community int

const (
	CommunityDiscussionBoards Community = 1 << iota
	CommunityGuidesNews
)

// Revenue is a bit field of revenue capabilities enabled for a game's mods.
type Revenue int

const (
	RevenueSold Revenue = 1 << iota
	RevenueDonations
	RevenueTraded
	RevenueScarcityControl
)

// APIAccess is a bit field of third-party API permissions for a game.
type APIAccess int

const (
	// APIAccessThirdParty allows third parties to access the game's API
	// endpoints.
	APIAccessThirdParty APIAccess = 1 << iota
	// APIAccessDirectDownloads allows mods to be downloaded directly
	// without a frequently rotating verification hash.
	APIAccessDirectDownloads
)

// MaturityOptions states whether a game lets mod developers flag mature
// content themselves.
type MaturityOptions int

const (
	MaturityForbidden MaturityOptions = iota
	MaturityAllowed
)

// Maturity is a bit field of mature content present in a mod.
type Maturity int

const (
	MaturityAlcohol Maturity = 1 << iota
	MaturityDrugs
	MaturityViolence
	MaturityExplicit
)

// VirusStatus is the malware scan state of an uploaded file.
type VirusStatus int

const (
	VirusNotScanned VirusStatus = iota
	VirusScanComplete
	VirusScanInProgress
	VirusFileTooLarge
	VirusFileNotFound
	VirusScanError
)

func (v VirusStatus) String() string {
	switch v {
	case VirusNotScanned:
		return "not_scanned"
	case VirusScanComplete:
		return "scan_complete"
	case VirusScanInProgress:
		return "in_progress"
	case VirusFileTooLarge:
		return "too_large"
	case VirusFileNotFound:
		return "file_not_found"
	case VirusScanError:
		return "scan_error"
	}
	return "unknown"
}

// Visibility of a mod on the site.
type Visibility int

const (
	VisibilityHidden Visibility = iota
	VisibilityPublic
)

// Level is a team member's permission level.
type Level int

const (
	LevelModerator Level = 1
	LevelCreator   Level = 4
	LevelAdmin     Level = 8
)

// Report is the nature of a content report.
type Report int

const (
	ReportGeneric Report = iota
	ReportDMCA
)

// RatingType is the direction of a submitted rating.
type RatingType int

const (
	RatingNegative RatingType = -1
	RatingNeutral  RatingType = 0
	RatingPositive RatingType = 1
)

// EventType identifies what a mod or user event describes. Values match the
// strings sent by the API.
type EventType string

const (
	EventModfileChanged  EventType = "MODFILE_CHANGED"
	EventModAvailable    EventType = "MOD_AVAILABLE"
	EventModUnavailable  EventType = "MOD_UNAVAILABLE"
	EventModEdited       EventType = "MOD_EDITED"
	EventModDeleted      EventType = "MOD_DELETED"
	EventModTeamChanged  EventType = "MOD_TEAM_CHANGED"
	EventUserTeamJoin    EventType = "USER_TEAM_JOIN"
	EventUserTeamLeave   EventType = "USER_TEAM_LEAVE"
	EventUserSubscribe   EventType = "USER_SUBSCRIBE"
	EventUserUnsubscribe EventType = "USER_UNSUBSCRIBE"
)
