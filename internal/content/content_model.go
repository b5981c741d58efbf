package content

// Achievement is a headline stat shown in the about section.
// IconName is one of "Trophy", "Medal" or "Award"; Count is free text
// (e.g. "12", "5x").
type Achievement struct {
	ID       string `json:"id"`
	IconName string `json:"iconName"`
	Title    string `json:"title"`
	Count    string `json:"count"`
	Subtitle string `json:"subtitle"`
}

func (a Achievement) RecordID() string { return a.ID }

// GalleryImage is a single gallery entry. Src may be a remote URL or a
// data URL.
type GalleryImage struct {
	ID  string `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

func (g GalleryImage) RecordID() string { return g.ID }

// Sport is one of the club's sports programs.
type Sport struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Schedule string  `json:"schedule"`
	Venue    string  `json:"venue"`
	Captain  string  `json:"captain"`
	Coach    string  `json:"coach"`
	Rating   float64 `json:"rating"`  // 0–5
	Members  int     `json:"members"` // non-negative
	Featured bool    `json:"featured"`
}

func (s Sport) RecordID() string { return s.ID }

// Event is an upcoming tournament, match or club event.
type Event struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Venue  string `json:"venue"`
	Type   string `json:"type"`
	Status string `json:"status"` // "Registration Open" | "Coming Soon" | "Closed"
}

func (e Event) RecordID() string { return e.ID }

// TeamMember is a staff member or student office bearer. Image holds
// either an initials string (max 3 chars) or an image URL.
type TeamMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (t TeamMember) RecordID() string { return t.ID }

// Registration is one signup from the public registration form.
// RegisteredAt is stamped once at creation and never mutated; the
// collection is append/delete only.
type Registration struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	RegisterNumber string `json:"registerNumber"`
	Department     string `json:"department"`
	Year           string `json:"year"`
	Sport          string `json:"sport"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	RegisteredAt   string `json:"registeredAt"`
}

func (r Registration) RecordID() string { return r.ID }

// Allowed enum values, shared by request validation.
const (
	IconTrophy = "Trophy"
	IconMedal  = "Medal"
	IconAward  = "Award"

	StatusRegistrationOpen = "Registration Open"
	StatusComingSoon       = "Coming Soon"
	StatusClosed           = "Closed"
)
