package domain

// Conventional slot counts the corporate-profile generator lays out.
const (
	HistorySlots   = 3
	LegalitySlots  = 3
	ValueSlots     = 4
	ServiceSlots   = 3
	AdvantageSlots = 4
	TeamSlots      = 2
	ProjectSlots   = 2
	ClientSlots    = 8
)

type HistoryEntry struct {
	Year  string `json:"year"`
	Event string `json:"event"`
}

type Offering struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyData is generator input, not part of the document. Any field may be
// empty and any list may be short; generators fill gaps per field and per slot.
type CompanyData struct {
	Name            string `json:"name"`
	Tagline         string `json:"tagline"`
	Industry        string `json:"industry"`
	About           string `json:"about"`
	Vision          string `json:"vision"`
	Mission         string `json:"mission"`
	Contact         string `json:"contact"`
	DirectorName    string `json:"directorName"`
	DirectorRole    string `json:"directorRole"`
	DirectorMessage string `json:"directorMessage"`
	Infrastructure  string `json:"infrastructure"`

	History     []HistoryEntry `json:"history"`
	Legalities  []string       `json:"legalities"`
	Values      []string       `json:"values"`
	Services    []Offering     `json:"services"`
	Advantages  []Offering     `json:"advantages"`
	TeamMembers []TeamMember   `json:"teamMembers"`
	Projects    []Project      `json:"projects"`
	Clients     []string       `json:"clients"`
}

// GeneratedContent is what the AI collaborator returns.
type GeneratedContent struct {
	About   string `json:"about"`
	Vision  string `json:"vision"`
	Mission string `json:"mission"`
}

// ApplyGenerated overwrites the three text fields wholesale.
func (c *CompanyData) ApplyGenerated(g GeneratedContent) {
	c.About = g.About
	c.Vision = g.Vision
	c.Mission = g.Mission
}

type CompanyStore interface {
	SaveCompany(documentID string, c *CompanyData) error
	LoadCompany(documentID string) (*CompanyData, error)
}
