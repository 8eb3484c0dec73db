package layout

import (
	"strings"

	"proprofile/internal/domain"
)

// Field is one resolved piece of text. Key is set only when Value came from
// the dictionary, so only defaults follow a language switch.
type Field struct {
	Value string
	Key   Key
}

// Pair is a resolved two-part list slot (year/event, title/description, ...).
type Pair struct {
	First  Field
	Second Field
}

// Profile is CompanyData with every gap filled for one locale.
type Profile struct {
	Name            Field
	Tagline         Field
	Industry        Field
	About           Field
	Vision          Field
	Mission         Field
	Contact         Field
	DirectorName    Field
	DirectorRole    Field
	DirectorMessage Field
	Infrastructure  Field

	History    [domain.HistorySlots]Pair
	Legalities [domain.LegalitySlots]Field
	Values     [domain.ValueSlots]Field
	Services   [domain.ServiceSlots]Pair
	Advantages [domain.AdvantageSlots]Pair
	Team       [domain.TeamSlots]Pair
	Projects   [domain.ProjectSlots]Pair
	Clients    [domain.ClientSlots]Field
}

// Resolve substitutes localized defaults for every empty field and slot.
// Slots are filled independently; extra list entries beyond the slot count
// are ignored.
func Resolve(c domain.CompanyData, l Locale) Profile {
	p := Profile{
		Name:            l.field(c.Name, defaultKey("name")),
		Tagline:         l.field(c.Tagline, defaultKey("tagline")),
		Industry:        l.field(c.Industry, defaultKey("industry")),
		About:           l.field(c.About, defaultKey("about")),
		Vision:          l.field(c.Vision, defaultKey("vision")),
		Mission:         l.field(c.Mission, defaultKey("mission")),
		Contact:         l.field(c.Contact, defaultKey("contact")),
		DirectorName:    l.field(c.DirectorName, defaultKey("director_name")),
		DirectorRole:    l.field(c.DirectorRole, defaultKey("director_role")),
		DirectorMessage: l.field(c.DirectorMessage, defaultKey("director_message")),
		Infrastructure:  l.field(c.Infrastructure, defaultKey("infrastructure")),
	}
	for i := range p.History {
		h := at(c.History, i)
		p.History[i] = l.pair("history", i, "year", h.Year, "event", h.Event)
	}
	for i := range p.Legalities {
		p.Legalities[i] = l.field(at(c.Legalities, i), slotKey("legality", i+1, ""))
	}
	for i := range p.Values {
		p.Values[i] = l.field(at(c.Values, i), slotKey("value", i+1, ""))
	}
	for i := range p.Services {
		o := at(c.Services, i)
		p.Services[i] = l.pair("service", i, "title", o.Title, "description", o.Description)
	}
	for i := range p.Advantages {
		o := at(c.Advantages, i)
		p.Advantages[i] = l.pair("advantage", i, "title", o.Title, "description", o.Description)
	}
	for i := range p.Team {
		m := at(c.TeamMembers, i)
		p.Team[i] = l.pair("team", i, "name", m.Name, "role", m.Role)
	}
	for i := range p.Projects {
		pr := at(c.Projects, i)
		p.Projects[i] = l.pair("project", i, "name", pr.Name, "description", pr.Description)
	}
	for i := range p.Clients {
		p.Clients[i] = l.field(at(c.Clients, i), slotKey("client", i+1, ""))
	}
	return p
}

// field keeps a non-blank user value and otherwise falls back to k.
func (l Locale) field(v string, k Key) Field {
	if strings.TrimSpace(v) != "" {
		return Field{Value: l.decorate(k, v)}
	}
	return Field{Value: l.Render(k), Key: k}
}

// static renders a dictionary label that has no user counterpart.
func (l Locale) static(k Key) Field {
	return Field{Value: l.Render(k), Key: k}
}

func (l Locale) pair(list string, i int, f1, v1, f2, v2 string) Pair {
	return Pair{
		First:  l.field(v1, slotKey(list, i+1, f1)),
		Second: l.field(v2, slotKey(list, i+1, f2)),
	}
}

func at[T any](s []T, i int) T {
	var zero T
	if i < len(s) {
		return s[i]
	}
	return zero
}
