package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"proprofile/internal/domain"
)

// ── Field/value CSV ─────────────────────────────────────────
// One row per field:
//
//	field,value[,detail]
//	name,Acme Logistics
//	values,Integrity
//	history,2010,Founded in Jakarta
//	services,Freight,Door-to-door delivery
//
// List fields may repeat. Two-part entries (history, services, advantages,
// teamMembers, projects) take a third column. A leading "field" header row
// is skipped.

var textFields = map[string]func(c *domain.CompanyData) *string{
	"name":            func(c *domain.CompanyData) *string { return &c.Name },
	"tagline":         func(c *domain.CompanyData) *string { return &c.Tagline },
	"industry":        func(c *domain.CompanyData) *string { return &c.Industry },
	"about":           func(c *domain.CompanyData) *string { return &c.About },
	"vision":          func(c *domain.CompanyData) *string { return &c.Vision },
	"mission":         func(c *domain.CompanyData) *string { return &c.Mission },
	"contact":         func(c *domain.CompanyData) *string { return &c.Contact },
	"directorname":    func(c *domain.CompanyData) *string { return &c.DirectorName },
	"directorrole":    func(c *domain.CompanyData) *string { return &c.DirectorRole },
	"directormessage": func(c *domain.CompanyData) *string { return &c.DirectorMessage },
	"infrastructure":  func(c *domain.CompanyData) *string { return &c.Infrastructure },
}

var listFields = map[string]func(c *domain.CompanyData) *[]string{
	"legalities": func(c *domain.CompanyData) *[]string { return &c.Legalities },
	"values":     func(c *domain.CompanyData) *[]string { return &c.Values },
	"clients":    func(c *domain.CompanyData) *[]string { return &c.Clients },
}

var pairFields = map[string]func(c *domain.CompanyData, a, b string){
	"history": func(c *domain.CompanyData, a, b string) {
		c.History = append(c.History, domain.HistoryEntry{Year: a, Event: b})
	},
	"services": func(c *domain.CompanyData, a, b string) {
		c.Services = append(c.Services, domain.Offering{Title: a, Description: b})
	},
	"advantages": func(c *domain.CompanyData, a, b string) {
		c.Advantages = append(c.Advantages, domain.Offering{Title: a, Description: b})
	},
	"teammembers": func(c *domain.CompanyData, a, b string) {
		c.TeamMembers = append(c.TeamMembers, domain.TeamMember{Name: a, Role: b})
	},
	"projects": func(c *domain.CompanyData, a, b string) {
		c.Projects = append(c.Projects, domain.Project{Name: a, Description: b})
	},
}

// ReadCSV parses field/value rows into company data.
func ReadCSV(r io.Reader) (domain.CompanyData, error) {
	var c domain.CompanyData

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return c, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return c, fmt.Errorf("empty csv file")
	}

	for i, row := range rows {
		key := strings.ToLower(strings.TrimSpace(row[0]))
		if key == "" || strings.HasPrefix(key, "#") || (i == 0 && key == "field") {
			continue
		}
		value, detail := cell(row, 1), cell(row, 2)

		if f, ok := textFields[key]; ok {
			*f(&c) = value
			continue
		}
		if f, ok := listFields[key]; ok {
			if value != "" {
				*f(&c) = append(*f(&c), value)
			}
			continue
		}
		if f, ok := pairFields[key]; ok {
			if value != "" || detail != "" {
				f(&c, value, detail)
			}
			continue
		}
		return c, fmt.Errorf("csv line %d: unknown field %q", i+1, row[0])
	}
	return c, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
