package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"proprofile/internal/domain"
)

// DocumentStore implements domain.DocumentStore using SQLite.
type DocumentStore struct {
	db *DB
}

func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// elementStyle is the persisted form of the optional element attributes.
type elementStyle struct {
	FontSize        float64          `json:"fontSize,omitempty"`
	FontWeight      string           `json:"fontWeight,omitempty"`
	FontStyle       string           `json:"fontStyle,omitempty"`
	Color           string           `json:"color,omitempty"`
	TextAlign       domain.TextAlign `json:"textAlign,omitempty"`
	BackgroundColor string           `json:"backgroundColor,omitempty"`
	BorderRadius    float64          `json:"borderRadius,omitempty"`
	Opacity         *float64         `json:"opacity,omitempty"`
}

func styleOf(e domain.Element) elementStyle {
	return elementStyle{
		FontSize:        e.FontSize,
		FontWeight:      e.FontWeight,
		FontStyle:       e.FontStyle,
		Color:           e.Color,
		TextAlign:       e.TextAlign,
		BackgroundColor: e.BackgroundColor,
		BorderRadius:    e.BorderRadius,
		Opacity:         e.Opacity,
	}
}

func (s elementStyle) applyTo(e *domain.Element) {
	e.FontSize = s.FontSize
	e.FontWeight = s.FontWeight
	e.FontStyle = s.FontStyle
	e.Color = s.Color
	e.TextAlign = s.TextAlign
	e.BackgroundColor = s.BackgroundColor
	e.BorderRadius = s.BorderRadius
	e.Opacity = s.Opacity
}

// SaveDocument atomically replaces the stored document, its pages and their
// elements with d. Selection is session state and is not persisted.
func (s *DocumentStore) SaveDocument(d *domain.Document) error {
	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO documents (id, name, language, active_page_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, language = excluded.language,
		 active_page_id = excluded.active_page_id, updated_at = excluded.updated_at`,
		d.ID, d.Name, d.Language, d.ActivePageID, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM elements WHERE page_id IN (SELECT id FROM pages WHERE document_id = ?)`, d.ID); err != nil {
		return fmt.Errorf("delete elements: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM pages WHERE document_id = ?`, d.ID); err != nil {
		return fmt.Errorf("delete pages: %w", err)
	}

	for pi, p := range d.Pages {
		_, err := tx.Exec(
			`INSERT INTO pages (id, document_id, sort_order, background_color, background_image, background_opacity) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, d.ID, pi, p.BackgroundColor, p.BackgroundImage, p.BackgroundOpacity,
		)
		if err != nil {
			return fmt.Errorf("insert page %s: %w", p.ID, err)
		}
		for ei, e := range p.Elements {
			style, err := json.Marshal(styleOf(e))
			if err != nil {
				return fmt.Errorf("encode style %s: %w", e.ID, err)
			}
			_, err = tx.Exec(
				`INSERT INTO elements (id, page_id, type, x, y, width, height, z_index, content, style_json, text_key, edited, sort_order)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				e.ID, p.ID, e.Type, e.X, e.Y, e.Width, e.Height, e.ZIndex, e.Content, string(style), e.TextKey, e.Edited, ei,
			)
			if err != nil {
				return fmt.Errorf("insert element %s: %w", e.ID, err)
			}
		}
	}

	return tx.Commit()
}

func (s *DocumentStore) LoadDocument(id string) (*domain.Document, error) {
	d := &domain.Document{}
	err := s.db.Conn().QueryRow(
		`SELECT id, name, language, active_page_id, created_at, updated_at FROM documents WHERE id = ?`, id,
	).Scan(&d.ID, &d.Name, &d.Language, &d.ActivePageID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	rows, err := s.db.Conn().Query(
		`SELECT id, background_color, background_image, background_opacity FROM pages WHERE document_id = ? ORDER BY sort_order ASC`, id,
	)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		p := domain.Page{Elements: []domain.Element{}}
		if err := rows.Scan(&p.ID, &p.BackgroundColor, &p.BackgroundImage, &p.BackgroundOpacity); err != nil {
			rows.Close()
			return nil, err
		}
		d.Pages = append(d.Pages, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range d.Pages {
		els, err := s.listElements(d.Pages[i].ID)
		if err != nil {
			return nil, err
		}
		d.Pages[i].Elements = els
	}

	if len(d.Pages) > 0 && d.PageIndex(d.ActivePageID) < 0 {
		d.ActivePageID = d.Pages[0].ID
	}
	return d, nil
}

func (s *DocumentStore) listElements(pageID string) ([]domain.Element, error) {
	rows, err := s.db.Conn().Query(
		`SELECT id, type, x, y, width, height, z_index, content, style_json, text_key, edited FROM elements WHERE page_id = ? ORDER BY sort_order ASC`,
		pageID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	els := []domain.Element{}
	for rows.Next() {
		var e domain.Element
		var style string
		if err := rows.Scan(&e.ID, &e.Type, &e.X, &e.Y, &e.Width, &e.Height, &e.ZIndex, &e.Content, &style, &e.TextKey, &e.Edited); err != nil {
			return nil, err
		}
		var st elementStyle
		if err := json.Unmarshal([]byte(style), &st); err != nil {
			return nil, fmt.Errorf("decode style %s: %w", e.ID, err)
		}
		st.applyTo(&e)
		els = append(els, e)
	}
	return els, rows.Err()
}

// UpdatedAt returns when the document was last saved. The desktop app polls
// it to pick up saves made by a standalone MCP process.
func (s *DocumentStore) UpdatedAt(id string) (time.Time, error) {
	var t time.Time
	err := s.db.Conn().QueryRow(`SELECT updated_at FROM documents WHERE id = ?`, id).Scan(&t)
	if err != nil {
		return time.Time{}, fmt.Errorf("get document: %w", err)
	}
	return t, nil
}

func (s *DocumentStore) ListDocuments() ([]domain.DocumentSummary, error) {
	rows, err := s.db.Conn().Query(
		`SELECT d.id, d.name, d.updated_at, COUNT(p.id) FROM documents d
		 LEFT JOIN pages p ON p.document_id = d.id
		 GROUP BY d.id ORDER BY d.updated_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DocumentSummary
	for rows.Next() {
		var sm domain.DocumentSummary
		var updated sql.NullTime
		if err := rows.Scan(&sm.ID, &sm.Name, &updated, &sm.PageCount); err != nil {
			return nil, err
		}
		sm.UpdatedAt = updated.Time
		out = append(out, sm)
	}
	return out, rows.Err()
}

func (s *DocumentStore) DeleteDocument(id string) error {
	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		`DELETE FROM elements WHERE page_id IN (SELECT id FROM pages WHERE document_id = ?)`,
		`DELETE FROM pages WHERE document_id = ?`,
		`DELETE FROM companies WHERE document_id = ?`,
		`DELETE FROM documents WHERE id = ?`,
	}
	for _, q := range stmts {
		if _, err := tx.Exec(q, id); err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
	}
	return tx.Commit()
}
