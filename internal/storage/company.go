package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"proprofile/internal/domain"
)

// CompanyStore keeps the generator input next to each document as JSON.
type CompanyStore struct {
	db *DB
}

func NewCompanyStore(db *DB) *CompanyStore {
	return &CompanyStore{db: db}
}

func (s *CompanyStore) SaveCompany(documentID string, c *domain.CompanyData) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode company: %w", err)
	}
	_, err = s.db.Conn().Exec(
		`INSERT INTO companies (document_id, data_json, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(document_id) DO UPDATE SET data_json = excluded.data_json, updated_at = excluded.updated_at`,
		documentID, string(data), time.Now(),
	)
	return err
}

// LoadCompany returns empty data when nothing was stored for the document.
func (s *CompanyStore) LoadCompany(documentID string) (*domain.CompanyData, error) {
	var data string
	err := s.db.Conn().QueryRow(`SELECT data_json FROM companies WHERE document_id = ?`, documentID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.CompanyData{}, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	c := &domain.CompanyData{}
	if err := json.Unmarshal([]byte(data), c); err != nil {
		return nil, fmt.Errorf("decode company: %w", err)
	}
	return c, nil
}
