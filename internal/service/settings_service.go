package service

import (
	"fmt"
	"strconv"

	"proprofile/internal/interact"
	"proprofile/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Settings persistence
// ─────────────────────────────────────────────────────────────
//
// Window size, canvas zoom and the last opened document survive restarts
// as rows in app_settings.

// WindowSize holds the saved window dimensions.
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SettingsService persists editor preferences between sessions.
type SettingsService struct {
	store *storage.SettingsStore
}

// NewSettingsService accepts a nil store; loads then return defaults.
func NewSettingsService(store *storage.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

const (
	settingWindowWidth  = "window_width"
	settingWindowHeight = "window_height"
	settingZoom         = "zoom"
	settingLastDocument = "last_document"
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
)

// LoadWindowSize returns the saved window dimensions, or sensible defaults.
func (s *SettingsService) LoadWindowSize() WindowSize {
	w := s.intSetting(settingWindowWidth, defaultWindowWidth)
	h := s.intSetting(settingWindowHeight, defaultWindowHeight)
	if w < 800 {
		w = defaultWindowWidth
	}
	if h < 600 {
		h = defaultWindowHeight
	}
	return WindowSize{Width: w, Height: h}
}

// SaveWindowSize persists the current window dimensions.
func (s *SettingsService) SaveWindowSize(width, height int) error {
	if s.store == nil {
		return fmt.Errorf("settings: no store")
	}
	if err := s.store.Set(settingWindowWidth, strconv.Itoa(width)); err != nil {
		return err
	}
	return s.store.Set(settingWindowHeight, strconv.Itoa(height))
}

// LoadZoom returns the saved zoom, or fallback when unset or out of range.
func (s *SettingsService) LoadZoom(fallback float64) float64 {
	if s.store == nil {
		return fallback
	}
	v, ok, err := s.store.Get(settingZoom)
	if err != nil || !ok {
		return fallback
	}
	z, err := strconv.ParseFloat(v, 64)
	if err != nil || z < interact.MinZoom || z > interact.MaxZoom {
		return fallback
	}
	return z
}

func (s *SettingsService) SaveZoom(z float64) error {
	if s.store == nil {
		return fmt.Errorf("settings: no store")
	}
	return s.store.Set(settingZoom, strconv.FormatFloat(z, 'f', 2, 64))
}

// LastDocument is the id of the document open at last shutdown, or "".
func (s *SettingsService) LastDocument() string {
	if s.store == nil {
		return ""
	}
	v, _, _ := s.store.Get(settingLastDocument)
	return v
}

func (s *SettingsService) SaveLastDocument(id string) error {
	if s.store == nil {
		return fmt.Errorf("settings: no store")
	}
	return s.store.Set(settingLastDocument, id)
}

func (s *SettingsService) intSetting(key string, fallback int) int {
	if s.store == nil {
		return fallback
	}
	v, ok, err := s.store.Get(key)
	if err != nil || !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
