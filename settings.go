package main

import (
	"encoding/json"
	"log"

	"github.com/milk9111/portalgun/ecs/component"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// Settings are the user choices kept between runs.
type Settings struct {
	CaptureMode string `json:"captureMode"`
	PreviewMode string `json:"previewMode"`
}

// settingsStore persists Settings through gdata. A nil manager turns every
// call into a no-op so the game still runs without a writable data dir.
type settingsStore struct {
	m *gdata.Manager
}

func openSettingsStore() *settingsStore {
	m, err := gdata.Open(gdata.Config{AppName: "portalgun"})
	if err != nil {
		log.Printf("settings: persistence unavailable: %v", err)
		return &settingsStore{}
	}
	return &settingsStore{m: m}
}

// Load returns the saved settings, or nil when none exist.
func (s *settingsStore) Load() *Settings {
	if s == nil || s.m == nil {
		return nil
	}
	data, err := s.m.LoadItem(settingsKey)
	if err != nil {
		log.Printf("settings: load: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}
	var out Settings
	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("settings: parse: %v", err)
		return nil
	}
	return &out
}

func (s *settingsStore) Save(settings Settings) {
	if s == nil || s.m == nil {
		return
	}
	data, err := json.Marshal(settings)
	if err != nil {
		log.Printf("settings: encode: %v", err)
		return
	}
	if err := s.m.SaveItem(settingsKey, data); err != nil {
		log.Printf("settings: save: %v", err)
	}
}

// Modes parses the saved modes. Unknown values fall back to the defaults.
func (s Settings) Modes() (component.CaptureMode, component.PreviewMode) {
	capture, err := component.ParseCaptureMode(s.CaptureMode)
	if err != nil {
		log.Printf("settings: %v", err)
	}
	preview, err := component.ParsePreviewMode(s.PreviewMode)
	if err != nil {
		log.Printf("settings: %v", err)
	}
	return capture, preview
}

func settingsFor(capture component.CaptureMode, preview component.PreviewMode) Settings {
	return Settings{CaptureMode: capture.String(), PreviewMode: preview.String()}
}
