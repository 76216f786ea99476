package main

import (
	"testing"

	"github.com/milk9111/portalgun/ecs/component"
)

func TestSettingsModes(t *testing.T) {
	tests := []struct {
		name        string
		settings    Settings
		wantCapture component.CaptureMode
		wantPreview component.PreviewMode
	}{
		{"defaults", Settings{}, component.CaptureDirect, component.PreviewArrow},
		{"saved", Settings{CaptureMode: "projectile", PreviewMode: "full"}, component.CaptureProjectile, component.PreviewFull},
		{"unknown_falls_back", Settings{CaptureMode: "laser", PreviewMode: "long"}, component.CaptureDirect, component.PreviewArrow},
		{"round_trip", settingsFor(component.CaptureProjectile, component.PreviewArrow), component.CaptureProjectile, component.PreviewArrow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, p := tc.settings.Modes()
			if c != tc.wantCapture || p != tc.wantPreview {
				t.Fatalf("got %s/%s want %s/%s", c, p, tc.wantCapture, tc.wantPreview)
			}
		})
	}
}

func TestNilSettingsStore(t *testing.T) {
	var s *settingsStore
	if got := s.Load(); got != nil {
		t.Fatalf("nil store loaded %+v", got)
	}
	s.Save(Settings{CaptureMode: "direct"})

	empty := &settingsStore{}
	if got := empty.Load(); got != nil {
		t.Fatalf("store without manager loaded %+v", got)
	}
}
