package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "flexscan") {
		t.Errorf("GetConfigDir() = %v, should contain 'flexscan'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Radios == nil {
		t.Error("NewRegistry().Radios should not be nil")
	}

	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}

	if reg.Preferences.Port != 4992 {
		t.Errorf("NewRegistry().Preferences.Port = %v, want 4992", reg.Preferences.Port)
	}

	if reg.Preferences.ScanWindow != 10 {
		t.Errorf("NewRegistry().Preferences.ScanWindow = %v, want 10", reg.Preferences.ScanWindow)
	}
}

func TestRegistryEnsureRadio(t *testing.T) {
	reg := NewRegistry()

	// First call should create the entry
	radio1 := reg.EnsureRadio("1234-5678")
	if radio1 == nil {
		t.Fatal("EnsureRadio() returned nil")
	}

	// Second call should return same entry
	radio2 := reg.EnsureRadio("1234-5678")
	if radio1 != radio2 {
		t.Error("EnsureRadio() should return same instance for same serial")
	}

	// Different serial should create new entry
	radio3 := reg.EnsureRadio("9999-0000")
	if radio1 == radio3 {
		t.Error("EnsureRadio() should create new instance for different serial")
	}
}

func TestRegistryRecordSighting(t *testing.T) {
	reg := NewRegistry()

	before := time.Now()
	reg.RecordSighting("1234-5678", Sighting{
		IP:       "192.168.1.44",
		Port:     "4992",
		Status:   "Available",
		Model:    "FLEX-6600",
		Callsign: "N0CALL",
		Version:  "3.4.21",
	})
	after := time.Now()

	radio := reg.GetRadio("1234-5678")
	if radio == nil {
		t.Fatal("Radio should exist after RecordSighting()")
	}

	if radio.LastIP != "192.168.1.44" {
		t.Errorf("LastIP = %v, want 192.168.1.44", radio.LastIP)
	}
	if radio.Model != "FLEX-6600" {
		t.Errorf("Model = %v, want FLEX-6600", radio.Model)
	}
	if radio.LastStatus != "Available" {
		t.Errorf("LastStatus = %v, want Available", radio.LastStatus)
	}
	if radio.LastSeen.Before(before) || radio.LastSeen.After(after) {
		t.Errorf("LastSeen = %v, should be between %v and %v", radio.LastSeen, before, after)
	}
}

func TestRegistryRecordSighting_EmptyFieldsKeepStored(t *testing.T) {
	reg := NewRegistry()

	reg.RecordSighting("1234-5678", Sighting{IP: "192.168.1.44", Model: "FLEX-6600"})
	// A later announcement that omits fields must not wipe them.
	reg.RecordSighting("1234-5678", Sighting{Status: "In_Use"})

	radio := reg.GetRadio("1234-5678")
	if radio.LastIP != "192.168.1.44" {
		t.Errorf("LastIP = %v, want 192.168.1.44 to survive sparse sighting", radio.LastIP)
	}
	if radio.Model != "FLEX-6600" {
		t.Errorf("Model = %v, want FLEX-6600 to survive sparse sighting", radio.Model)
	}
	if radio.LastStatus != "In_Use" {
		t.Errorf("LastStatus = %v, want In_Use", radio.LastStatus)
	}
}

func TestRegistrySetRadioNickname(t *testing.T) {
	reg := NewRegistry()

	reg.SetRadioNickname("1234-5678", "Shack 6600")

	radio := reg.GetRadio("1234-5678")
	if radio == nil {
		t.Fatal("Radio should exist after SetRadioNickname()")
	}

	if radio.Nickname != "Shack 6600" {
		t.Errorf("Nickname = %v, want 'Shack 6600'", radio.Nickname)
	}
}

func TestRadioDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		radio    *Radio
		serial   string
		expected string
	}{
		{
			name:     "nickname wins",
			radio:    &Radio{Nickname: "Shack 6600", Model: "FLEX-6600"},
			serial:   "1234-5678",
			expected: "Shack 6600",
		},
		{
			name:     "model plus serial",
			radio:    &Radio{Model: "FLEX-6600"},
			serial:   "1234-5678",
			expected: "FLEX-6600 1234-5678",
		},
		{
			name:     "serial only",
			radio:    &Radio{},
			serial:   "1234-5678",
			expected: "1234-5678",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.radio.DisplayName(tt.serial); got != tt.expected {
				t.Errorf("Radio.DisplayName() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.SetRadioNickname("1234-5678", "Shack 6600")
	reg.RecordSighting("1234-5678", Sighting{
		IP:     "192.168.1.44",
		Status: "Available",
		Model:  "FLEX-6600",
	})

	data, err := yaml.Marshal(reg)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	loaded, err := decodeRegistry(data)
	if err != nil {
		t.Fatalf("decodeRegistry() error = %v", err)
	}

	radio := loaded.GetRadio("1234-5678")
	if radio == nil {
		t.Fatal("Radio should exist in loaded registry")
	}
	if radio.Nickname != "Shack 6600" {
		t.Errorf("Loaded nickname = %v, want 'Shack 6600'", radio.Nickname)
	}
	if radio.LastIP != "192.168.1.44" {
		t.Errorf("Loaded LastIP = %v, want 192.168.1.44", radio.LastIP)
	}
}

func TestDecodeRegistry_BadVersion(t *testing.T) {
	if _, err := decodeRegistry([]byte("version: 2\n")); err == nil {
		t.Error("decodeRegistry() error = nil, want unsupported version error")
	}
}

func TestDecodeRegistry_FillsDefaults(t *testing.T) {
	loaded, err := decodeRegistry([]byte("version: 1\n"))
	if err != nil {
		t.Fatalf("decodeRegistry() error = %v", err)
	}

	if loaded.Radios == nil {
		t.Error("decodeRegistry() should initialize Radios map")
	}
	if loaded.Preferences == nil {
		t.Fatal("decodeRegistry() should initialize Preferences")
	}
	if loaded.Preferences.Port != 4992 {
		t.Errorf("default Port = %v, want 4992", loaded.Preferences.Port)
	}
}
