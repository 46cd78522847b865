package config

import "time"

// Registry represents the entire user configuration file.
// This stores user-defined metadata for radios and application preferences.
type Registry struct {
	Version     int               `yaml:"version"`
	Radios      map[string]*Radio `yaml:"radios,omitempty"` // Keyed by radio serial number
	Preferences *Preferences      `yaml:"preferences,omitempty"`
}

// Radio represents stored metadata for a single FlexRadio transceiver.
// This is keyed by the radio's serial number in the Registry.
type Radio struct {
	Nickname   string    `yaml:"nickname,omitempty"`    // User-chosen name, overrides the broadcast one
	Model      string    `yaml:"model,omitempty"`       // Model identifier from the last announcement
	Callsign   string    `yaml:"callsign,omitempty"`    // Registered operator identifier
	Version    string    `yaml:"version,omitempty"`     // Firmware version from the last announcement
	LastIP     string    `yaml:"last_ip,omitempty"`     // Last announced address
	LastPort   string    `yaml:"last_port,omitempty"`   // Last announced control port
	LastStatus string    `yaml:"last_status,omitempty"` // Last announced connection state
	LastSeen   time.Time `yaml:"last_seen,omitempty"`   // When the last announcement arrived
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	BindAddress string `yaml:"bind_address"` // Discovery bind address
	Port        int    `yaml:"port"`         // Discovery UDP port
	ScanWindow  int    `yaml:"scan_window"`  // Default scan duration in seconds
	AutoSave    bool   `yaml:"auto_save"`    // Record sightings in this file after a scan
}

// Sighting carries the fields of one decoded announcement that are
// worth remembering between runs. Empty fields leave the stored value
// untouched.
type Sighting struct {
	IP       string
	Port     string
	Status   string
	Model    string
	Callsign string
	Version  string
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Radios:  make(map[string]*Radio),
		Preferences: &Preferences{
			BindAddress: "0.0.0.0",
			Port:        4992,
			ScanWindow:  10,
			AutoSave:    true,
		},
	}
}

// GetRadio retrieves radio metadata by serial number.
// Returns nil if the radio doesn't exist in the registry.
func (r *Registry) GetRadio(serial string) *Radio {
	return r.Radios[serial]
}

// EnsureRadio ensures a radio entry exists in the registry.
// If the radio doesn't exist, creates a new empty entry.
// Returns the entry (existing or newly created).
func (r *Registry) EnsureRadio(serial string) *Radio {
	if r.Radios == nil {
		r.Radios = make(map[string]*Radio)
	}

	if radio, exists := r.Radios[serial]; exists {
		return radio
	}

	radio := &Radio{}
	r.Radios[serial] = radio
	return radio
}

// RecordSighting updates a radio's stored metadata from one decoded
// announcement and stamps the last-seen time.
func (r *Registry) RecordSighting(serial string, s Sighting) {
	radio := r.EnsureRadio(serial)

	if s.IP != "" {
		radio.LastIP = s.IP
	}
	if s.Port != "" {
		radio.LastPort = s.Port
	}
	if s.Status != "" {
		radio.LastStatus = s.Status
	}
	if s.Model != "" {
		radio.Model = s.Model
	}
	if s.Callsign != "" {
		radio.Callsign = s.Callsign
	}
	if s.Version != "" {
		radio.Version = s.Version
	}
	radio.LastSeen = time.Now()
}

// SetRadioNickname sets a user-chosen nickname for a radio.
func (r *Registry) SetRadioNickname(serial, nickname string) {
	radio := r.EnsureRadio(serial)
	radio.Nickname = nickname
}

// DisplayName returns the name to show for a radio: the user-chosen
// nickname when set, otherwise the model and serial.
func (ra *Radio) DisplayName(serial string) string {
	if ra.Nickname != "" {
		return ra.Nickname
	}
	if ra.Model != "" {
		return ra.Model + " " + serial
	}
	return serial
}
