package protocol

import "testing"

func TestAnnouncement_String(t *testing.T) {
	ann := &Announcement{
		Model:  "FLEX-6600",
		Serial: "1234-5678",
		IP:     "192.168.1.44",
		Port:   "4992",
		Status: "Available",
	}

	expected := "FlexRadio FLEX-6600 (serial 1234-5678) at 192.168.1.44:4992 [Available]"
	if ann.String() != expected {
		t.Errorf("Announcement.String() = %v, want %v", ann.String(), expected)
	}
}

func TestAnnouncement_Available(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{
			name:     "available radio",
			status:   "Available",
			expected: true,
		},
		{
			name:     "radio in use",
			status:   "In_Use",
			expected: false,
		},
		{
			name:     "status absent",
			status:   "",
			expected: false,
		},
		{
			name:     "status is case-sensitive",
			status:   "available",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann := &Announcement{Status: tt.status}
			if got := ann.Available(); got != tt.expected {
				t.Errorf("Announcement.Available() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAnnouncement_ControlAddr(t *testing.T) {
	tests := []struct {
		name     string
		ann      *Announcement
		expected string
	}{
		{
			name:     "ip and port present",
			ann:      &Announcement{IP: "192.168.1.44", Port: "4992"},
			expected: "192.168.1.44:4992",
		},
		{
			name:     "missing port",
			ann:      &Announcement{IP: "192.168.1.44"},
			expected: "",
		},
		{
			name:     "missing ip",
			ann:      &Announcement{Port: "4992"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ann.ControlAddr(); got != tt.expected {
				t.Errorf("Announcement.ControlAddr() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAnnouncement_GetUnknown_NilMap(t *testing.T) {
	ann := &Announcement{}

	if got := ann.GetUnknown("anything"); got != "" {
		t.Errorf("Announcement.GetUnknown() with nil map = %v, want empty string", got)
	}
}
