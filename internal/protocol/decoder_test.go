package protocol

import (
	"bytes"
	"reflect"
	"testing"
)

// datagram builds a discovery datagram with a zeroed 28-byte header.
func datagram(payload string) []byte {
	return append(make([]byte, HeaderLength), []byte(payload)...)
}

func TestDecode_KnownFields(t *testing.T) {
	raw := datagram("model=FLEX-6600 serial=1234-5678 status=Available callsign=N0CALL")

	ann, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if ann.Model != "FLEX-6600" {
		t.Errorf("ann.Model = %q, want %q", ann.Model, "FLEX-6600")
	}
	if ann.Serial != "1234-5678" {
		t.Errorf("ann.Serial = %q, want %q", ann.Serial, "1234-5678")
	}
	if ann.Status != "Available" {
		t.Errorf("ann.Status = %q, want %q", ann.Status, "Available")
	}
	if ann.Callsign != "N0CALL" {
		t.Errorf("ann.Callsign = %q, want %q", ann.Callsign, "N0CALL")
	}

	// Fields the datagram did not carry stay absent.
	for name, got := range map[string]string{
		"Nickname": ann.Nickname,
		"Version":  ann.Version,
		"IP":       ann.IP,
		"Port":     ann.Port,
		"InUseIP":  ann.InUseIP,
		"FPCMac":   ann.FPCMac,
	} {
		if got != "" {
			t.Errorf("ann.%s = %q, want absent", name, got)
		}
	}

	if len(ann.Unknown) != 0 {
		t.Errorf("ann.Unknown = %v, want empty", ann.Unknown)
	}
	if len(ann.Warnings) != 0 {
		t.Errorf("ann.Warnings = %v, want empty", ann.Warnings)
	}
}

func TestDecode_AllSchemaFields(t *testing.T) {
	raw := datagram("requires_additional_license=0 nickname=Shack version=3.4.21 " +
		"discovery_protocol_version=2.0.0.0 inuse_ip=192.168.1.50 model=FLEX-6400 " +
		"max_licensed_version=v3 serial=0621-1104-6601-1234 inuse_host=shack-pc " +
		"port=4992 radio_license_id=00-1C-2D-05-1A-22 ip=192.168.1.44 " +
		"status=In_Use callsign=KD0XYZ fpc_mac=00:1C:2D:05:1A:22")

	ann, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	want := &Announcement{
		RequiresAdditionalLicense: "0",
		Nickname:                  "Shack",
		Version:                   "3.4.21",
		DiscoveryProtocolVersion:  "2.0.0.0",
		InUseIP:                   "192.168.1.50",
		Model:                     "FLEX-6400",
		MaxLicensedVersion:        "v3",
		Serial:                    "0621-1104-6601-1234",
		InUseHost:                 "shack-pc",
		Port:                      "4992",
		RadioLicenseID:            "00-1C-2D-05-1A-22",
		IP:                        "192.168.1.44",
		Status:                    "In_Use",
		Callsign:                  "KD0XYZ",
		FPCMac:                    "00:1C:2D:05:1A:22",
	}

	if !reflect.DeepEqual(ann, want) {
		t.Errorf("Decode() = %+v, want %+v", ann, want)
	}
}

func TestDecode_UnrecognizedField(t *testing.T) {
	raw := datagram("foo=bar model=FLEX-6600")

	ann, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if ann.Model != "FLEX-6600" {
		t.Errorf("ann.Model = %q, want %q", ann.Model, "FLEX-6600")
	}
	if got := ann.GetUnknown("foo"); got != "bar" {
		t.Errorf(`ann.GetUnknown("foo") = %q, want %q`, got, "bar")
	}
	if len(ann.Unknown) != 1 {
		t.Errorf("ann.Unknown has %d entries, want 1", len(ann.Unknown))
	}
	if len(ann.Warnings) != 1 {
		t.Fatalf("ann.Warnings has %d entries, want 1", len(ann.Warnings))
	}
	if ann.Serial != "" {
		t.Errorf("ann.Serial = %q, want absent", ann.Serial)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name          string
		raw           []byte
		wantShort     bool
		wantMalformed bool
	}{
		{
			name:      "datagram shorter than header",
			raw:       make([]byte, HeaderLength-1),
			wantShort: true,
		},
		{
			name:      "empty datagram",
			raw:       nil,
			wantShort: true,
		},
		{
			name:          "token without separator",
			raw:           datagram("model=FLEX-6600 noequals"),
			wantMalformed: true,
		},
		{
			name:          "lone malformed token",
			raw:           datagram("garbage"),
			wantMalformed: true,
		},
		{
			name:          "consecutive spaces produce an empty token",
			raw:           datagram("model=FLEX-6600  serial=1234"),
			wantMalformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ann, err := Decode(tt.raw)
			if err == nil {
				t.Fatalf("Decode() = %+v, want error", ann)
			}
			if ann != nil {
				t.Errorf("Decode() returned %+v alongside error, want nil", ann)
			}
			if got := IsShortPayload(err); got != tt.wantShort {
				t.Errorf("IsShortPayload(err) = %v, want %v (err: %v)", got, tt.wantShort, err)
			}
			if got := IsMalformedToken(err); got != tt.wantMalformed {
				t.Errorf("IsMalformedToken(err) = %v, want %v (err: %v)", got, tt.wantMalformed, err)
			}
		})
	}
}

func TestDecode_HeaderOnlyDatagram(t *testing.T) {
	ann, err := Decode(make([]byte, HeaderLength))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	if !reflect.DeepEqual(ann, &Announcement{}) {
		t.Errorf("Decode() = %+v, want empty announcement", ann)
	}
}

func TestDecode_DuplicateKeyLastWins(t *testing.T) {
	raw := datagram("model=FLEX-6400 model=FLEX-6600")

	ann, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	if ann.Model != "FLEX-6600" {
		t.Errorf("ann.Model = %q, want last occurrence %q", ann.Model, "FLEX-6600")
	}
}

func TestDecode_EmptyValue(t *testing.T) {
	raw := datagram("nickname= model=FLEX-6600")

	ann, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	if ann.Nickname != "" {
		t.Errorf("ann.Nickname = %q, want empty", ann.Nickname)
	}
	if ann.Model != "FLEX-6600" {
		t.Errorf("ann.Model = %q, want %q", ann.Model, "FLEX-6600")
	}
}

func TestDecode_CaseSensitiveKeys(t *testing.T) {
	raw := datagram("Model=FLEX-6600")

	ann, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	if ann.Model != "" {
		t.Errorf(`ann.Model = %q, want absent ("Model" is not a schema key)`, ann.Model)
	}
	if got := ann.GetUnknown("Model"); got != "FLEX-6600" {
		t.Errorf(`ann.GetUnknown("Model") = %q, want %q`, got, "FLEX-6600")
	}
}

func TestDecode_Idempotent(t *testing.T) {
	raw := datagram("foo=bar model=FLEX-6600 serial=1234-5678 status=Available")

	first, err := Decode(raw)
	if err != nil {
		t.Fatalf("first Decode() error = %v", err)
	}
	second, err := Decode(raw)
	if err != nil {
		t.Fatalf("second Decode() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated decodes differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDecodeWithHeader_CustomSkip(t *testing.T) {
	raw := append(bytes.Repeat([]byte{0xff}, 4), []byte("model=FLEX-8600")...)

	ann, err := DecodeWithHeader(raw, 4)
	if err != nil {
		t.Fatalf("DecodeWithHeader() error = %v, want nil", err)
	}
	if ann.Model != "FLEX-8600" {
		t.Errorf("ann.Model = %q, want %q", ann.Model, "FLEX-8600")
	}
}
