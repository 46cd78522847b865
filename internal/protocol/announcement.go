package protocol

import (
	"fmt"
	"net"
	"time"
)

// StatusAvailable is the status value a radio reports when no client
// is connected to it.
const StatusAvailable = "Available"

// Announcement is the decoded form of a single discovery datagram.
//
// Every field originates as text on the wire and is kept as a string;
// callers interpreting Port as a number or RequiresAdditionalLicense
// as a boolean do so themselves. A zero-value field means the radio
// omitted that key. An Announcement is built fresh for every datagram
// and never merged with announcements from earlier packets.
type Announcement struct {
	// Model is the radio model identifier (e.g., "FLEX-6600").
	Model string `json:"model,omitempty"`

	// Serial is the radio serial number (e.g., "1234-5678").
	Serial string `json:"serial,omitempty"`

	// IP is the radio's own network address.
	IP string `json:"ip,omitempty"`

	// Port is the control port number, carried as text on the wire.
	Port string `json:"port,omitempty"`

	// Status is the connection state, "Available" or an in-use marker.
	Status string `json:"status,omitempty"`

	// Nickname is the user-assigned radio name.
	Nickname string `json:"nickname,omitempty"`

	// Callsign is the registered operator identifier.
	Callsign string `json:"callsign,omitempty"`

	// Version is the firmware/software version string.
	Version string `json:"version,omitempty"`

	// DiscoveryProtocolVersion is the announcement protocol version.
	DiscoveryProtocolVersion string `json:"discovery_protocol_version,omitempty"`

	// MaxLicensedVersion is the highest software version the license permits.
	MaxLicensedVersion string `json:"max_licensed_version,omitempty"`

	// RequiresAdditionalLicense reports whether the radio needs an
	// extra license, carried as text ("0"/"1").
	RequiresAdditionalLicense string `json:"requires_additional_license,omitempty"`

	// RadioLicenseID is the license identifier.
	RadioLicenseID string `json:"radio_license_id,omitempty"`

	// InUseIP is the IP of the client currently connected, if any.
	InUseIP string `json:"inuse_ip,omitempty"`

	// InUseHost is the hostname of the client currently connected, if any.
	InUseHost string `json:"inuse_host,omitempty"`

	// FPCMac is the radio's hardware MAC address.
	FPCMac string `json:"fpc_mac,omitempty"`

	// Unknown holds key/value pairs present in the datagram that are
	// not part of the known schema. Keys and values are preserved
	// exactly as received.
	Unknown map[string]string `json:"unknown,omitempty"`

	// Warnings carries one diagnostic per unrecognized key. The
	// decoder never prints; displaying these is the caller's choice.
	Warnings []string `json:"warnings,omitempty"`

	// Source is the datagram's sender address. Filled by the listener,
	// nil when decoding raw bytes directly.
	Source *net.UDPAddr `json:"source,omitempty"`

	// ReceivedAt is when the datagram arrived. Filled by the listener.
	ReceivedAt time.Time `json:"received_at,omitzero"`
}

// String returns a human-readable one-line summary of the announcement.
func (a *Announcement) String() string {
	return fmt.Sprintf("FlexRadio %s (serial %s) at %s:%s [%s]",
		a.Model, a.Serial, a.IP, a.Port, a.Status)
}

// Available reports whether the radio is advertising itself as free
// for a client connection.
func (a *Announcement) Available() bool {
	return a.Status == StatusAvailable
}

// ControlAddr returns the radio's "ip:port" control endpoint, or an
// empty string if the announcement did not carry both parts.
func (a *Announcement) ControlAddr() string {
	if a.IP == "" || a.Port == "" {
		return ""
	}
	return net.JoinHostPort(a.IP, a.Port)
}

// GetUnknown retrieves an unrecognized field by key, or returns the
// empty string if the datagram did not carry it.
func (a *Announcement) GetUnknown(key string) string {
	if a.Unknown == nil {
		return ""
	}
	return a.Unknown[key]
}

// setField assigns a recognized schema key to its struct field and
// reports whether the key was part of the known schema. Matching is
// case-sensitive.
func (a *Announcement) setField(key, value string) bool {
	switch key {
	case "model":
		a.Model = value
	case "serial":
		a.Serial = value
	case "ip":
		a.IP = value
	case "port":
		a.Port = value
	case "status":
		a.Status = value
	case "nickname":
		a.Nickname = value
	case "callsign":
		a.Callsign = value
	case "version":
		a.Version = value
	case "discovery_protocol_version":
		a.DiscoveryProtocolVersion = value
	case "max_licensed_version":
		a.MaxLicensedVersion = value
	case "requires_additional_license":
		a.RequiresAdditionalLicense = value
	case "radio_license_id":
		a.RadioLicenseID = value
	case "inuse_ip":
		a.InUseIP = value
	case "inuse_host":
		a.InUseHost = value
	case "fpc_mac":
		a.FPCMac = value
	default:
		return false
	}
	return true
}
