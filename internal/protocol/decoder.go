package protocol

import (
	"bytes"
	"fmt"
)

const (
	// HeaderLength is the fixed number of opaque header bytes at the
	// front of every discovery datagram. The value is an empirically
	// fixed protocol constant; it is skipped, never inspected.
	HeaderLength = 28

	// tokenSeparator delimits key=value tokens in the payload. Values
	// cannot contain spaces; the wire format has no quoting.
	tokenSeparator = ' '
)

// Decode parses a raw discovery datagram, skipping the standard
// 28-byte header, and returns the decoded announcement.
func Decode(raw []byte) (*Announcement, error) {
	return DecodeWithHeader(raw, HeaderLength)
}

// DecodeWithHeader parses a raw discovery datagram with a caller-chosen
// header length. Unknown keys are collected on the returned
// announcement rather than treated as errors; only a structurally
// malformed token or a datagram shorter than the header fails.
func DecodeWithHeader(raw []byte, headerSkip int) (*Announcement, error) {
	if len(raw) < headerSkip {
		return nil, newShortPayloadError(len(raw), headerSkip)
	}

	ann := &Announcement{}

	payload := raw[headerSkip:]
	if len(payload) == 0 {
		// A header-only datagram decodes to an empty announcement.
		return ann, nil
	}

	// Split on the raw space byte first, convert to text per token.
	for _, token := range bytes.Split(payload, []byte{tokenSeparator}) {
		key, value, found := bytes.Cut(token, []byte{'='})
		if !found {
			return nil, newMalformedTokenError(string(token))
		}

		k, v := string(key), string(value)
		if ann.setField(k, v) {
			continue
		}

		// Schema drift: keep the pair and report it, keep decoding.
		if ann.Unknown == nil {
			ann.Unknown = make(map[string]string)
		}
		ann.Unknown[k] = v
		ann.Warnings = append(ann.Warnings,
			fmt.Sprintf("unrecognized field %q with value %q", k, v))
	}

	return ann, nil
}
