// Package protocol decodes FlexRadio discovery announcements.
//
// FlexRadio transceivers advertise themselves by broadcasting a UDP
// datagram on port 4992 every few seconds. Each datagram carries a
// fixed 28-byte VITA-49 style header followed by an ASCII payload of
// space-separated key=value tokens:
//
//	discovery_protocol_version=2.0.0.0 model=FLEX-6600 serial=1234-5678 ...
//
// This package is the pure decoding half of discovery: it turns raw
// datagram bytes into an Announcement and has no I/O of its own. The
// socket side lives in the discovery package.
//
// # Decoding Rules
//
//   - The 28-byte header is opaque and unconditionally skipped. Its
//     length is a protocol constant, not detected from the data.
//   - The remaining bytes are split on the ASCII space byte before any
//     byte-to-string conversion, so no textual artifact can leak into
//     the first key.
//   - Keys are matched case-sensitively against the known schema. A key
//     seen twice keeps its last value.
//   - Unknown keys never fail a decode. They are collected on the
//     Announcement together with a warning so schema drift is visible
//     to the caller without crashing the receive loop.
//   - A token without an '=' separator, or a datagram shorter than the
//     header, is a decode error for that one datagram only.
//
// # Usage Example
//
//	ann, err := protocol.Decode(datagram)
//	if err != nil {
//	    log.Printf("bad announcement: %v", err)
//	    return
//	}
//	fmt.Printf("found %s (serial %s) at %s\n", ann.Model, ann.Serial, ann.IP)
package protocol
