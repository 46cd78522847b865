//go:build ignore

// Decode-datagram decodes a captured FlexRadio discovery datagram.
//
// Feed it the hex dump of a raw datagram (as captured with tcpdump -x,
// Wireshark, or flexscan's debug logging) and it prints the decoded
// announcement as JSON, plus any warnings for unrecognized fields.
//
// Usage:
//
//	go run tools/decode-datagram.go <hex-string>
//	go run tools/decode-datagram.go --file capture.hex
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ckode/flexscan/internal/protocol"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: decode-datagram <hex-string>")
		fmt.Println("       decode-datagram --file <hex-file>")
		fmt.Println("Example: decode-datagram 000000...6d6f64656c3d464c45582d36363030")
		os.Exit(1)
	}

	var hexInput string
	if os.Args[1] == "--file" {
		if len(os.Args) < 3 {
			fmt.Println("Error: --file requires a filename")
			os.Exit(1)
		}
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			os.Exit(1)
		}
		hexInput = string(data)
	} else {
		hexInput = os.Args[1]
	}

	// Tolerate whitespace and offset-free tcpdump formatting
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			return -1
		}
		return r
	}, hexInput)

	raw, err := hex.DecodeString(cleaned)
	if err != nil {
		fmt.Printf("Error decoding hex: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== FlexRadio Datagram Decoder ===\n")
	if len(raw) >= protocol.HeaderLength {
		fmt.Printf("Datagram: %d bytes (%d header + %d payload)\n\n",
			len(raw), protocol.HeaderLength, len(raw)-protocol.HeaderLength)
	} else {
		fmt.Printf("Datagram: %d bytes\n\n", len(raw))
	}

	ann, err := protocol.Decode(raw)
	if err != nil {
		fmt.Printf("Decode failed: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(ann, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if len(ann.Warnings) > 0 {
		fmt.Printf("\n%d warning(s):\n", len(ann.Warnings))
		for _, w := range ann.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
