// Package discovery listens for FlexRadio discovery broadcasts on the
// local network.
//
// FlexRadio transceivers advertise themselves by broadcasting a UDP
// datagram on port 4992 every few seconds. This package owns the
// socket side of discovery: it binds a broadcast-capable UDP socket
// and waits, one datagram at a time, handing each payload to the
// protocol package for decoding.
//
// # Discovery Process
//
// The listener model is deliberately simple:
//  1. Construct a Listener (binds the socket, fatal on failure)
//  2. Call ReceiveOne() in a loop
//  3. Each call blocks up to the receive timeout
//  4. A decoded Announcement comes back, or nil when nothing was heard
//
// # Usage Example
//
//	listener, err := discovery.NewListener()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer listener.Close()
//
//	for {
//	    ann, err := listener.ReceiveOne()
//	    if err != nil {
//	        log.Printf("bad datagram: %v", err) // listener stays usable
//	        continue
//	    }
//	    if ann == nil {
//	        continue // nothing heard this cycle
//	    }
//	    fmt.Println(ann)
//	}
//
// # Network Requirements
//
// - The radio and this host must share a network segment (broadcasts
//   do not cross routers)
// - Firewall must allow inbound UDP on port 4992
// - SO_REUSEADDR is set, so the listener can share the port with a
//   running SmartSDR instance
//
// # Thread Safety
//
// A Listener owns its socket exclusively and performs one blocking
// receive at a time; do not call ReceiveOne concurrently on the same
// Listener. Independent Listeners are fully isolated from each other.
package discovery
