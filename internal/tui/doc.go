// Package tui implements the interactive watch screen for flexscan.
//
// The watch screen is a Bubble Tea program that keeps a discovery
// listener polling in the background and renders every radio heard so
// far as a card in a scrollable list: model, serial, address, status,
// callsign and how long ago the last announcement arrived. Radios are
// keyed by serial for display, so a radio that announces every few
// seconds occupies one card whose contents refresh in place.
//
// The blocking ReceiveOne call is wrapped in a tea.Cmd, which Bubble
// Tea runs off the UI goroutine; each result message re-issues the
// command, giving a continuous receive loop without any concurrency in
// the discovery core itself.
//
// # Usage Example
//
//	listener, err := discovery.NewListener()
//	if err != nil {
//	    return err
//	}
//	defer listener.Close()
//
//	p := tea.NewProgram(tui.NewWatchModel(listener))
//	_, err = p.Run()
package tui
