// Package ui launches the terminal month view.
package ui

import (
	"context"
	"errors"
	"net"

	"tableflip.dev/evcal/pkg/app"
	"tableflip.dev/evcal/pkg/log"
	"tableflip.dev/evcal/pkg/runner/mcp"
	teaui "tableflip.dev/evcal/pkg/tui/app"
)

// UI runs the Bubble Tea program. When MCPListenAddr is set an MCP server
// sharing the same calendar is served over HTTP while the UI is open, and
// its changes show up live.
type UI struct {
	Calendar *app.Calendar
	Refresh  string

	MCPListenAddr string
	Version       string
}

func (u *UI) Do(ctx context.Context) error {
	if u.Calendar == nil {
		return errors.New("can not start ui, no calendar")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if u.MCPListenAddr != "" {
		r := mcp.Runner{
			Calendar:       u.Calendar,
			Version:        u.Version,
			Transport:      mcp.TransportHTTP,
			HTTPListenAddr: u.MCPListenAddr,
			OnHTTPListening: func(a net.Addr) {
				log.Info("mcp attached to ui", "addr", a.String())
			},
		}
		go func() {
			if err := r.Do(ctx); err != nil {
				log.Error("mcp server stopped", err)
			}
		}()
	}

	return teaui.Run(u.Calendar, teaui.Options{Refresh: u.Refresh})
}
