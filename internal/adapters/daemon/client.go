// Package daemon implements the command server and its client.
// Commands are newline-terminated lines sent over a Unix domain socket.
package daemon

import (
	"bufio"
	"context"
	"errors"
	"net"

	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Notifier = (*Client)(nil)

// Client implements ports.Notifier.
type Client struct{}

// NewClient creates a Client.
func NewClient() *Client {
	return &Client{}
}

// Send writes each line to the server at socketPath on one connection.
func (c *Client) Send(ctx context.Context, socketPath string, lines ...string) error {
	if socketPath == "" {
		return domain.ErrNoSocket
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return errors.Join(domain.ErrServerUnreachable, zerr.With(zerr.Wrap(err, "dial failed"), "socket", socketPath))
	}
	defer conn.Close() //nolint:errcheck // Best effort close in defer

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}

	w := bufio.NewWriter(conn)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to send command"), "socket", socketPath)
		}
	}
	if err := w.Flush(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to send command"), "socket", socketPath)
	}
	return nil
}
