package daemon

import (
	"context"
	"net"
)

// ServeListener runs the server on an already bound listener.
func (s *Server) ServeListener(ctx context.Context, lis net.Listener, socketPath string, force bool) error {
	return s.serve(ctx, lis, socketPath, force)
}

var AcceptBackoff = acceptBackoff

const MaxLineSize = maxLineSize
