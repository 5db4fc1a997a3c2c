package ports

import "context"

// Notifier sends protocol lines to a running command server.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	Send(ctx context.Context, socketPath string, lines ...string) error
}

// CommandServer serves the line protocol on a Unix domain socket until ctx is
// canceled. force applies to the first dump of the run only.
type CommandServer interface {
	Serve(ctx context.Context, socketPath string, force bool) error
}
