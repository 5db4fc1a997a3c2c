package daemon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.trai.ch/dumpfiles/internal/core/ports"
)

const (
	// RefreshCommand rebuilds the dependency map without dumping anything.
	RefreshCommand = "refresh"
	// QuitCommand ends the sending connection.
	QuitCommand = "quit"
)

// Dispatcher executes a single command line against the cache and the driver.
type Dispatcher struct {
	driver ports.RebuildDriver
	cache  ports.DependencyMapCache
	logger ports.Logger
	delay  time.Duration
}

// NewDispatcher creates a Dispatcher that pauses for delay after every command.
func NewDispatcher(
	driver ports.RebuildDriver,
	cache ports.DependencyMapCache,
	logger ports.Logger,
	delay time.Duration,
) *Dispatcher {
	return &Dispatcher{
		driver: driver,
		cache:  cache,
		logger: logger,
		delay:  delay,
	}
}

// Handle runs one command. Any line other than refresh is a changed path.
// It reports whether a dump was attempted, which consumes the force flag.
func (d *Dispatcher) Handle(ctx context.Context, line string, force bool) bool {
	defer d.pause(ctx)

	if line == RefreshCommand {
		if _, err := d.cache.Get(ctx, true); err != nil {
			d.logger.Error(err)
		}
		return false
	}

	result := d.driver.DumpForChanges(ctx, []string{line}, force)
	for _, err := range result.Errors {
		d.logger.Error(err)
	}
	if len(result.Succeeded) > 0 {
		d.logger.Info(fmt.Sprintf("Dumped %s", strings.Join(result.Succeeded, ", ")))
	}
	return true
}

func (d *Dispatcher) pause(ctx context.Context) {
	if d.delay <= 0 {
		return
	}

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
