package preview

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matt-g-everett/ledcube/stream"
)

// Run drives a through the preview and, if out is not nil, through out as
// well. It returns when the UI quits or ctx is cancelled.
func Run(ctx context.Context, a stream.Animation, out stream.Backend) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shared := stream.NewShared(a)
	snap := new(stream.Snapshot)
	backends := stream.Fanout{snap}
	if out != nil {
		backends = append(backends, out)
	}
	driver := stream.NewDriver(shared, backends)

	var paused atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		renderLoop(ctx, driver, &paused)
	}()

	p := tea.NewProgram(NewModel(shared, snap, &paused), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	cancel()
	wg.Wait()

	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// renderLoop steps the driver until ctx is done. While paused it idles
// instead of spinning.
func renderLoop(ctx context.Context, d *stream.Driver, paused *atomic.Bool) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if paused.Load() {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		d.Step()
	}
}
