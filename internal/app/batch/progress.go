package batch

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig controls the mpb progress display for a run.
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type progressManager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type progressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func newProgressManager(config ProgressConfig) *progressManager {
	if !config.Enabled {
		return &progressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &progressManager{
		container: container,
		enabled:   true,
	}
}

func (pm *progressManager) createBar(total int, description string) *progressBar {
	if !pm.enabled || pm.container == nil {
		return &progressBar{enabled: false}
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " done ",
			),
		),
	)

	return &progressBar{
		bar:     bar,
		enabled: true,
	}
}

func (pb *progressBar) increment() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

func (pb *progressBar) complete() {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

func (pm *progressManager) wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}
