package sample

import (
	"context"
	"errors"
	"sync"

	"github.com/dustin/go-humanize/english"

	"github.com/faceset/faceset/internal/crop"
	"github.com/faceset/faceset/internal/event"
	"github.com/faceset/faceset/internal/frame"
)

// ErrInvalidTarget means Start was called with a non-positive target count.
var ErrInvalidTarget = errors.New("sample: invalid target count")

// Status is a consistent snapshot of the sampling session.
type Status struct {
	State     State       `json:"State"`
	Active    bool        `json:"Active"`
	Collected int         `json:"Collected"`
	Target    int         `json:"Target"`
	Crops     []crop.Crop `json:"-"`
}

// Coordinator owns the sampling session state. Frame delivery must be
// serialized by the source, control calls may come from any goroutine.
type Coordinator struct {
	mu     sync.Mutex
	state  State
	target int
	crops  []crop.Crop
	size   crop.Size
	opts   []crop.Option
}

// NewCoordinator returns a coordinator producing crops of the given size.
func NewCoordinator(size crop.Size, opts ...crop.Option) *Coordinator {
	return &Coordinator{size: size, opts: opts}
}

// Start begins a new session, clearing any previous results. The state is
// left unchanged if target is not strictly positive.
func (c *Coordinator) Start(target int) error {
	if target <= 0 {
		return ErrInvalidTarget
	}

	c.mu.Lock()
	c.state = StateSampling
	c.target = target
	c.crops = nil
	c.mu.Unlock()

	event.Publish(EventStarted, event.Data{"target": target})

	log.Infof("sample: collecting %s", english.Plural(target, "face crop", "face crops"))

	return nil
}

// Stop cancels a running session, keeping whatever was collected.
// Idempotent, a no-op unless the session is sampling.
func (c *Coordinator) Stop() {
	c.mu.Lock()

	if c.state != StateSampling {
		c.mu.Unlock()
		return
	}

	c.state = StateIdle
	collected, target := len(c.crops), c.target
	c.mu.Unlock()

	event.Publish(EventStopped, event.Data{"collected": collected, "target": target})

	log.Infof("sample: stopped with %d of %d crops", collected, target)
}

// Reset clears the result buffer and returns to idle from any state.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	c.state = StateIdle
	c.target = 0
	c.crops = nil
	c.mu.Unlock()

	event.Publish(EventReset, event.Data{})
}

// OnFrame consumes one frame with its detected areas. While sampling, the
// first area in detector order is mapped to a crop. Frames that fail to
// map are skipped, sampling just takes longer. The transition to complete
// happens atomically with the final append, frames arriving after that
// never mutate the result buffer.
func (c *Coordinator) OnFrame(f frame.Frame, areas crop.Areas) {
	c.mu.Lock()

	if c.state != StateSampling {
		c.mu.Unlock()
		return
	}

	if len(areas) == 0 {
		c.mu.Unlock()
		log.Debugf("sample: no face in frame %d", f.Sequence)
		return
	}

	img, err := crop.FromImage(f.Image, f.Orientation, areas[0], c.size, c.opts...)

	if err != nil {
		c.mu.Unlock()
		log.Warnf("sample: %s in frame %d (frame skipped)", err, f.Sequence)
		return
	}

	result := crop.Crop{
		Index:   len(c.crops),
		Area:    areas[0],
		Image:   img,
		TakenAt: f.TakenAt,
	}

	c.crops = append(c.crops, result)

	collected, target := len(c.crops), c.target
	completed := collected >= target

	if completed {
		c.state = StateComplete
	}

	c.mu.Unlock()

	event.Publish(EventProgress, event.Data{"collected": collected, "target": target})

	if completed {
		event.Publish(EventCompleted, event.Data{"collected": collected, "target": target})
		log.Infof("sample: completed with %s", english.Plural(collected, "face crop", "face crops"))
	}
}

// Status returns a snapshot of the session. The crop slice is copied, the
// crops themselves are immutable.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	crops := make([]crop.Crop, len(c.crops))
	copy(crops, c.crops)

	return Status{
		State:     c.state,
		Active:    c.state == StateSampling,
		Collected: len(c.crops),
		Target:    c.target,
		Crops:     crops,
	}
}

// Active reports whether a session is sampling.
func (c *Coordinator) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state == StateSampling
}

// Completed reports whether the target count was reached.
func (c *Coordinator) Completed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state == StateComplete
}

// Sample starts a session and consumes the source until the target is
// reached, the source ends, or the context is canceled.
func (c *Coordinator) Sample(ctx context.Context, src frame.Source, target int) error {
	if err := c.Start(target); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	return src.Run(ctx, func(f frame.Frame, areas crop.Areas) {
		c.OnFrame(f, areas)

		if c.Completed() {
			cancel()
		}
	})
}
