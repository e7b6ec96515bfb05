package sample

import (
	"context"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/faceset/faceset/internal/crop"
	"github.com/faceset/faceset/internal/event"
	"github.com/faceset/faceset/internal/frame"
)

func testFrame(sequence uint64) frame.Frame {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 180, B: 160, A: 255})
		}
	}

	return frame.Frame{
		Sequence:    sequence,
		Image:       img,
		Orientation: crop.OrientationNormal,
		TakenAt:     time.Now().UTC(),
	}
}

func faceAreas() crop.Areas {
	return crop.Areas{crop.NewArea("face", 0.25, 0.25, 0.5, 0.5)}
}

func TestCoordinatorStart(t *testing.T) {
	t.Run("InvalidTarget", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		assert.ErrorIs(t, c.Start(0), ErrInvalidTarget)
		assert.ErrorIs(t, c.Start(-3), ErrInvalidTarget)

		status := c.Status()

		assert.Equal(t, StateIdle, status.State)
		assert.False(t, status.Active)
		assert.Equal(t, 0, status.Target)
	})

	t.Run("ClearsPreviousResults", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		assert.NoError(t, c.Start(1))
		c.OnFrame(testFrame(0), faceAreas())
		assert.Equal(t, 1, c.Status().Collected)

		assert.NoError(t, c.Start(2))

		status := c.Status()

		assert.Equal(t, 0, status.Collected)
		assert.Equal(t, 2, status.Target)
		assert.True(t, status.Active)
	})
}

func TestCoordinatorStop(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		c.Stop()
		c.Stop()

		status := c.Status()

		assert.Equal(t, StateIdle, status.State)
		assert.Equal(t, 0, status.Collected)
	})

	t.Run("KeepsCollected", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		assert.NoError(t, c.Start(5))
		c.OnFrame(testFrame(0), faceAreas())
		c.Stop()

		status := c.Status()

		assert.Equal(t, StateIdle, status.State)
		assert.Equal(t, 1, status.Collected)
	})

	t.Run("ObservedByNextFrame", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		assert.NoError(t, c.Start(5))
		c.Stop()
		c.OnFrame(testFrame(0), faceAreas())

		assert.Equal(t, 0, c.Status().Collected)
	})
}

func TestCoordinatorReset(t *testing.T) {
	c := NewCoordinator(crop.SizeTile224)

	assert.NoError(t, c.Start(2))
	c.OnFrame(testFrame(0), faceAreas())
	c.Reset()

	status := c.Status()

	assert.Equal(t, StateIdle, status.State)
	assert.Equal(t, 0, status.Collected)
	assert.Equal(t, 0, status.Target)
	assert.Len(t, status.Crops, 0)
}

func TestCoordinatorOnFrame(t *testing.T) {
	t.Run("BoundaryTargetOne", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		assert.NoError(t, c.Start(1))
		c.OnFrame(testFrame(0), faceAreas())

		assert.True(t, c.Completed())

		// Further frames must not mutate the result buffer.
		c.OnFrame(testFrame(1), faceAreas())

		status := c.Status()

		assert.Equal(t, StateComplete, status.State)
		assert.Equal(t, 1, status.Collected)
		assert.Len(t, status.Crops, 1)
	})

	t.Run("SkippedFramesDoNotCount", func(t *testing.T) {
		// Seven frames, frames 2, 4 and 6 have no detection result.
		c := NewCoordinator(crop.SizeTile224)

		assert.NoError(t, c.Start(5))

		for i := 0; i < 7; i++ {
			if i == 1 || i == 3 || i == 5 {
				c.OnFrame(testFrame(uint64(i)), crop.Areas{})
			} else {
				c.OnFrame(testFrame(uint64(i)), faceAreas())
			}
		}

		status := c.Status()

		assert.Equal(t, 4, status.Collected)
		assert.Equal(t, StateSampling, status.State)
		assert.True(t, status.Active)
	})

	t.Run("InvalidGeometrySkipped", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		assert.NoError(t, c.Start(2))
		c.OnFrame(testFrame(0), crop.Areas{crop.NewArea("face", 2, 2, 0.5, 0.5)})

		status := c.Status()

		assert.Equal(t, 0, status.Collected)
		assert.Equal(t, StateSampling, status.State)
	})

	t.Run("FirstAreaWins", func(t *testing.T) {
		c := NewCoordinator(crop.Size{})

		assert.NoError(t, c.Start(1))

		areas := crop.Areas{
			crop.NewArea("face", 0.25, 0.25, 0.5, 0.5),
			crop.NewArea("face", 0, 0, 0.1, 0.1),
		}

		c.OnFrame(testFrame(0), areas)

		status := c.Status()

		if assert.Len(t, status.Crops, 1) {
			assert.Equal(t, areas[0], status.Crops[0].Area)
			assert.Equal(t, 50, status.Crops[0].Width())
		}
	})

	t.Run("Monotonic", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		assert.NoError(t, c.Start(10))

		last := 0

		for i := 0; i < 10; i++ {
			c.OnFrame(testFrame(uint64(i)), faceAreas())

			collected := c.Status().Collected

			assert.GreaterOrEqual(t, collected, last)
			last = collected
		}

		assert.Equal(t, 10, last)
	})

	t.Run("NeverExceedsTarget", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		assert.NoError(t, c.Start(3))

		for i := 0; i < 8; i++ {
			c.OnFrame(testFrame(uint64(i)), faceAreas())
		}

		status := c.Status()

		assert.Equal(t, 3, status.Collected)
		assert.Equal(t, StateComplete, status.State)
	})

	t.Run("OrderedIndexes", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		assert.NoError(t, c.Start(3))

		for i := 0; i < 3; i++ {
			c.OnFrame(testFrame(uint64(i)), faceAreas())
		}

		for i, result := range c.Status().Crops {
			assert.Equal(t, i, result.Index)
		}
	})
}

func TestCoordinatorEvents(t *testing.T) {
	sub := event.Subscribe(EventProgress, EventCompleted)
	defer event.Unsubscribe(sub)

	c := NewCoordinator(crop.SizeTile224)

	assert.NoError(t, c.Start(2))
	c.OnFrame(testFrame(0), faceAreas())
	c.OnFrame(testFrame(1), faceAreas())

	var progress, completed int

	timeout := time.After(time.Second)

	for progress < 2 || completed < 1 {
		select {
		case msg := <-sub.Receiver:
			switch msg.Name {
			case EventProgress:
				progress++
			case EventCompleted:
				completed++
				assert.Equal(t, 2, msg.Fields["collected"])
				assert.Equal(t, 2, msg.Fields["target"])
			}
		case <-timeout:
			t.Fatalf("expected 2 progress and 1 completed events, got %d/%d", progress, completed)
		}
	}
}

func TestCoordinatorConcurrentReads(t *testing.T) {
	c := NewCoordinator(crop.SizeTile224)

	assert.NoError(t, c.Start(20))

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		for i := 0; i < 200; i++ {
			status := c.Status()

			assert.LessOrEqual(t, status.Collected, status.Target)
			assert.Len(t, status.Crops, status.Collected)
		}
	}()

	for i := 0; i < 30; i++ {
		c.OnFrame(testFrame(uint64(i)), faceAreas())
	}

	wg.Wait()

	assert.Equal(t, 20, c.Status().Collected)
}

func TestCoordinatorSample(t *testing.T) {
	t.Run("InvalidTarget", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		err := c.Sample(context.Background(), sourceFunc(func(ctx context.Context, h frame.Handler) error {
			return nil
		}), 0)

		assert.ErrorIs(t, err, ErrInvalidTarget)
	})

	t.Run("StopsWhenComplete", func(t *testing.T) {
		c := NewCoordinator(crop.SizeTile224)

		delivered := 0

		err := c.Sample(context.Background(), sourceFunc(func(ctx context.Context, h frame.Handler) error {
			for i := 0; i < 100; i++ {
				if ctx.Err() != nil {
					return nil
				}

				delivered++
				h(testFrame(uint64(i)), faceAreas())
			}

			return nil
		}), 3)

		assert.NoError(t, err)
		assert.True(t, c.Completed())
		assert.Equal(t, 3, delivered, "source should stop right after completion")
	})
}

type sourceFunc func(ctx context.Context, h frame.Handler) error

func (f sourceFunc) Run(ctx context.Context, h frame.Handler) error {
	return f(ctx, h)
}
