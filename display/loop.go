package display

import (
	"context"
	"time"
)

// DefaultFPS is the frame rate used when Loop.FPS is not set.
const DefaultFPS = 30

// Loop drives an animation at a fixed frame rate.
//
// Frames are strictly sequential: frame n+1 is not requested until frame n
// has been presented, so a buffer is never shared between the core and the
// presenter.
type Loop struct {
	// FPS is the target frame rate. Zero or negative means DefaultFPS.
	FPS int

	// MaxFrames stops the loop after that many frames. Zero runs until the
	// context is canceled.
	MaxFrames int

	// OnError handles failed frames. Nil means StopOnError.
	OnError ErrorPolicy
}

// Run requests, presents and paces frames until ctx is done, MaxFrames is
// reached, or OnError returns an error. Frame time t starts at 0 for the
// first frame and follows the wall clock.
//
// Run returns nil when MaxFrames is reached and ctx.Err() when canceled.
func (l Loop) Run(ctx context.Context, frames FrameFunc, p Presenter) error {
	fps := l.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	policy := l.OnError
	if policy == nil {
		policy = StopOnError
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var start time.Time
	for n := 0; l.MaxFrames <= 0 || n < l.MaxFrames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		var t float64
		if n == 0 {
			start = time.Now()
		} else {
			t = time.Since(start).Seconds()
		}

		img, err := frames(t)
		if err == nil {
			err = p.Present(img)
		}
		if err != nil {
			if perr := policy(n, err); perr != nil {
				return perr
			}
		}

		if l.MaxFrames > 0 && n+1 == l.MaxFrames {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
