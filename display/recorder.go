package display

import (
	"sync"

	"github.com/gogpu/pixfield"
)

// Recorder is a Presenter that keeps every frame it is given.
// It is useful for tests and for headless runs.
type Recorder struct {
	mu     sync.Mutex
	frames []pixfield.ScaledImage
	limit  int
}

// NewRecorder creates a recorder keeping at most limit frames, dropping the
// oldest first. A limit of zero or less keeps everything.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

// Present records img.
func (r *Recorder) Present(img pixfield.ScaledImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frames = append(r.frames, img)
	if r.limit > 0 && len(r.frames) > r.limit {
		r.frames = r.frames[len(r.frames)-r.limit:]
	}
	return nil
}

// Frames returns a copy of the recorded frames, oldest first.
func (r *Recorder) Frames() []pixfield.ScaledImage {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]pixfield.ScaledImage, len(r.frames))
	copy(out, r.frames)
	return out
}

// Last returns the most recent frame, if any.
func (r *Recorder) Last() (pixfield.ScaledImage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.frames) == 0 {
		return pixfield.ScaledImage{}, false
	}
	return r.frames[len(r.frames)-1], true
}
