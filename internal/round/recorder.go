package round

// Recorder keeps the frames fed to a controller so a session can be
// replayed.
type Recorder struct {
	frames []Frame
	limit  int
}

// NewRecorder creates a recorder that keeps at most limit frames. A limit of
// zero or less keeps everything.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

// Record appends f. Frames past the limit are dropped and Record reports
// false.
func (r *Recorder) Record(f Frame) bool {
	if r.limit > 0 && len(r.frames) >= r.limit {
		return false
	}
	r.frames = append(r.frames, f)
	return true
}

// Frames returns the recorded frames.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Replay steps c through frames and returns the last result.
func Replay(c *Controller, frames []Frame) StepResult {
	var last StepResult
	for _, f := range frames {
		last = c.Step(f)
	}
	return last
}
