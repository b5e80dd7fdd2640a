package scene

// FrameTimer averages frame times over a reporting interval.
type FrameTimer struct {
	Interval float32 // seconds between reports

	total  float32
	frames int
}

// Tick records one frame. Once more than Interval seconds have accumulated
// it returns the average frame time and resets.
func (f *FrameTimer) Tick(frameTime float32) (avg float32, ok bool) {
	f.total += frameTime
	f.frames++
	if f.total <= f.Interval {
		return 0, false
	}
	avg = f.total / float32(f.frames)
	f.total, f.frames = 0, 0
	return avg, true
}
