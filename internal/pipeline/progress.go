package pipeline

// ProgressSink receives one event per completed row. Events arrive in
// order, with completed strictly increasing up to total.
type ProgressSink interface {
	Progress(completed, total int)
}

// NopSink discards progress events.
type NopSink struct{}

// Progress implements ProgressSink.
func (NopSink) Progress(int, int) {}
