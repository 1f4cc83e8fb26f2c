package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/campus-ops/distance-cli/internal/pipeline"
)

// newProgressSink returns a terminal progress bar when stderr is a TTY,
// otherwise a no-op sink (row counts still end up in the run log).
func newProgressSink(total int) pipeline.ProgressSink {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return pipeline.NopSink{}
	}
	return &barSink{bar: progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Scoring addresses"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)}
}

type barSink struct {
	bar *progressbar.ProgressBar
}

func (s *barSink) Progress(completed, _ int) {
	_ = s.bar.Set(completed)
}
