package utils

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// DescProcessing is the progress bar description for manifest processing
const DescProcessing = "Entrifying"

// NewProgressBar creates a consistently styled progress bar on stderr.
//
// Use -1 for unknown totals (spinner mode); known totals show the count and
// iterations per second.
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	return NewProgressBarTo(os.Stderr, total, description)
}

// NewProgressBarTo is NewProgressBar with an explicit writer
func NewProgressBarTo(w io.Writer, total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
