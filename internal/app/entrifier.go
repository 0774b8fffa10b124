package app

import (
	"time"

	"github.com/quantmind-br/entrify/internal/domain"
	"github.com/quantmind-br/entrify/internal/entry"
	"github.com/quantmind-br/entrify/internal/locator"
	"github.com/quantmind-br/entrify/internal/manifest"
	"github.com/quantmind-br/entrify/internal/utils"
	"github.com/spf13/afero"
)

// Entrifier creates index.js entry points for package.json manifests and
// removes the manifests it replaced
type Entrifier struct {
	fs          afero.Fs
	locator     *locator.Locator
	loader      *manifest.Loader
	sink        domain.Sink
	logger      *utils.Logger
	newProgress func(total int) domain.Progress
}

// EntrifierOptions contains the collaborators of an Entrifier.
// Every field is optional.
type EntrifierOptions struct {
	// Fs is the filesystem to operate on, the OS filesystem by default
	Fs afero.Fs
	// Sink receives diagnostics, dropped by default
	Sink domain.Sink
	// Logger receives debug traces, discarded by default
	Logger *utils.Logger
	// NewProgress is called once per run with the number of manifests found
	NewProgress func(total int) domain.Progress
}

// NewEntrifier creates a new Entrifier
func NewEntrifier(opts EntrifierOptions) *Entrifier {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	sink := opts.Sink
	if sink == nil {
		sink = utils.NopSink{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	return &Entrifier{
		fs:          fs,
		locator:     locator.New(fs),
		loader:      manifest.NewLoader(fs),
		sink:        sink,
		logger:      logger.WithComponent("entrifier"),
		newProgress: opts.NewProgress,
	}
}

// Run processes every manifest below dir.
//
// Configuration errors and traversal failures are returned before any
// manifest is touched. Failures on a single manifest are reported to the
// sink and do not stop the run.
func (e *Entrifier) Run(dir string, opts domain.Options) error {
	root, err := domain.ResolvePath(dir)
	if err != nil {
		return err
	}

	opts = opts.Merge()
	format, err := entry.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	startTime := time.Now()
	paths, err := e.locator.Locate(root)
	if err != nil {
		return err
	}

	e.logger.Debug().
		Str("root", root).
		Str("format", string(format)).
		Int("manifests", len(paths)).
		Msg("Located manifests")

	var progress domain.Progress
	if e.newProgress != nil {
		progress = e.newProgress(len(paths))
	}

	for _, pkgPath := range paths {
		e.process(pkgPath, format)
		if progress != nil {
			_ = progress.Add(1)
		}
	}

	if progress != nil {
		_ = progress.Finish()
	}

	e.logger.Debug().
		Dur("duration", time.Since(startTime)).
		Msg("Run complete")

	return nil
}

// process runs one manifest through decision and mutation
func (e *Entrifier) process(pkgPath string, format entry.Format) {
	e.sink.Notice(domain.EventFound, pkgPath)

	m, err := e.loader.Load(pkgPath)
	if err != nil {
		e.fail(pkgPath, "read", err)
		return
	}

	d, err := entry.Decide(m, format, e.exists)
	if err != nil {
		e.fail(pkgPath, "decide", err)
		return
	}

	e.logger.Debug().
		Str("path", pkgPath).
		Stringer("outcome", d.Outcome).
		Msg("Decided")

	switch d.Outcome {
	case entry.SkipNoMain:
		e.sink.Warn(domain.EventSkipNoMain, pkgPath, nil)
	case entry.SkipMainIsIndex:
		e.sink.Warn(domain.EventSkipMainIsIndex, pkgPath, nil)
	case entry.SkipAlreadyExists:
		e.sink.Warn(domain.EventSkipAlreadyExists, d.IndexPath, nil)
	case entry.Create:
		if err := e.apply(pkgPath, d); err != nil {
			e.sink.Warn(domain.EventFailed, pkgPath, err)
		}
	}
}

func (e *Entrifier) fail(pkgPath, op string, err error) {
	e.sink.Warn(domain.EventFailed, pkgPath, domain.NewManifestError(pkgPath, op, err))
}

func (e *Entrifier) exists(path string) (bool, error) {
	return afero.Exists(e.fs, path)
}
