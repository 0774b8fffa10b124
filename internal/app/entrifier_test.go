package app

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/quantmind-br/entrify/internal/domain"
	"github.com/quantmind-br/entrify/internal/utils"
	"github.com/quantmind-br/entrify/tests/mocks"
	"github.com/quantmind-br/entrify/tests/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// errIs matches an error argument wrapping target
type errIs struct{ target error }

func (m errIs) Matches(x any) bool {
	err, ok := x.(error)
	return ok && errors.Is(err, m.target)
}

func (m errIs) String() string {
	return fmt.Sprintf("is %v", m.target)
}

func fixtureFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	testutil.WriteTree(t, fs, "/tree", testutil.FixtureTree())
	return fs
}

func TestEntrifier_CreatesIndexForPackageJSON(t *testing.T) {
	fs := fixtureFs(t)
	e := NewEntrifier(EntrifierOptions{Fs: fs})

	require.NoError(t, e.Run("/tree/valid-package", domain.Options{}))

	assert.True(t, testutil.Exists(t, fs, "/tree/valid-package/index.js"))
	assert.False(t, testutil.Exists(t, fs, "/tree/valid-package/package.json"))
	assert.Equal(t, "module.exports = require('./lib/foo.js')", testutil.ReadString(t, fs, "/tree/valid-package/index.js"))
}

func TestEntrifier_CreatesIndexInESMFormat(t *testing.T) {
	fs := fixtureFs(t)
	e := NewEntrifier(EntrifierOptions{Fs: fs})

	require.NoError(t, e.Run("/tree/valid-package", domain.Options{Format: "esm"}))

	assert.False(t, testutil.Exists(t, fs, "/tree/valid-package/package.json"))
	src := testutil.ReadString(t, fs, "/tree/valid-package/index.js")
	assert.Regexp(t, `import`, src)
	assert.Equal(t, "import validPackage from './lib/foo.js'\n\nexport default validPackage", src)
}

func TestEntrifier_MainIsIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Notice(domain.EventFound, "/tree/invalid-package/package.json"),
		sink.EXPECT().Warn(domain.EventSkipMainIsIndex, "/tree/invalid-package/package.json", nil),
	)

	fs := fixtureFs(t)
	e := NewEntrifier(EntrifierOptions{Fs: fs, Sink: sink})

	require.NoError(t, e.Run("/tree/invalid-package", domain.Options{}))

	assert.False(t, testutil.Exists(t, fs, "/tree/invalid-package/index.js"))
	assert.True(t, testutil.Exists(t, fs, "/tree/invalid-package/package.json"))
}

func TestEntrifier_NestedPackage(t *testing.T) {
	fs := fixtureFs(t)
	e := NewEntrifier(EntrifierOptions{Fs: fs, Logger: testutil.NewTestLogger(t)})

	require.NoError(t, e.Run("/tree/nested-package", domain.Options{}))

	assert.True(t, testutil.Exists(t, fs, "/tree/nested-package/valid-package/index.js"))
	assert.False(t, testutil.Exists(t, fs, "/tree/nested-package/valid-package/package.json"))
	assert.Equal(t, "module.exports = require('./lib/foo.js')",
		testutil.ReadString(t, fs, "/tree/nested-package/valid-package/index.js"))
}

func TestEntrifier_Diagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Notice(domain.EventFound, "/tree/valid-package/package.json"),
		sink.EXPECT().Notice(domain.EventCreated, "/tree/valid-package/index.js"),
		sink.EXPECT().Notice(domain.EventDeleted, "/tree/valid-package/package.json"),
	)

	e := NewEntrifier(EntrifierOptions{Fs: fixtureFs(t), Sink: sink})

	require.NoError(t, e.Run("/tree/valid-package", domain.Options{}))
}

func TestEntrifier_WholeTree(t *testing.T) {
	fs := fixtureFs(t)
	counts := utils.NewCountingSink(nil)
	e := NewEntrifier(EntrifierOptions{Fs: fs, Sink: counts})

	require.NoError(t, e.Run("/tree", domain.Options{}))

	want := map[string]string{
		"valid-package/index.js":                  "module.exports = require('./lib/foo.js')",
		"valid-package/lib/foo.js":                testutil.FooModule,
		"invalid-package/package.json":            testutil.InvalidManifest,
		"nested-package/valid-package/index.js":   "module.exports = require('./lib/foo.js')",
		"nested-package/valid-package/lib/foo.js": testutil.FooModule,
	}
	if diff := cmp.Diff(want, testutil.Snapshot(t, fs, "/tree")); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 3, counts.Count(domain.EventFound))
	assert.Equal(t, 2, counts.Count(domain.EventCreated))
	assert.Equal(t, 2, counts.Count(domain.EventDeleted))
	assert.Equal(t, 1, counts.Count(domain.EventSkipMainIsIndex))
	assert.Empty(t, counts.Errors())
}

func TestEntrifier_Idempotent(t *testing.T) {
	fs := fixtureFs(t)
	e := NewEntrifier(EntrifierOptions{Fs: fs})

	require.NoError(t, e.Run("/tree", domain.Options{Format: "esm"}))
	first := testutil.Snapshot(t, fs, "/tree")

	counts := utils.NewCountingSink(nil)
	again := NewEntrifier(EntrifierOptions{Fs: fs, Sink: counts})
	require.NoError(t, again.Run("/tree", domain.Options{Format: "esm"}))

	if diff := cmp.Diff(first, testutil.Snapshot(t, fs, "/tree")); diff != "" {
		t.Errorf("second run changed the tree (-first +second):\n%s", diff)
	}
	assert.Equal(t, 1, counts.Count(domain.EventFound))
	assert.Equal(t, 0, counts.Count(domain.EventCreated))
}

func TestEntrifier_NoMain(t *testing.T) {
	for name, manifest := range map[string]string{
		"absent": `{"name": "x"}`,
		"empty":  `{"main": ""}`,
		"null":   `{"main": null}`,
		"false":  `{"main": false}`,
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sink := mocks.NewMockSink(ctrl)
			gomock.InOrder(
				sink.EXPECT().Notice(domain.EventFound, "/pkg/package.json"),
				sink.EXPECT().Warn(domain.EventSkipNoMain, "/pkg/package.json", nil),
			)

			fs := afero.NewMemMapFs()
			testutil.WriteTree(t, fs, "/pkg", map[string]string{"package.json": manifest})
			before := testutil.Snapshot(t, fs, "/pkg")

			require.NoError(t, NewEntrifier(EntrifierOptions{Fs: fs, Sink: sink}).Run("/pkg", domain.Options{}))

			assert.Equal(t, before, testutil.Snapshot(t, fs, "/pkg"))
		})
	}
}

func TestEntrifier_IndexAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Notice(domain.EventFound, "/pkg/package.json"),
		sink.EXPECT().Warn(domain.EventSkipAlreadyExists, "/pkg/index.js", nil),
	)

	fs := afero.NewMemMapFs()
	testutil.WriteTree(t, fs, "/pkg", map[string]string{
		"package.json": `{"main": "lib/foo.js"}`,
		"index.js":     "// hand written",
		"lib/foo.js":   testutil.FooModule,
	})
	before := testutil.Snapshot(t, fs, "/pkg")

	require.NoError(t, NewEntrifier(EntrifierOptions{Fs: fs, Sink: sink}).Run("/pkg", domain.Options{}))

	assert.Equal(t, before, testutil.Snapshot(t, fs, "/pkg"))
}

func TestEntrifier_WriteConflict(t *testing.T) {
	mem := afero.NewMemMapFs()
	testutil.WriteTree(t, mem, "/pkg", map[string]string{
		"package.json": `{"main": "lib/foo.js"}`,
		"index.js":     "// appeared after the check",
	})
	fs := testutil.NewFaultFs(mem)
	fs.Hidden["/pkg/index.js"] = true

	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Notice(domain.EventFound, "/pkg/package.json"),
		sink.EXPECT().Warn(domain.EventFailed, "/pkg/package.json", errIs{domain.ErrWriteConflict}),
	)

	require.NoError(t, NewEntrifier(EntrifierOptions{Fs: fs, Sink: sink}).Run("/pkg", domain.Options{}))

	assert.Equal(t, "// appeared after the check", testutil.ReadString(t, mem, "/pkg/index.js"))
	assert.True(t, testutil.Exists(t, mem, "/pkg/package.json"))
}

func TestEntrifier_ManifestDeleteFailed(t *testing.T) {
	mem := afero.NewMemMapFs()
	testutil.WriteTree(t, mem, "/pkg", map[string]string{"package.json": `{"main": "lib/foo.js"}`})
	fs := testutil.NewFaultFs(mem)
	fs.RemoveErr["/pkg/package.json"] = os.ErrPermission

	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Notice(domain.EventFound, "/pkg/package.json"),
		sink.EXPECT().Notice(domain.EventCreated, "/pkg/index.js"),
		sink.EXPECT().Warn(domain.EventFailed, "/pkg/package.json", errIs{domain.ErrManifestDeleteFailed}),
	)

	require.NoError(t, NewEntrifier(EntrifierOptions{Fs: fs, Sink: sink}).Run("/pkg", domain.Options{}))

	// both files remain
	assert.True(t, testutil.Exists(t, mem, "/pkg/index.js"))
	assert.True(t, testutil.Exists(t, mem, "/pkg/package.json"))
}

func TestEntrifier_FailureDoesNotStopRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteTree(t, fs, "/repo", map[string]string{
		"a-broken/package.json":  `{"main": `,
		"b-numeric/package.json": `{"main": 7}`,
		"c-valid/package.json":   `{"main": "src/main.js"}`,
	})
	counts := utils.NewCountingSink(nil)

	require.NoError(t, NewEntrifier(EntrifierOptions{Fs: fs, Sink: counts}).Run("/repo", domain.Options{}))

	assert.Equal(t, "module.exports = require('./src/main.js')", testutil.ReadString(t, fs, "/repo/c-valid/index.js"))
	assert.True(t, testutil.Exists(t, fs, "/repo/a-broken/package.json"))
	assert.True(t, testutil.Exists(t, fs, "/repo/b-numeric/package.json"))

	errs := counts.Errors()
	require.Len(t, errs, 2)
	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrManifestInvalid)
		var me *domain.ManifestError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, "read", me.Op)
	}
}

func TestEntrifier_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		opts    domain.Options
		wantErr error
	}{
		{name: "missing path", dir: "", wantErr: domain.ErrMissingPath},
		{name: "unsupported format", dir: "/tree", opts: domain.Options{Format: "umd"}, wantErr: domain.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sink := mocks.NewMockSink(ctrl) // no calls expected

			fs := fixtureFs(t)
			before := testutil.Snapshot(t, fs, "/tree")

			err := NewEntrifier(EntrifierOptions{Fs: fs, Sink: sink}).Run(tt.dir, tt.opts)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsFatal(err))
			assert.Equal(t, before, testutil.Snapshot(t, fs, "/tree"))
		})
	}
}

func TestEntrifier_TraversalFailedAbortsBeforeMutation(t *testing.T) {
	mem := fixtureFs(t)
	fs := testutil.NewFaultFs(mem)
	fs.OpenErr["/tree/nested-package/valid-package"] = os.ErrPermission
	before := testutil.Snapshot(t, mem, "/tree")

	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl) // no calls expected

	err := NewEntrifier(EntrifierOptions{Fs: fs, Sink: sink}).Run("/tree", domain.Options{})

	assert.ErrorIs(t, err, domain.ErrTraversalFailed)
	assert.Equal(t, before, testutil.Snapshot(t, mem, "/tree"))
}

func TestEntrifier_MissingRootIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)

	err := NewEntrifier(EntrifierOptions{Fs: afero.NewMemMapFs(), Sink: sink}).Run("/nowhere", domain.Options{})

	assert.NoError(t, err)
}

func TestEntrifier_Progress(t *testing.T) {
	ctrl := gomock.NewController(t)
	progress := mocks.NewMockProgress(ctrl)
	progress.EXPECT().Add(1).Return(nil).Times(3)
	progress.EXPECT().Finish().Return(nil)

	var total int
	e := NewEntrifier(EntrifierOptions{
		Fs: fixtureFs(t),
		NewProgress: func(n int) domain.Progress {
			total = n
			return progress
		},
	})

	require.NoError(t, e.Run("/tree", domain.Options{}))
	assert.Equal(t, 3, total)
}

func TestEntrifier_LogsDecisions(t *testing.T) {
	logger, buf := testutil.NewBufferLogger(t)
	e := NewEntrifier(EntrifierOptions{Fs: fixtureFs(t), Logger: logger})

	require.NoError(t, e.Run("/tree/invalid-package", domain.Options{}))

	assert.Contains(t, buf.String(), `"component":"entrifier"`)
	assert.Contains(t, buf.String(), `"outcome":"skip-main-is-index"`)
}
