package usecase

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/debyproject/deby-go/internal/config"
	"github.com/debyproject/deby-go/pkg/deberr"
)

func TestFormatControl(t *testing.T) {
	cfg := controlConfig()

	got := FormatControl(cfg.Control, []string{"X-Custom: value"})

	want := `Source: deby
Section: devel
Priority: standard
Maintainer: Jane Doe <jane@example.com>
Build-Depends:
 debhelper (>= 11),
 golang-go
Standards-Version: 4.5.0
Homepage: https://example.com/deby
Vcs-Browser: https://example.com/deby.git

Package: deby
Section: devel
Priority: extra
Pre-Depends: dpkg (>= 1.14.0)
Architecture: all
Description: configuration driven Debian metadata generator

X-Custom: value
`
	assert.Equal(t, want, got)
}

func TestFormatControlNoExtras(t *testing.T) {
	cfg := controlConfig()

	got := FormatControl(cfg.Control, nil)

	assert.True(t, strings.HasSuffix(got, "Description: configuration driven Debian metadata generator\n"))
	assert.False(t, strings.HasSuffix(got, "\n\n"))
}

func TestFormatControlOmitsEmptyFields(t *testing.T) {
	cfg := controlConfig()
	cfg.Control.SourceControl.Homepage = ""
	cfg.Control.SourceControl.VcsBrowser = ""
	cfg.Control.BinaryControl.PreDepends = ""

	got := FormatControl(cfg.Control, nil)

	assert.NotContains(t, got, "Homepage:")
	assert.NotContains(t, got, "Vcs-Browser:")
	assert.NotContains(t, got, "Pre-Depends:")
}

func TestFormatControlSingleHomepageLine(t *testing.T) {
	cfg := controlConfig()
	cfg.Control.SourceControl.Homepage = "http://x"

	got := FormatControl(cfg.Control, nil)

	assert.Equal(t, 1, strings.Count(got, "Homepage: http://x\n"))
}

func TestFormatControlAlwaysRendersPriority(t *testing.T) {
	ctl := config.Default().Control

	got := FormatControl(ctl, nil)

	// enum-backed fields render even for an otherwise empty config
	assert.Equal(t, 2, strings.Count(got, "Priority: optional\n"))
	assert.Contains(t, got, "Architecture: any\n")
	assert.Contains(t, got, "Maintainer:  <>\n")
}

func TestFormatControlExtrasVerbatim(t *testing.T) {
	cfg := controlConfig()

	got := FormatControl(cfg.Control, []string{"X-Custom: value", "Rules-Requires-Root: no"})

	// caller supplied lines pass through unmodified, in input order
	assert.Contains(t, got, "Description: configuration driven Debian metadata generator\n\nX-Custom: value\nRules-Requires-Root: no\n")
}

func TestWriteBuildDepends(t *testing.T) {
	type args struct {
		deps []string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "empty list omitted",
			args: args{deps: nil},
			want: "",
		},
		{
			name: "single entry stays on one line",
			args: args{deps: []string{"debhelper (>= 11)"}},
			want: "Build-Depends: debhelper (>= 11)\n",
		},
		{
			name: "multiple entries use continuation lines",
			args: args{deps: []string{"debhelper (>= 11)", "golang-go", "dh-golang"}},
			want: "Build-Depends:\n debhelper (>= 11),\n golang-go,\n dh-golang\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			writeBuildDepends(&b, tt.args.deps)
			if got := b.String(); got != tt.want {
				t.Errorf("writeBuildDepends() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUpdateControlSkipped(t *testing.T) {
	files := map[string]string{}
	store := newMemStore(files)
	updater := NewUpdater(store, fixedClock())

	cfg := controlConfig()
	cfg.Control.Update = false

	msg, err := updater.UpdateControl(cfg, nil)
	assert.NoError(t, err)
	assert.Equal(t, MsgControlSkipped, msg)
	assert.Empty(t, store.CreateCalls())
	assert.Empty(t, files)
}

func TestUpdateControlOverwrites(t *testing.T) {
	files := map[string]string{ControlPath: "Source: stale\n\nPackage: stale\n"}
	updater := NewUpdater(newMemStore(files), fixedClock())

	msg, err := updater.UpdateControl(controlConfig(), nil)
	assert.NoError(t, err)
	assert.Equal(t, MsgControlUpdated, msg)

	// previous contents are fully replaced, never appended to
	assert.NotContains(t, files[ControlPath], "stale")
	assert.True(t, strings.HasPrefix(files[ControlPath], "Source: deby\n"))
}

func TestUpdateControlOpenError(t *testing.T) {
	store := newMemStore(map[string]string{})
	store.CreateFunc = func(path string) (io.WriteCloser, error) {
		return nil, errors.New("permission denied")
	}
	updater := NewUpdater(store, fixedClock())

	_, err := updater.UpdateControl(controlConfig(), nil)
	assert.Error(t, err)
	assert.True(t, deberr.IsKind(err, deberr.KindControlOpen))
}

func TestUpdateControlWriteError(t *testing.T) {
	store := newMemStore(map[string]string{})
	store.CreateFunc = func(path string) (io.WriteCloser, error) {
		return failWriter{}, nil
	}
	updater := NewUpdater(store, fixedClock())

	_, err := updater.UpdateControl(controlConfig(), nil)
	assert.Error(t, err)
	assert.True(t, deberr.IsKind(err, deberr.KindControlWrite))
}
