package usecase

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/debyproject/deby-go/internal/config"
	"github.com/debyproject/deby-go/pkg/deberr"
)

// Target paths, relative to the working directory of the invoking
// process.
const (
	DebianDir     = "debian"
	ChangelogPath = "debian/changelog"
	ControlPath   = "debian/control"
)

// Status messages returned by the update operations. The skip variants
// signal a successful no-op, not a failure.
const (
	MsgChangelogUpdated = "Successfully created a new entry in debian/changelog file"
	MsgChangelogSkipped = "debian/changelog file not updated due to config file setting"
	MsgControlUpdated   = "Successfully created a new entry in debian/control file"
	MsgControlSkipped   = "debian/control file not updated due to config file setting"
)

// Updater writes the debian/changelog and debian/control files
// described by a loaded configuration. The changelog accumulates
// history by prepending entries, the control file is rewritten from
// scratch on every run.
type Updater struct {
	store FileStore
	clock Clock

	// Backup copies the previous contents of a file to a .bak sibling
	// before rewriting it.
	Backup bool
}

// NewUpdater returns an Updater writing through store, stamping
// changelog entries with timestamps from clock.
func NewUpdater(store FileStore, clock Clock) *Updater {
	return &Updater{
		store: store,
		clock: clock,
	}
}

// Update refreshes both metadata files in one pass and returns their
// status messages. The debian directory is created first, whether or
// not either file is enabled.
func (u *Updater) Update(cfg config.DebyConfig, version string, changes string, extraFields []string) (changelogMsg string, controlMsg string, err error) {
	if err := u.store.EnsureDir(DebianDir); err != nil {
		return "", "", deberr.New(deberr.KindDebianDir, err)
	}

	changelogMsg, err = u.renderChangelog(cfg, version, changes)
	if err != nil {
		return "", "", err
	}
	controlMsg, err = u.renderControl(cfg, extraFields)
	if err != nil {
		return "", "", err
	}

	return changelogMsg, controlMsg, nil
}

// UpdateChangelog refreshes only the changelog file.
func (u *Updater) UpdateChangelog(cfg config.DebyConfig, version string, changes string) (string, error) {
	if err := u.store.EnsureDir(DebianDir); err != nil {
		return "", deberr.New(deberr.KindDebianDir, err)
	}
	return u.renderChangelog(cfg, version, changes)
}

// UpdateControl refreshes only the control file.
func (u *Updater) UpdateControl(cfg config.DebyConfig, extraFields []string) (string, error) {
	if err := u.store.EnsureDir(DebianDir); err != nil {
		return "", deberr.New(deberr.KindDebianDir, err)
	}
	return u.renderControl(cfg, extraFields)
}

// backupFile writes contents to a uniquely named .bak sibling of path.
func (u *Updater) backupFile(path string, contents []byte) error {
	backupPath := fmt.Sprintf("%s.%s.bak", path, uuid.New().String())

	file, err := u.store.Create(backupPath)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(file, string(contents)); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
