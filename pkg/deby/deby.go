// Package deby generates Debian packaging metadata from a .debyrc
// configuration file found in the working directory. It maintains
// debian/changelog (prepending one entry per release) and
// debian/control (rewritten on every run).
//
// Calls are not synchronized. Two processes updating the same
// debian/ directory race on whole files and the last writer wins.
package deby

import (
	"github.com/debyproject/deby-go/internal/config"
	"github.com/debyproject/deby-go/internal/deby/repository"
	"github.com/debyproject/deby-go/internal/deby/usecase"
	"github.com/debyproject/deby-go/pkg/deberr"
)

// Update refreshes both metadata files and returns their status
// messages. A file disabled in the configuration is reported through
// its skip message rather than an error.
func Update(version string, changes string, extraFields []string) (changelogMsg string, controlMsg string, err error) {
	cfg, err := load()
	if err != nil {
		return "", "", err
	}

	changelogMsg, controlMsg, err = newUpdater().Update(cfg, version, changes, extraFields)
	if err != nil {
		return "", "", deberr.New(deberr.KindUpdate, err)
	}
	return changelogMsg, controlMsg, nil
}

// UpdateChangelog refreshes only debian/changelog.
func UpdateChangelog(version string, changes string) (string, error) {
	cfg, err := load()
	if err != nil {
		return "", err
	}

	msg, err := newUpdater().UpdateChangelog(cfg, version, changes)
	if err != nil {
		return "", deberr.New(deberr.KindUpdate, err)
	}
	return msg, nil
}

// UpdateControl refreshes only debian/control.
func UpdateControl(extraFields []string) (string, error) {
	cfg, err := load()
	if err != nil {
		return "", err
	}

	msg, err := newUpdater().UpdateControl(cfg, extraFields)
	if err != nil {
		return "", deberr.New(deberr.KindUpdate, err)
	}
	return msg, nil
}

func load() (config.DebyConfig, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.DebyConfig{}, deberr.New(deberr.KindConfigNew, err)
	}
	return cfg, nil
}

func newUpdater() *usecase.Updater {
	return usecase.NewUpdater(repository.NewDiskStore(), repository.SystemClock{})
}
