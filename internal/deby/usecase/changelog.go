package usecase

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/debyproject/deby-go/internal/config"
	"github.com/debyproject/deby-go/pkg/deberr"
)

// rfc2822Layout matches the date format used in Debian changelogs,
// e.g. "Tue, 1 Jul 2003 10:52:37 +0200". The day of month is not
// zero padded.
const rfc2822Layout = "Mon, 2 Jan 2006 15:04:05 -0700"

func (u *Updater) renderChangelog(cfg config.DebyConfig, version string, changes string) (string, error) {
	if !cfg.Changelog.Update {
		return MsgChangelogSkipped, nil
	}

	current, err := u.store.ReadFile(ChangelogPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return "", deberr.New(deberr.KindChangelogRead, err)
		}
		current = nil
	}

	if u.Backup && len(current) > 0 {
		if err := u.backupFile(ChangelogPath, current); err != nil {
			return "", deberr.New(deberr.KindChangelogWrite, err)
		}
	}

	entry := formatChangelogEntry(cfg.Changelog, version, formatChanges(changes), u.clock.Now().UTC())
	contents := formatContents(entry, string(current))

	file, err := u.store.Create(ChangelogPath)
	if err != nil {
		return "", deberr.New(deberr.KindChangelogOpen, err)
	}
	if _, err := io.WriteString(file, contents); err != nil {
		file.Close()
		return "", deberr.New(deberr.KindChangelogWrite, err)
	}
	if err := file.Close(); err != nil {
		return "", deberr.New(deberr.KindChangelogWrite, err)
	}

	return MsgChangelogUpdated, nil
}

// formatChanges turns free-text change notes into a bullet list, one
// "  * " bullet per non-empty line. The leading indent of the first
// bullet is stripped here and restored by the entry template.
func formatChanges(changes string) string {
	if changes == "" {
		return ""
	}

	var list strings.Builder
	for _, line := range strings.Split(changes, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		fmt.Fprintf(&list, "  * %s\n", line)
	}

	return strings.TrimSpace(list.String())
}

// formatChangelogEntry renders one changelog block. The maintainer line
// starts with a single space and two spaces separate the address from
// the date, as dpkg-parsechangelog expects.
func formatChangelogEntry(cl config.ChangelogConfig, version string, changes string, now time.Time) string {
	return fmt.Sprintf("%s (%s) %s; urgency=%s\n\n  %s\n\n -- %s <%s>  %s",
		cl.Package,
		version,
		cl.Distribution,
		cl.Urgency,
		changes,
		cl.Maintainer.Name,
		cl.Maintainer.Email,
		now.Format(rfc2822Layout),
	)
}

// formatContents places the new entry before the previous file
// contents, so the newest entry is always first.
func formatContents(entry string, current string) string {
	contents := fmt.Sprintf("\n%s\n\n%s\n", entry, current)
	return strings.TrimSpace(contents) + "\n"
}
