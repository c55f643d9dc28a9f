package usecase

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/debyproject/deby-go/internal/config"
	"github.com/debyproject/deby-go/pkg/deberr"
)

func (u *Updater) renderControl(cfg config.DebyConfig, extraFields []string) (string, error) {
	if !cfg.Control.Update {
		return MsgControlSkipped, nil
	}

	if u.Backup {
		current, err := u.store.ReadFile(ControlPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", deberr.New(deberr.KindControlOpen, err)
		}
		if len(current) > 0 {
			if err := u.backupFile(ControlPath, current); err != nil {
				return "", deberr.New(deberr.KindControlWrite, err)
			}
		}
	}

	contents := FormatControl(cfg.Control, extraFields)

	file, err := u.store.Create(ControlPath)
	if err != nil {
		return "", deberr.New(deberr.KindControlOpen, err)
	}
	if _, err := io.WriteString(file, contents); err != nil {
		file.Close()
		return "", deberr.New(deberr.KindControlWrite, err)
	}
	if err := file.Close(); err != nil {
		return "", deberr.New(deberr.KindControlWrite, err)
	}

	return MsgControlUpdated, nil
}

// FormatControl renders the whole control file: source stanza, binary
// stanza, then any caller supplied fields verbatim. The file is a
// point-in-time snapshot, unlike the changelog it carries no history.
func FormatControl(ctl config.ControlConfig, extraFields []string) string {
	var b strings.Builder

	writeSourceStanza(&b, ctl.SourceControl)
	b.WriteString("\n")
	writeBinaryStanza(&b, ctl.BinaryControl)

	if len(extraFields) > 0 {
		b.WriteString("\n")
		for _, field := range extraFields {
			b.WriteString(field)
			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String()) + "\n"
}

func writeSourceStanza(b *strings.Builder, src config.SourceControl) {
	writeField := func(key, value string) {
		if value != "" {
			fmt.Fprintf(b, "%s: %s\n", key, value)
		}
	}

	writeField("Source", src.Source)
	writeField("Section", src.Section)
	// Priority and Maintainer always render
	fmt.Fprintf(b, "Priority: %s\n", src.Priority)
	fmt.Fprintf(b, "Maintainer: %s <%s>\n", src.Maintainer.Name, src.Maintainer.Email)
	writeBuildDepends(b, src.BuildDepends)
	writeField("Standards-Version", src.StandardsVersion)
	writeField("Homepage", src.Homepage)
	writeField("Vcs-Browser", src.VcsBrowser)
}

func writeBinaryStanza(b *strings.Builder, bin config.BinaryControl) {
	writeField := func(key, value string) {
		if value != "" {
			fmt.Fprintf(b, "%s: %s\n", key, value)
		}
	}

	writeField("Package", bin.Package)
	writeField("Section", bin.Section)
	// Priority and Architecture always render
	fmt.Fprintf(b, "Priority: %s\n", bin.Priority)
	writeField("Pre-Depends", bin.PreDepends)
	fmt.Fprintf(b, "Architecture: %s\n", bin.Architecture)
	writeField("Description", bin.Description)
}

// writeBuildDepends renders Build-Depends as a single line for one
// entry and as one continuation line per entry otherwise. Continuation
// lines start with exactly one space and the last entry carries no
// trailing comma.
func writeBuildDepends(b *strings.Builder, deps []string) {
	switch len(deps) {
	case 0:
	case 1:
		fmt.Fprintf(b, "Build-Depends: %s\n", deps[0])
	default:
		b.WriteString("Build-Depends:\n")
		for i, dep := range deps {
			if i == len(deps)-1 {
				fmt.Fprintf(b, " %s\n", dep)
			} else {
				fmt.Fprintf(b, " %s,\n", dep)
			}
		}
	}
}
