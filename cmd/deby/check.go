package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"pault.ag/go/debian/control"
	"pault.ag/go/debian/dependency"

	"github.com/debyproject/deby-go/internal/config"
	"github.com/debyproject/deby-go/internal/deby/usecase"
)

// runCheck validates the loaded configuration and makes sure the
// control file it would produce survives a round trip through a real
// control file parser. An already generated debian/control, when
// present, is parsed as well and its source package reported.
func runCheck() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	problems := config.Lint(cfg)
	problems = append(problems, reportExistingControl()...)
	problems = append(problems, checkControlOutput(cfg)...)
	problems = append(problems, checkDependencies(cfg)...)

	if len(problems) == 0 {
		fmt.Println(".debyrc looks good")
		return nil
	}
	for _, problem := range problems {
		fmt.Println(problem)
	}
	return fmt.Errorf("found %d problem(s) in %s", len(problems), config.ConfigFile)
}

// reportExistingControl parses the first stanza of a previously
// generated debian/control. A missing file is fine, an unreadable or
// unparseable one is a finding.
func reportExistingControl() []string {
	data, err := os.ReadFile(usecase.ControlPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return []string{fmt.Sprintf("%s: %v", usecase.ControlPath, err)}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []string{fmt.Sprintf("%s: empty file", usecase.ControlPath)}
	}

	reader, err := control.NewParagraphReader(bytes.NewReader(data), nil)
	if err != nil {
		return []string{fmt.Sprintf("%s: does not parse: %v", usecase.ControlPath, err)}
	}
	paragraph, err := reader.Next()
	if err != nil {
		return []string{fmt.Sprintf("%s: does not parse: %v", usecase.ControlPath, err)}
	}

	fmt.Printf("current %s: Source: %s\n", usecase.ControlPath, paragraph.Values["Source"])
	return nil
}

// checkControlOutput renders the control file the configuration would
// produce and feeds it back through the parser, expecting the source
// and binary stanzas.
func checkControlOutput(cfg config.DebyConfig) []string {
	rendered := usecase.FormatControl(cfg.Control, nil)

	reader, err := control.NewParagraphReader(strings.NewReader(rendered), nil)
	if err != nil {
		return []string{fmt.Sprintf("control output: %v", err)}
	}
	stanzas, err := reader.All()
	if err != nil {
		return []string{fmt.Sprintf("control output: %v", err)}
	}
	if len(stanzas) != 2 {
		return []string{fmt.Sprintf("control output: expected 2 stanzas, parsed %d", len(stanzas))}
	}

	return nil
}

func checkDependencies(cfg config.DebyConfig) []string {
	var problems []string

	for _, dep := range cfg.Control.SourceControl.BuildDepends {
		if _, err := dependency.Parse(dep); err != nil {
			problems = append(problems, fmt.Sprintf("control.sourceControl.buildDepends: %q: %v", dep, err))
		}
	}
	if pre := cfg.Control.BinaryControl.PreDepends; pre != "" {
		if _, err := dependency.Parse(pre); err != nil {
			problems = append(problems, fmt.Sprintf("control.binaryControl.preDepends: %q: %v", pre, err))
		}
	}

	return problems
}
