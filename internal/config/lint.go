package config

import (
	"fmt"

	validator "gopkg.in/go-playground/validator.v9"
)

// Lint inspects a loaded configuration and reports every problem that
// would produce broken or incomplete packaging metadata. An empty slice
// means the configuration is clean.
func Lint(cfg DebyConfig) []string {
	var problems []string

	validate := validator.New()
	err := validate.Struct(cfg)
	if err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range fieldErrs {
				problems = append(problems, fmt.Sprintf("%s: failed %s check on value %q",
					fieldErr.Namespace(), fieldErr.ActualTag(), fieldErr.Value()))
			}
		} else {
			problems = append(problems, err.Error())
		}
	}

	if cfg.Changelog.Update {
		if cfg.Changelog.Package == "" {
			problems = append(problems, "changelog.package: empty but changelog.update is true")
		}
		if cfg.Changelog.Maintainer.Name == "" {
			problems = append(problems, "changelog.maintainer.name: empty but changelog.update is true")
		}
		if cfg.Changelog.Maintainer.Email == "" {
			problems = append(problems, "changelog.maintainer.email: empty but changelog.update is true")
		}
	}

	if cfg.Control.Update {
		if cfg.Control.SourceControl.Source == "" {
			problems = append(problems, "control.sourceControl.source: empty but control.update is true")
		}
		if cfg.Control.SourceControl.Maintainer.Name == "" {
			problems = append(problems, "control.sourceControl.maintainer.name: empty but control.update is true")
		}
		if cfg.Control.BinaryControl.Package == "" {
			problems = append(problems, "control.binaryControl.package: empty but control.update is true")
		}
		if cfg.Control.BinaryControl.Description == "" {
			problems = append(problems, "control.binaryControl.description: empty but control.update is true")
		}
	}

	if !cfg.Changelog.Update && !cfg.Control.Update {
		problems = append(problems, "nothing to do: both changelog.update and control.update are false")
	}

	return problems
}
