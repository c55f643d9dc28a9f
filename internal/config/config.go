package config

import (
	"os"

	"github.com/ghodss/yaml"

	"github.com/debyproject/deby-go/pkg/deberr"
)

// ConfigFile is the fixed configuration file name, read from the
// current working directory.
const ConfigFile = ".debyrc"

// DebyConfig is the root configuration record loaded from .debyrc.
// It is constructed once per invocation and never mutated afterwards.
type DebyConfig struct {
	Changelog ChangelogConfig `json:"changelog"`
	Control   ControlConfig   `json:"control"`
}

// Maintainer identifies the person named in the generated files.
type Maintainer struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

// ChangelogConfig drives the debian/changelog formatter.
type ChangelogConfig struct {
	Update       bool         `json:"update"`
	Package      string       `json:"package"`
	Distribution Distribution `json:"distribution"`
	Urgency      Urgency      `json:"urgency"`
	Maintainer   Maintainer   `json:"maintainer"`
}

// ControlConfig drives the debian/control formatter.
type ControlConfig struct {
	Update        bool          `json:"update"`
	SourceControl SourceControl `json:"sourceControl"`
	BinaryControl BinaryControl `json:"binaryControl"`
}

// SourceControl holds the fields of the control file's source stanza.
type SourceControl struct {
	Source           string     `json:"source"`
	Maintainer       Maintainer `json:"maintainer"`
	Section          string     `json:"section"`
	Priority         Priority   `json:"priority"`
	BuildDepends     []string   `json:"buildDepends"`
	StandardsVersion string     `json:"standardsVersion"`
	Homepage         string     `json:"homepage" validate:"omitempty,url"`
	VcsBrowser       string     `json:"vcsBrowser" validate:"omitempty,url"`
}

// BinaryControl holds the fields of the control file's binary stanza.
type BinaryControl struct {
	Package      string       `json:"package"`
	Description  string       `json:"description"`
	Section      string       `json:"section"`
	Priority     Priority     `json:"priority"`
	PreDepends   string       `json:"preDepends"`
	Architecture Architecture `json:"architecture"`
}

// Default returns the configuration used when .debyrc omits a section.
// Both update flags are off, so a defaulted section never touches disk.
func Default() DebyConfig {
	return DebyConfig{
		Changelog: ChangelogConfig{
			Update:       false,
			Distribution: DistributionUnstable,
			Urgency:      UrgencyLow,
		},
		Control: ControlConfig{
			Update: false,
			SourceControl: SourceControl{
				Priority: PriorityOptional,
			},
			BinaryControl: BinaryControl{
				Priority:     PriorityOptional,
				Architecture: ArchitectureAny,
			},
		},
	}
}

// LoadConfig reads and parses .debyrc from the current directory.
// Missing sections and missing fields fall back to Default values;
// a missing file or malformed content is an error.
func LoadConfig() (config DebyConfig, err error) {
	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		return config, deberr.New(deberr.KindConfigRead, err)
	}

	config = Default()
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return DebyConfig{}, deberr.New(deberr.KindDeserialize, err)
	}

	return config, nil
}
