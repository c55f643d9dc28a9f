package config

import (
	"encoding/json"
	"fmt"
)

// The enum types below map one-to-one onto the lowercase tokens used by
// Debian control and changelog files. Parsing accepts only the lowercase
// form; anything else is rejected during deserialization.

// Urgency is the changelog urgency level.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
	UrgencyCritical  Urgency = "critical"
)

// ParseUrgency maps a lowercase token to its Urgency value.
func ParseUrgency(s string) (Urgency, error) {
	switch Urgency(s) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency, UrgencyCritical:
		return Urgency(s), nil
	}
	return "", fmt.Errorf("invalid urgency %q", s)
}

func (u Urgency) String() string {
	return string(u)
}

func (u *Urgency) UnmarshalJSON(b []byte) error {
	s, err := unmarshalEnumString(b)
	if err != nil || s == nil {
		return err
	}
	parsed, err := ParseUrgency(*s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Distribution is the changelog target distribution.
type Distribution string

const (
	DistributionUnstable     Distribution = "unstable"
	DistributionExperimental Distribution = "experimental"
)

// ParseDistribution maps a lowercase token to its Distribution value.
func ParseDistribution(s string) (Distribution, error) {
	switch Distribution(s) {
	case DistributionUnstable, DistributionExperimental:
		return Distribution(s), nil
	}
	return "", fmt.Errorf("invalid distribution %q", s)
}

func (d Distribution) String() string {
	return string(d)
}

func (d *Distribution) UnmarshalJSON(b []byte) error {
	s, err := unmarshalEnumString(b)
	if err != nil || s == nil {
		return err
	}
	parsed, err := ParseDistribution(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Priority is the control file priority of a stanza.
type Priority string

const (
	PriorityRequired  Priority = "required"
	PriorityImportant Priority = "important"
	PriorityStandard  Priority = "standard"
	PriorityOptional  Priority = "optional"
	PriorityExtra     Priority = "extra"
)

// ParsePriority maps a lowercase token to its Priority value.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityRequired, PriorityImportant, PriorityStandard, PriorityOptional, PriorityExtra:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

func (p Priority) String() string {
	return string(p)
}

func (p *Priority) UnmarshalJSON(b []byte) error {
	s, err := unmarshalEnumString(b)
	if err != nil || s == nil {
		return err
	}
	parsed, err := ParsePriority(*s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Architecture is the binary stanza architecture.
type Architecture string

const (
	ArchitectureAll Architecture = "all"
	ArchitectureAny Architecture = "any"
)

// ParseArchitecture maps a lowercase token to its Architecture value.
func ParseArchitecture(s string) (Architecture, error) {
	switch Architecture(s) {
	case ArchitectureAll, ArchitectureAny:
		return Architecture(s), nil
	}
	return "", fmt.Errorf("invalid architecture %q", s)
}

func (a Architecture) String() string {
	return string(a)
}

func (a *Architecture) UnmarshalJSON(b []byte) error {
	s, err := unmarshalEnumString(b)
	if err != nil || s == nil {
		return err
	}
	parsed, err := ParseArchitecture(*s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// unmarshalEnumString decodes a JSON string, treating null as absent.
func unmarshalEnumString(b []byte) (*string, error) {
	if string(b) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
