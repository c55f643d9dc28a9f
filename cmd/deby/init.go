package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/debyproject/deby-go/internal/config"
)

// runInit interactively scaffolds a .debyrc with both files enabled.
func runInit() (err error) {
	if _, statErr := os.Stat(config.ConfigFile); statErr == nil {
		prompt := promptui.Prompt{
			Label:     ".debyrc already exists and will be overwritten. Are you sure?",
			IsConfirm: true,
		}
		_, promptErr := prompt.Run()
		if promptErr != nil {
			if promptErr == promptui.ErrAbort {
				fmt.Println("Keeping the existing .debyrc")
				return nil
			}
			return promptErr
		}
	}

	pkg, err := ask("Package name")
	if err != nil {
		return
	}
	name, err := ask("Maintainer name")
	if err != nil {
		return
	}
	email, err := ask("Maintainer email")
	if err != nil {
		return
	}
	description, err := ask("Short package description")
	if err != nil {
		return
	}
	distInput, err := askDefault("Distribution", config.DistributionUnstable.String(), validateDistribution)
	if err != nil {
		return
	}
	urgencyInput, err := askDefault("Urgency", config.UrgencyLow.String(), validateUrgency)
	if err != nil {
		return
	}

	maintainer := config.Maintainer{Name: name, Email: email}

	cfg := config.Default()
	cfg.Changelog.Update = true
	cfg.Changelog.Package = pkg
	cfg.Changelog.Maintainer = maintainer
	cfg.Changelog.Distribution, err = config.ParseDistribution(distInput)
	if err != nil {
		return
	}
	cfg.Changelog.Urgency, err = config.ParseUrgency(urgencyInput)
	if err != nil {
		return
	}
	cfg.Control.Update = true
	cfg.Control.SourceControl.Source = pkg
	cfg.Control.SourceControl.Maintainer = maintainer
	cfg.Control.BinaryControl.Package = pkg
	cfg.Control.BinaryControl.Description = description

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	data = append(data, '\n')

	err = os.WriteFile(config.ConfigFile, data, 0644)
	if err != nil {
		return
	}

	fmt.Println(".debyrc written. Adjust the empty fields, then run deby check. Happy hacking!")
	return
}

func ask(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
	}
	return prompt.Run()
}

func askDefault(label string, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  def,
		Validate: validate,
	}
	return prompt.Run()
}

func validateDistribution(input string) error {
	_, err := config.ParseDistribution(input)
	return err
}

func validateUrgency(input string) error {
	_, err := config.ParseUrgency(input)
	return err
}
