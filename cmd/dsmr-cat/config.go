package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigFilename = ".dsmr-cat.yaml"

type config struct {
	Device   string `yaml:"device"`
	BaudRate uint   `yaml:"baud_rate"`
}

// loadConfig reads the configuration file at the given path, or the default
// file in the user's home directory if the path is empty. A missing default
// file is not an error, an explicitly given one is.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return config{}, nil
		}
		path = filepath.Join(home, defaultConfigFilename)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return config{}, nil
	}
	if err != nil {
		return config{}, fmt.Errorf("cannot read configuration file %s: %w", path, err)
	}

	var result config
	err = yaml.Unmarshal(data, &result)
	if err != nil {
		return config{}, fmt.Errorf("cannot parse configuration file %s: %w", path, err)
	}
	return result, nil
}
