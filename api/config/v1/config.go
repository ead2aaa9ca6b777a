/**
# Copyright 2024 NVIDIA CORPORATION
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package v1

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v2"

	"sigs.k8s.io/yaml"
)

// Version indicates the version of the 'Config' struct used to hold configuration information.
const Version = "v1"

var errInvalidConfig = errors.New("invalid config")

// Config is a versioned struct used to hold configuration information.
type Config struct {
	Version string `json:"version"         yaml:"version"`
	Flags   Flags  `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Logger is the logging interface required when checking a config.
type Logger interface {
	Warningf(string, ...interface{})
}

// NewConfig builds out a Config struct from a config file (or command line flags).
// The data stored in the config will be populated in order of precedence from
// (1) command line, (2) environment variable, (3) config file.
func NewConfig(c *cli.Context, flags []cli.Flag) (*Config, error) {
	config := &Config{Version: Version}

	configFile := c.String(FlagConfigFile)
	if configFile != "" {
		var err error
		config, err = parseConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("unable to parse config file: %v", err)
		}
	}

	config.Flags.UpdateFromCLIFlags(c, flags)
	config.Flags.SetDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// parseConfig parses a config file as either YAML of JSON and unmarshals it into a Config struct.
func parseConfig(configFile string) (*Config, error) {
	reader, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %v", err)
	}
	defer reader.Close()

	config, err := parseConfigFrom(reader)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	return config, nil
}

func parseConfigFrom(reader io.Reader) (*Config, error) {
	configYaml, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read error: %v", err)
	}

	var config Config
	err = yaml.Unmarshal(configYaml, &config)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %v", err)
	}

	if config.Version == "" {
		return nil, fmt.Errorf("missing version field")
	}

	if config.Version != Version {
		return nil, fmt.Errorf("unknown version: %v", config.Version)
	}

	return &config, nil
}

// Validate checks that all flags hold usable values.
// It is expected to be called after SetDefaults.
func (c *Config) Validate() error {
	f := c.Flags
	if f.ScriptDir == nil || *f.ScriptDir == "" {
		return fmt.Errorf("%w: <%v> must not be empty", errInvalidConfig, FlagScriptDir)
	}
	if f.DirectoryLabel == nil || strings.TrimSpace(*f.DirectoryLabel) == "" {
		return fmt.Errorf("%w: <%v> must not be empty", errInvalidConfig, FlagDirectoryLabel)
	}
	if f.MountAttempts == nil || *f.MountAttempts < 1 {
		return fmt.Errorf("%w: <%v> must be at least 1", errInvalidConfig, FlagMountAttempts)
	}
	if f.MountRetryInterval == nil || *f.MountRetryInterval < 0 {
		return fmt.Errorf("%w: <%v> must not be negative", errInvalidConfig, FlagMountRetryInterval)
	}
	if f.SFTPClient == nil || *f.SFTPClient == "" {
		return fmt.Errorf("%w: <%v> must not be empty", errInvalidConfig, FlagSFTPClient)
	}
	if f.DBus == nil || f.DBus.Service == nil || *f.DBus.Service == "" {
		return fmt.Errorf("%w: <%v> must not be empty", errInvalidConfig, FlagDBusService)
	}
	return nil
}

// CheckSettings logs a warning for settings that are valid but likely to
// cause surprising behaviour.
func CheckSettings(logger Logger, config *Config) {
	f := config.Flags
	if f.MountRetryInterval != nil && *f.MountRetryInterval == 0 {
		logger.Warningf("<%v> is 0; the mount state will be polled without delay", FlagMountRetryInterval)
	}
	if f.DBus != nil && f.DBus.Service != nil && *f.DBus.Service == LegacyDBusService {
		logger.Warningf("Using legacy D-Bus service name %q; current daemons register %q", LegacyDBusService, DefaultDBusService)
	}
	if f.ScriptDir != nil {
		info, err := os.Stat(*f.ScriptDir)
		switch {
		case os.IsNotExist(err):
			logger.Warningf("Script directory %v does not exist", *f.ScriptDir)
		case err == nil && !info.IsDir():
			logger.Warningf("Script directory %v is not a directory", *f.ScriptDir)
		}
	}
}

// DefaultScriptDir returns the directory holding the per-device scripts.
// An empty string is returned if the user configuration directory is unknown.
func DefaultScriptDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ScriptDirName)
}
