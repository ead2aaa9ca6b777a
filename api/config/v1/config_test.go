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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v2"
)

const testServiceEnvVar = "TEST_KCB_DBUS_SERVICE"

func testFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: FlagConfigFile},
		&cli.StringFlag{Name: FlagScriptDir, Value: "/default/scripts"},
		&cli.StringFlag{Name: FlagDirectoryLabel, Value: DefaultDirectoryLabel},
		&cli.IntFlag{Name: FlagMountAttempts, Value: DefaultMountAttempts},
		&cli.DurationFlag{Name: FlagMountRetryInterval, Value: DefaultMountRetryInterval},
		&cli.StringFlag{Name: FlagSFTPClient, Value: DefaultSFTPClient},
		&cli.StringFlag{Name: FlagProcRoot, Value: DefaultProcRoot},
		&cli.StringFlag{Name: FlagDBusAddress},
		&cli.StringFlag{Name: FlagDBusService, Value: DefaultDBusService, EnvVars: []string{testServiceEnvVar}},
	}
}

func loadConfig(t *testing.T, args ...string) (*Config, error) {
	flags := testFlags()

	var config *Config
	var configErr error

	app := cli.NewApp()
	app.Name = "kcb"
	app.Flags = flags
	app.Action = func(c *cli.Context) error {
		config, configErr = NewConfig(c, flags)
		return nil
	}
	require.NoError(t, app.Run(append([]string{"kcb"}, args...)))

	return config, configErr
}

func writeConfigFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	config, err := loadConfig(t)
	require.NoError(t, err)

	require.Equal(t, Version, config.Version)
	require.Equal(t, "/default/scripts", *config.Flags.ScriptDir)
	require.Equal(t, DefaultDirectoryLabel, *config.Flags.DirectoryLabel)
	require.Equal(t, DefaultMountAttempts, *config.Flags.MountAttempts)
	require.Equal(t, DefaultMountRetryInterval, config.Flags.MountRetryIntervalDuration())
	require.Equal(t, DefaultSFTPClient, *config.Flags.SFTPClient)
	require.Equal(t, DefaultDBusService, *config.Flags.DBus.Service)
	require.Equal(t, "", *config.Flags.DBus.Address)
}

func TestNewConfigPrecedence(t *testing.T) {
	configFile := writeConfigFile(t, strings.Join([]string{
		"version: v1",
		"flags:",
		"  directoryLabel: Internal storage",
		"  mountAttempts: 3",
		"  mountRetryInterval: 250ms",
		"  dbus:",
		"    service: org.kde.kdeconnectd",
	}, "\n"))

	testCases := []struct {
		description      string
		args             []string
		env              map[string]string
		expectedLabel    string
		expectedAttempts int
		expectedInterval time.Duration
		expectedService  string
	}{
		{
			description:      "config file only",
			args:             []string{"--config-file", configFile},
			expectedLabel:    "Internal storage",
			expectedAttempts: 3,
			expectedInterval: 250 * time.Millisecond,
			expectedService:  LegacyDBusService,
		},
		{
			description:      "command line overrides config file",
			args:             []string{"--config-file", configFile, "--mount-attempts", "5"},
			expectedLabel:    "Internal storage",
			expectedAttempts: 5,
			expectedInterval: 250 * time.Millisecond,
			expectedService:  LegacyDBusService,
		},
		{
			description:      "environment overrides config file",
			args:             []string{"--config-file", configFile},
			env:              map[string]string{testServiceEnvVar: DefaultDBusService},
			expectedLabel:    "Internal storage",
			expectedAttempts: 3,
			expectedInterval: 250 * time.Millisecond,
			expectedService:  DefaultDBusService,
		},
		{
			description:      "command line without config file",
			args:             []string{"--directory-label", "SD card", "--mount-retry-interval", "2s"},
			expectedLabel:    "SD card",
			expectedAttempts: DefaultMountAttempts,
			expectedInterval: 2 * time.Second,
			expectedService:  DefaultDBusService,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			config, err := loadConfig(t, tc.args...)
			require.NoError(t, err)

			require.Equal(t, tc.expectedLabel, *config.Flags.DirectoryLabel)
			require.Equal(t, tc.expectedAttempts, *config.Flags.MountAttempts)
			require.Equal(t, tc.expectedInterval, config.Flags.MountRetryIntervalDuration())
			require.Equal(t, tc.expectedService, *config.Flags.DBus.Service)
		})
	}
}

func TestNewConfigErrors(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		configFile  string
		expectedErr error
	}{
		{
			description: "zero mount attempts",
			args:        []string{"--mount-attempts", "0"},
			expectedErr: errInvalidConfig,
		},
		{
			description: "negative retry interval",
			args:        []string{"--mount-retry-interval", "-1s"},
			expectedErr: errInvalidConfig,
		},
		{
			description: "blank directory label",
			args:        []string{"--directory-label", "  "},
			expectedErr: errInvalidConfig,
		},
		{
			description: "empty script dir",
			args:        []string{"--script-dir", ""},
			expectedErr: errInvalidConfig,
		},
		{
			description: "missing version",
			configFile:  "flags: {}",
		},
		{
			description: "unknown version",
			configFile:  "version: v2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			args := tc.args
			if tc.configFile != "" {
				args = append(args, "--config-file", writeConfigFile(t, tc.configFile))
			}
			_, err := loadConfig(t, args...)
			require.Error(t, err)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warningf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func TestCheckSettings(t *testing.T) {
	existing := t.TempDir()

	testCases := []struct {
		description      string
		flags            CommandLineFlags
		expectedWarnings int
	}{
		{
			description: "defaults with existing script dir",
			flags: CommandLineFlags{
				ScriptDir: ptr(existing),
			},
		},
		{
			description: "missing script dir",
			flags: CommandLineFlags{
				ScriptDir: ptr(filepath.Join(existing, "missing")),
			},
			expectedWarnings: 1,
		},
		{
			description: "zero interval and legacy service",
			flags: CommandLineFlags{
				ScriptDir:          ptr(existing),
				MountRetryInterval: ptr(Duration(0)),
				DBus: &DBusCommandLineFlags{
					Service: ptr(LegacyDBusService),
				},
			},
			expectedWarnings: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			config := &Config{Version: Version, Flags: Flags{tc.flags}}
			config.Flags.SetDefaults()

			logger := &recordingLogger{}
			CheckSettings(logger, config)
			require.Len(t, logger.warnings, tc.expectedWarnings)
		})
	}
}
