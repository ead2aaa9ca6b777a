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
	"time"

	cli "github.com/urfave/cli/v2"
)

// prt returns a reference to whatever type is passed into it
func ptr[T any](x T) *T {
	return &x
}

// updateFromCLIFlag conditionally updates the config flag at 'pflag' to the value of the CLI flag with name 'flagName'
func updateFromCLIFlag[T any](pflag **T, c *cli.Context, flagName string) {
	if c.IsSet(flagName) || *pflag == (*T)(nil) {
		switch flag := any(pflag).(type) {
		case **string:
			*flag = ptr(c.String(flagName))
		case **int:
			*flag = ptr(c.Int(flagName))
		case **bool:
			*flag = ptr(c.Bool(flagName))
		case **Duration:
			*flag = ptr(Duration(c.Duration(flagName)))
		default:
			panic(fmt.Errorf("unsupported flag type for %v: %T", flagName, flag))
		}
	}
}

// Flags holds the full list of flags used to configure kcb.
type Flags struct {
	CommandLineFlags
}

// CommandLineFlags holds the list of command line flags used to configure kcb.
type CommandLineFlags struct {
	ScriptDir          *string               `json:"scriptDir,omitempty"          yaml:"scriptDir,omitempty"`
	DirectoryLabel     *string               `json:"directoryLabel,omitempty"     yaml:"directoryLabel,omitempty"`
	MountAttempts      *int                  `json:"mountAttempts,omitempty"      yaml:"mountAttempts,omitempty"`
	MountRetryInterval *Duration             `json:"mountRetryInterval,omitempty" yaml:"mountRetryInterval,omitempty"`
	SFTPClient         *string               `json:"sftpClient,omitempty"         yaml:"sftpClient,omitempty"`
	ProcRoot           *string               `json:"procRoot,omitempty"           yaml:"procRoot,omitempty"`
	DBus               *DBusCommandLineFlags `json:"dbus,omitempty"               yaml:"dbus,omitempty"`
}

// DBusCommandLineFlags holds the list of command line flags controlling the D-Bus connection.
type DBusCommandLineFlags struct {
	// Address selects a bus other than the session bus when set.
	Address *string `json:"address,omitempty" yaml:"address,omitempty"`
	Service *string `json:"service,omitempty" yaml:"service,omitempty"`
}

// UpdateFromCLIFlags updates Flags from settings in the cli Flags if they are set.
func (f *Flags) UpdateFromCLIFlags(c *cli.Context, flags []cli.Flag) {
	for _, flag := range flags {
		for _, n := range flag.Names() {
			switch n {
			case FlagScriptDir:
				updateFromCLIFlag(&f.ScriptDir, c, n)
			case FlagDirectoryLabel:
				updateFromCLIFlag(&f.DirectoryLabel, c, n)
			case FlagMountAttempts:
				updateFromCLIFlag(&f.MountAttempts, c, n)
			case FlagMountRetryInterval:
				updateFromCLIFlag(&f.MountRetryInterval, c, n)
			case FlagSFTPClient:
				updateFromCLIFlag(&f.SFTPClient, c, n)
			case FlagProcRoot:
				updateFromCLIFlag(&f.ProcRoot, c, n)
			}
			// D-Bus specific flags
			if f.DBus == nil {
				f.DBus = &DBusCommandLineFlags{}
			}
			switch n {
			case FlagDBusAddress:
				updateFromCLIFlag(&f.DBus.Address, c, n)
			case FlagDBusService:
				updateFromCLIFlag(&f.DBus.Service, c, n)
			}
		}
	}
}

// SetDefaults fills every flag that is still unset with its default value.
func (f *Flags) SetDefaults() {
	if f.ScriptDir == nil {
		f.ScriptDir = ptr(DefaultScriptDir())
	}
	if f.DirectoryLabel == nil {
		f.DirectoryLabel = ptr(DefaultDirectoryLabel)
	}
	if f.MountAttempts == nil {
		f.MountAttempts = ptr(DefaultMountAttempts)
	}
	if f.MountRetryInterval == nil {
		f.MountRetryInterval = ptr(Duration(DefaultMountRetryInterval))
	}
	if f.SFTPClient == nil {
		f.SFTPClient = ptr(DefaultSFTPClient)
	}
	if f.ProcRoot == nil {
		f.ProcRoot = ptr(DefaultProcRoot)
	}
	if f.DBus == nil {
		f.DBus = &DBusCommandLineFlags{}
	}
	if f.DBus.Address == nil {
		f.DBus.Address = ptr("")
	}
	if f.DBus.Service == nil {
		f.DBus.Service = ptr(DefaultDBusService)
	}
}

// MountRetryIntervalDuration returns the configured retry interval as a time.Duration.
func (f *Flags) MountRetryIntervalDuration() time.Duration {
	if f.MountRetryInterval == nil {
		return DefaultMountRetryInterval
	}
	return time.Duration(*f.MountRetryInterval)
}
