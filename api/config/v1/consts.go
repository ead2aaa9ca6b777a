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

import "time"

// Constants representing the KDE Connect D-Bus surface
const (
	DefaultDBusService = "org.kde.kdeconnect"
	LegacyDBusService  = "org.kde.kdeconnectd"
)

// Defaults for mounting a device
const (
	DefaultDirectoryLabel     = "all files"
	DefaultMountAttempts      = 10
	DefaultMountRetryInterval = 1 * time.Second
	DefaultSFTPClient         = "sshfs"
	DefaultProcRoot           = "/proc"
)

// ScriptDirName is the name of the directory below the user configuration
// directory that holds the per-device scripts.
const ScriptDirName = "kcb"

// Command line flag names
const (
	FlagConfigFile         = "config-file"
	FlagScriptDir          = "script-dir"
	FlagDirectoryLabel     = "directory-label"
	FlagMountAttempts      = "mount-attempts"
	FlagMountRetryInterval = "mount-retry-interval"
	FlagSFTPClient         = "sftp-client"
	FlagProcRoot           = "proc-root"
	FlagDBusAddress        = "dbus-address"
	FlagDBusService        = "dbus-service"
)
