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

package kdeconnect

import (
	"errors"
	"sort"
)

// ErrConnection indicates that the KDE Connect daemon could not be reached.
// No device can be processed without it.
var ErrConnection = errors.New("unable to reach the KDE Connect daemon")

// DeviceID is the opaque identifier that the daemon assigns to a paired device.
type DeviceID string

// Registry maps the IDs of all devices known to the daemon to their names.
// A registry is a snapshot; it is never cached between requests.
type Registry map[DeviceID]string

// Names returns the sorted set of device names in the registry.
func (r Registry) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range r {
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllNames returns the names of all devices in the registry, sorted, with
// one entry per device.
func (r Registry) AllNames() []string {
	names := make([]string, 0, len(r))
	for _, name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the sorted IDs of all devices with exactly the given name.
func (r Registry) Lookup(name string) []DeviceID {
	var ids []DeviceID
	for id, n := range r {
		if n == name {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

//go:generate moq -rm -out mock.go . Interface SFTP

// Interface provides access to the devices exposed by the KDE Connect daemon.
type Interface interface {
	ListDevices() (Registry, error)
	IsReachable(DeviceID) (bool, error)
	SFTP(DeviceID) SFTP
}

// SFTP controls the remote filesystem mount of a single device.
type SFTP interface {
	// Mount requests a mount. The request is asynchronous and may be
	// repeated while a mount is in progress or already active.
	Mount() error
	IsMounted() (bool, error)
	// GetDirectories maps the paths exposed by the mount to human-readable labels.
	GetDirectories() (map[string]string, error)
	MountPoint() (string, error)
}
