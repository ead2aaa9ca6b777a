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

package mount

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/NVIDIA/kcb/internal/kdeconnect"
)

const (
	DefaultAttempts = 10
	DefaultInterval = time.Second
	DefaultLabel    = "all files"
)

// ErrMountPointNotFound indicates that no directory of the mount matches the configured label.
var ErrMountPointNotFound = errors.New("mount point not found")

// Acquirer mounts the filesystem of a device and locates its root directory.
type Acquirer struct {
	client   kdeconnect.Interface
	attempts int
	interval time.Duration
	label    string
	sleep    func(time.Duration)
}

// New creates an Acquirer for devices of the specified client.
func New(client kdeconnect.Interface, opts ...Option) *Acquirer {
	a := &Acquirer{
		client:   client,
		attempts: DefaultAttempts,
		interval: DefaultInterval,
		label:    DefaultLabel,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mount requests a mount of the device and returns the path of the directory
// whose label matches the configured label.
//
// The daemon does not offer a blocking mount, so a mount is requested and the
// mount state polled up to the configured number of attempts. The directories
// are queried even if the mount was never confirmed.
func (a *Acquirer) Mount(id kdeconnect.DeviceID) (string, error) {
	sftp := a.client.SFTP(id)

	mounted := a.waitForMount(id, sftp)
	if !mounted {
		klog.Warningf("Mount of device %v not confirmed after %d attempts", id, a.attempts)
	}

	directories, err := sftp.GetDirectories()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMountPointNotFound, err)
	}

	path, ok := SelectMountPath(directories, a.label)
	if !ok {
		return "", fmt.Errorf("%w: no directory labelled %q among %d", ErrMountPointNotFound, a.label, len(directories))
	}
	return path, nil
}

func (a *Acquirer) waitForMount(id kdeconnect.DeviceID, sftp kdeconnect.SFTP) bool {
	for attempt := 1; attempt <= a.attempts; attempt++ {
		if err := sftp.Mount(); err != nil {
			klog.V(2).InfoS("Mount request failed", "device", id, "attempt", attempt, "error", err)
		}

		mounted, err := sftp.IsMounted()
		if err != nil {
			klog.V(2).InfoS("Unable to query mount state", "device", id, "attempt", attempt, "error", err)
		}
		if mounted {
			klog.V(2).InfoS("Device mounted", "device", id, "attempt", attempt)
			return true
		}

		if attempt < a.attempts {
			a.sleep(a.interval)
		}
	}
	return false
}

// SelectMountPath returns the path of the directory whose label contains the
// specified label, ignoring case. If several directories match, the shortest
// path wins, with ties broken lexicographically.
func SelectMountPath(directories map[string]string, label string) (string, bool) {
	needle := strings.ToLower(label)

	var matches []string
	for path, l := range directories {
		if strings.Contains(strings.ToLower(l), needle) {
			matches = append(matches, path)
		}
	}
	if len(matches) == 0 {
		return "", false
	}

	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) < len(matches[j])
		}
		return matches[i] < matches[j]
	})
	if len(matches) > 1 {
		klog.V(2).InfoS("Multiple directories match label", "label", label, "matches", matches, "selected", matches[0])
	}
	return matches[0], true
}
