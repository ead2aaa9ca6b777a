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

package resolver

import (
	"errors"
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/NVIDIA/kcb/internal/kdeconnect"
)

var (
	// ErrDeviceNotFound indicates that no device with the requested name is known to the daemon.
	ErrDeviceNotFound = errors.New("device name not found")
	// ErrDeviceAmbiguous indicates that more than one device has the requested name.
	ErrDeviceAmbiguous = errors.New("multiple devices found with this name")
)

// Resolver maps device names to the IDs used by the KDE Connect daemon.
type Resolver struct {
	client kdeconnect.Interface
}

// New creates a resolver backed by the specified client.
func New(client kdeconnect.Interface) *Resolver {
	return &Resolver{
		client: client,
	}
}

// Resolve returns the ID of the single device with exactly the given name.
// The registry is queried on every call.
func (r *Resolver) Resolve(name string) (kdeconnect.DeviceID, error) {
	registry, err := r.client.ListDevices()
	if err != nil {
		return "", fmt.Errorf("failed to list devices: %w", err)
	}

	ids := registry.Lookup(name)
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %q; available names are: %v", ErrDeviceNotFound, name, strings.Join(registry.AllNames(), ", "))
	case 1:
		klog.V(2).InfoS("Resolved device", "name", name, "id", ids[0])
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %v", ErrDeviceAmbiguous, name, ids)
	}
}

// IsReachable returns whether the device is currently connected to the daemon.
func (r *Resolver) IsReachable(id kdeconnect.DeviceID) (bool, error) {
	reachable, err := r.client.IsReachable(id)
	if err != nil {
		return false, fmt.Errorf("failed to check reachability: %w", err)
	}
	return reachable, nil
}
