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

package runner

import (
	"errors"
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/NVIDIA/kcb/internal/kdeconnect"
	"github.com/NVIDIA/kcb/internal/report"
	"github.com/NVIDIA/kcb/internal/session"
)

var (
	// ErrDeviceUnreachable indicates that a known device is not currently connected.
	ErrDeviceUnreachable = errors.New("device not reachable")
	// ErrEmptyDeviceName indicates that a blank device name was requested.
	ErrEmptyDeviceName = errors.New("empty device name")
)

//go:generate moq -rm -out mock.go . Resolver Acquirer Executor

// Resolver maps a device name to its ID.
type Resolver interface {
	Resolve(name string) (kdeconnect.DeviceID, error)
	IsReachable(kdeconnect.DeviceID) (bool, error)
}

// Acquirer mounts a device and returns the path of its root directory.
type Acquirer interface {
	Mount(kdeconnect.DeviceID) (string, error)
}

// Executor runs the script associated with a device.
type Executor interface {
	Path(deviceName string) string
	Execute(deviceName string, mountPath string, info session.Info) error
}

// Result records the outcome of processing a single device.
type Result struct {
	Name      string
	DeviceID  kdeconnect.DeviceID
	MountPath string
	Session   session.Info
	Err       error
}

// Runner processes devices one at a time: resolve, check reachability,
// mount, inspect the session and execute the device script.
type Runner struct {
	client    kdeconnect.Interface
	executor  Executor
	resolver  Resolver
	acquirer  Acquirer
	inspector session.Inspector
	printer   *report.Printer
}

// New creates a Runner for the devices of the specified client.
func New(client kdeconnect.Interface, executor Executor, opts ...Option) *Runner {
	r := &Runner{
		client:   client,
		executor: executor,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.setDefaults(client)
	return r
}

// Run processes the named devices in order. If no names are given, all
// devices known to the daemon are processed sorted by name.
//
// A failure for a single device is reported and recorded in its Result; the
// remaining devices are still processed. An error is returned only if the
// daemon cannot be reached, in which case the results so far are returned
// with it.
func (r *Runner) Run(names []string) ([]Result, error) {
	if len(names) == 0 {
		registry, err := r.client.ListDevices()
		if err != nil {
			return nil, fmt.Errorf("failed to list devices: %w", err)
		}
		names = registry.Names()
	}

	r.printer.Infof("Requested the following %d device(s): %v", len(names), strings.Join(names, ", "))

	var results []Result
	for _, name := range names {
		result := r.runDevice(name)
		results = append(results, result)
		if result.Err == nil {
			continue
		}
		r.printer.Errorf("%v", result.Err)
		if errors.Is(result.Err, kdeconnect.ErrConnection) {
			return results, result.Err
		}
	}
	return results, nil
}

func (r *Runner) runDevice(name string) Result {
	result := Result{Name: name}

	r.printer.Newline()
	r.printer.Section("executing device %v", name)

	if strings.TrimSpace(name) == "" {
		result.Err = ErrEmptyDeviceName
		return result
	}

	id, err := r.resolver.Resolve(name)
	if err != nil {
		result.Err = err
		return result
	}
	result.DeviceID = id
	r.printer.Infof("device id: %v", id)

	reachable, err := r.resolver.IsReachable(id)
	if err != nil {
		result.Err = err
		return result
	}
	if !reachable {
		result.Err = fmt.Errorf("%w: %v", ErrDeviceUnreachable, id)
		return result
	}
	r.printer.Infof("device is active")

	mountPath, err := r.acquirer.Mount(id)
	if err != nil {
		result.Err = err
		return result
	}
	result.MountPath = mountPath
	r.printer.Infof("mounted on: %v", mountPath)

	result.Session = r.inspect(id)
	klog.V(2).InfoS("Session", "device", id, "username", result.Session.Username, "address", result.Session.Address, "port", result.Session.Port)

	path := r.executor.Path(name)
	r.printer.Infof("script file: %v", path)
	r.printer.Successf("executing %v", path)
	if err := r.executor.Execute(name, mountPath, result.Session); err != nil {
		result.Err = err
		return result
	}
	r.printer.Successf("execution finished")

	return result
}

// inspect recovers the session details of the mount of the device. The
// session is looked up by the root of the mount rather than the selected
// directory since the client process is started for the root.
func (r *Runner) inspect(id kdeconnect.DeviceID) session.Info {
	root, err := r.client.SFTP(id).MountPoint()
	if err != nil || root == "" {
		klog.Warningf("Unable to determine mount point of device %v: %v", id, err)
		return session.Info{}
	}
	return r.inspector.Inspect(root)
}
