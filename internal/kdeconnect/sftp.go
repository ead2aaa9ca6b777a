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
	"fmt"

	"github.com/godbus/dbus/v5"
)

type sftp struct {
	id  DeviceID
	obj dbus.BusObject
}

var _ SFTP = (*sftp)(nil)

func (s *sftp) Mount() error {
	return s.call("mount")
}

func (s *sftp) IsMounted() (bool, error) {
	var mounted bool
	if err := s.call("isMounted", &mounted); err != nil {
		return false, err
	}
	return mounted, nil
}

// GetDirectories returns the directories exposed by the mount.
// Entries whose label is not a string are dropped.
func (s *sftp) GetDirectories() (map[string]string, error) {
	var raw map[string]dbus.Variant
	if err := s.call("getDirectories", &raw); err != nil {
		return nil, err
	}

	directories := make(map[string]string, len(raw))
	for path, label := range raw {
		if l, ok := label.Value().(string); ok {
			directories[path] = l
		}
	}
	return directories, nil
}

func (s *sftp) MountPoint() (string, error) {
	var mountPoint string
	if err := s.call("mountPoint", &mountPoint); err != nil {
		return "", err
	}
	return mountPoint, nil
}

func (s *sftp) call(method string, retvalues ...interface{}) error {
	call := s.obj.Call(sftpInterface+"."+method, 0)
	if call.Err != nil {
		return fmt.Errorf("error calling %v on device %v: %w", method, s.id, call.Err)
	}
	if len(retvalues) == 0 {
		return nil
	}
	if err := call.Store(retvalues...); err != nil {
		return fmt.Errorf("unexpected reply to %v from device %v: %w", method, s.id, err)
	}
	return nil
}
