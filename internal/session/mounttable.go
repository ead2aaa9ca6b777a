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

package session

import (
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"
	"k8s.io/mount-utils"
)

const sshfsMountType = "sshfs"

// mountTableInspector reads the session parameters from the device field of
// the mount table entry. The port is not recorded there.
type mountTableInspector struct {
	mounter mount.Interface
}

var _ Inspector = (*mountTableInspector)(nil)

func (m *mountTableInspector) Inspect(mountPoint string) Info {
	mountPoints, err := m.mounter.List()
	if err != nil {
		klog.V(2).InfoS("Unable to list mount points", "error", err)
		return Info{}
	}

	target := filepath.Clean(mountPoint)
	for _, mp := range mountPoints {
		if filepath.Clean(mp.Path) != target || !strings.Contains(mp.Type, sshfsMountType) {
			continue
		}
		user, host, ok := parseRemote(mp.Device)
		if !ok {
			return Info{}
		}
		return Info{Username: user, Address: host}
	}
	return Info{}
}
