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
	"k8s.io/mount-utils"
)

const (
	DefaultProcRoot = "/proc"
	DefaultClient   = "sshfs"
)

// Option defines a functional option for configuring the default Inspector.
type Option func(*options)

type options struct {
	procRoot string
	client   string
	mounter  mount.Interface
}

// WithProcRoot sets the mount point of the proc filesystem.
func WithProcRoot(procRoot string) Option {
	return func(o *options) {
		o.procRoot = procRoot
	}
}

// WithClient sets the SFTP client executable that serves mounts.
func WithClient(client string) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithMounter sets the mounter used to read the mount table.
func WithMounter(mounter mount.Interface) Option {
	return func(o *options) {
		o.mounter = mounter
	}
}

// New returns an Inspector that reads the process table. The mount table is
// consulted only if the process table cannot be read or holds no client
// process for the mount point; it provides no port.
func New(opts ...Option) Inspector {
	o := &options{
		procRoot: DefaultProcRoot,
		client:   DefaultClient,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.mounter == nil {
		o.mounter = mount.New("")
	}

	return &fallbackInspector{
		proc:     &procInspector{procRoot: o.procRoot, client: o.client},
		fallback: &mountTableInspector{mounter: o.mounter},
	}
}
