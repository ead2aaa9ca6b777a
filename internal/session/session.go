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
	"errors"
	"strconv"
	"strings"

	"k8s.io/klog/v2"
)

// Info holds the connection parameters of an SFTP session.
// Empty fields are unknown.
type Info struct {
	Username string
	Address  string
	Port     string
}

// Inspector recovers the connection parameters of the session that is
// mounted at a given path. Inspection is best-effort and never fails.
type Inspector interface {
	Inspect(mountPoint string) Info
}

// fallbackInspector consults the process table and uses the mount table only
// if no client process could be found. An ambiguous process table yields no
// information at all.
type fallbackInspector struct {
	proc     *procInspector
	fallback Inspector
}

var _ Inspector = (*fallbackInspector)(nil)

func (f *fallbackInspector) Inspect(mountPoint string) Info {
	info, err := f.proc.lookup(mountPoint)
	switch {
	case err == nil:
		return info
	case errors.Is(err, errNoClientProcess):
		klog.V(2).InfoS("Falling back to mount table", "mountPoint", mountPoint, "reason", err)
		return f.fallback.Inspect(mountPoint)
	default:
		klog.V(2).InfoS("Session unknown", "mountPoint", mountPoint, "reason", err)
		return Info{}
	}
}

// parseRemote splits a remote of the form user@host[:path] into the user and
// the host. IPv6 hosts may be enclosed in brackets, which are removed.
func parseRemote(remote string) (string, string, bool) {
	user, rest, found := strings.Cut(remote, "@")
	if !found {
		return "", "", false
	}

	var host string
	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return user, "", true
		}
		host = rest[1:end]
	} else {
		host = rest
		if i := strings.IndexAny(rest, ":/"); i >= 0 {
			host = rest[:i]
		}
	}
	return user, host, true
}

func isPort(value string) bool {
	port, err := strconv.Atoi(value)
	return err == nil && port > 0 && port <= 65535
}
