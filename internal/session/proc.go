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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prometheus/procfs"
	"k8s.io/klog/v2"
)

type procInspector struct {
	procRoot string
	client   string
}

var (
	// errNoClientProcess indicates that the process table could not be read
	// or holds no client process for the mount point.
	errNoClientProcess = errors.New("no client process found")
	// errAmbiguousClientProcess indicates that several client processes
	// serve the mount point.
	errAmbiguousClientProcess = errors.New("multiple client processes found")
)

var _ Inspector = (*procInspector)(nil)

// Inspect finds the SFTP client process serving the mount point and parses
// its arguments.
func (p *procInspector) Inspect(mountPoint string) Info {
	info, _ := p.lookup(mountPoint)
	return info
}

func (p *procInspector) lookup(mountPoint string) (Info, error) {
	args, err := p.findClientArgs(mountPoint)
	if err != nil {
		return Info{}, err
	}
	return parseClientArgs(args), nil
}

func (p *procInspector) findClientArgs(mountPoint string) ([]string, error) {
	fs, err := procfs.NewFS(p.procRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open process table at %v: %v", errNoClientProcess, p.procRoot, err)
	}
	procs, err := fs.AllProcs()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to list processes: %v", errNoClientProcess, err)
	}

	var matches [][]string
	for _, proc := range procs {
		executable, err := proc.Executable()
		if err != nil || !p.isClient(executable) {
			continue
		}
		cmdline, err := proc.CmdLine()
		if err != nil {
			klog.V(4).InfoS("Skipping process", "pid", proc.PID, "error", err)
			continue
		}
		if contains(cmdline, mountPoint) {
			matches = append(matches, cmdline)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %v for %v", errNoClientProcess, p.client, mountPoint)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %d %v processes for %v", errAmbiguousClientProcess, len(matches), p.client, mountPoint)
	}
}

// isClient matches an absolute client path exactly and a bare client name
// against the base name of the executable.
func (p *procInspector) isClient(executable string) bool {
	if executable == "" {
		return false
	}
	if strings.ContainsRune(p.client, filepath.Separator) {
		return executable == p.client
	}
	return filepath.Base(executable) == p.client
}

// parseClientArgs extracts the session parameters from the arguments of an
// sshfs process, e.g.
//
//	sshfs kdeconnect@192.168.1.5:/ /run/user/1000/abc -p 1739 -f -o ...
func parseClientArgs(args []string) Info {
	var info Info

	var remotes []string
	for i, arg := range args {
		if strings.Contains(arg, "@") {
			remotes = append(remotes, arg)
		}
		if arg == "-p" && i+1 < len(args) && isPort(args[i+1]) {
			info.Port = args[i+1]
		}
	}

	if len(remotes) == 1 {
		if user, host, ok := parseRemote(remotes[0]); ok {
			info.Username = user
			info.Address = host
		}
	}
	return info
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
