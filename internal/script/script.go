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

package script

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode"

	"k8s.io/klog/v2"

	"github.com/NVIDIA/kcb/internal/session"
)

// Extension is appended to the sanitized device name to form the script file name.
const Extension = ".sh"

// Environment variables set for the script when the corresponding session
// parameter is known.
const (
	EnvUsername = "SFTP_USERNAME"
	EnvAddress  = "SFTP_IP"
	EnvPort     = "SFTP_PORT"
)

var (
	// ErrScriptNotFound indicates that no script exists for the device.
	ErrScriptNotFound = errors.New("script not found")
	// ErrScriptFailed indicates that the script could not be started or exited with an error.
	ErrScriptFailed = errors.New("script execution failed")
)

// unsafeChars are replaced in device names to form file names. Control
// characters are replaced as well.
const unsafeChars = "./\\;&|$`<>'\"*?!"

// FileName returns the name of the script file for the specified device name.
// An empty name yields the hidden file ".sh"; callers reject empty names.
func FileName(deviceName string) string {
	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(unsafeChars, r) {
			return '_'
		}
		return r
	}, deviceName)
	return sanitized + Extension
}

// EnsureExecutable sets the owner execute bit of the file if it is not yet set.
// It returns whether the mode of the file was changed.
func EnsureExecutable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	mode := info.Mode().Perm()
	if mode&0100 != 0 {
		return false, nil
	}
	if err := os.Chmod(path, mode|0100); err != nil {
		return false, fmt.Errorf("error making %v executable: %w", path, err)
	}
	return true, nil
}

// Environ returns a copy of base with the known session parameters set.
// Existing values of the session variables are replaced.
func Environ(base []string, info session.Info) []string {
	vars := make(map[string]string)
	if info.Username != "" {
		vars[EnvUsername] = info.Username
	}
	if info.Address != "" {
		vars[EnvAddress] = info.Address
	}
	if info.Port != "" {
		vars[EnvPort] = info.Port
	}

	env := make([]string, 0, len(base)+len(vars))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := vars[key]; ok {
			continue
		}
		env = append(env, kv)
	}
	for _, key := range []string{EnvUsername, EnvAddress, EnvPort} {
		if value, ok := vars[key]; ok {
			env = append(env, key+"="+value)
		}
	}
	return env
}

// Executor runs the per-device scripts from a script directory.
type Executor struct {
	dir     string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	environ func() []string
}

// New creates an Executor for the scripts in the specified directory.
// A relative directory is resolved against the current working directory
// since scripts are started from the mount path.
func New(dir string, opts ...Option) *Executor {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	e := &Executor{
		dir:     dir,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Path returns the path of the script for the specified device name.
func (e *Executor) Path(deviceName string) string {
	return filepath.Join(e.dir, FileName(deviceName))
}

// Execute runs the script of the device with the mount path as working
// directory. The script is invoked directly and never through a shell.
func (e *Executor) Execute(deviceName string, mountPath string, info session.Info) error {
	path := e.Path(deviceName)

	stat, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrScriptNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("error checking script %v: %w", path, err)
	}
	if stat.IsDir() {
		return fmt.Errorf("%w: %v is a directory", ErrScriptNotFound, path)
	}

	changed, err := EnsureExecutable(path)
	if err != nil {
		return err
	}
	if changed {
		klog.InfoS("Made script executable", "path", path)
	}

	cmd := exec.Command(path)
	cmd.Dir = mountPath
	cmd.Env = Environ(e.environ(), info)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	klog.V(2).InfoS("Running script", "path", path, "dir", mountPath, "session", info)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v: %v", ErrScriptFailed, path, err)
	}
	return nil
}
