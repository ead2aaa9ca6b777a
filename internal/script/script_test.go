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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/kcb/internal/session"
)

func TestFileName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Phone", expected: "Phone.sh"},
		{input: "My/Phone;1", expected: "My_Phone_1.sh"},
		{input: "Yasins Smartphone", expected: "Yasins Smartphone.sh"},
		{input: "Pixel 7.1", expected: "Pixel 7_1.sh"},
		{input: "../../etc/passwd", expected: "______etc_passwd.sh"},
		{input: "a&&b|c`d`$(e)", expected: "a__b_c_d__(e).sh"},
		{input: "tab\there\nnewline", expected: "tab_here_newline.sh"},
		{input: `quote"s'and\back`, expected: "quote_s_and_back.sh"},
		{input: "", expected: ".sh"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			output := FileName(tc.input)
			require.Equal(t, tc.expected, output)

			// Sanitizing a sanitized name changes nothing.
			require.Equal(t, output, FileName(strings.TrimSuffix(output, Extension)))
		})
	}
}

func TestEnsureExecutable(t *testing.T) {
	testCases := []struct {
		description     string
		mode            os.FileMode
		expectedMode    os.FileMode
		expectedChanged bool
	}{
		{
			description:     "not executable",
			mode:            0644,
			expectedMode:    0744,
			expectedChanged: true,
		},
		{
			description:     "group executable only",
			mode:            0650,
			expectedMode:    0750,
			expectedChanged: true,
		},
		{
			description:  "already executable",
			mode:         0700,
			expectedMode: 0700,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "device.sh")
			require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), tc.mode))
			require.NoError(t, os.Chmod(path, tc.mode))

			changed, err := EnsureExecutable(path)
			require.NoError(t, err)
			require.Equal(t, tc.expectedChanged, changed)
			requireMode(t, path, tc.expectedMode)

			changed, err = EnsureExecutable(path)
			require.NoError(t, err)
			require.False(t, changed)
			requireMode(t, path, tc.expectedMode)
		})
	}
}

func TestEnsureExecutableMissingFile(t *testing.T) {
	_, err := EnsureExecutable(filepath.Join(t.TempDir(), "missing.sh"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func requireMode(t *testing.T, path string, expected os.FileMode) {
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, expected, info.Mode().Perm())
}

func TestEnviron(t *testing.T) {
	base := []string{"HOME=/home/user", "SFTP_PORT=1", "SFTP_IP=stale", "PATH=/usr/bin"}

	testCases := []struct {
		description string
		info        session.Info
		expected    []string
	}{
		{
			description: "empty session keeps base",
			expected:    base,
		},
		{
			description: "full session",
			info:        session.Info{Username: "kdeconnect", Address: "192.168.1.17", Port: "1739"},
			expected: []string{
				"HOME=/home/user",
				"PATH=/usr/bin",
				"SFTP_USERNAME=kdeconnect",
				"SFTP_IP=192.168.1.17",
				"SFTP_PORT=1739",
			},
		},
		{
			description: "port only",
			info:        session.Info{Port: "1739"},
			expected: []string{
				"HOME=/home/user",
				"SFTP_IP=stale",
				"PATH=/usr/bin",
				"SFTP_PORT=1739",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, Environ(base, tc.info))
		})
	}
}

func writeScript(t *testing.T, dir string, deviceName string, body string) string {
	path := filepath.Join(dir, FileName(deviceName))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0644))
	return path
}

func TestExecute(t *testing.T) {
	scriptDir := t.TempDir()
	mountPath := t.TempDir()
	path := writeScript(t, scriptDir, "My/Phone;1", `pwd
echo "user=${SFTP_USERNAME:-unset}"
echo "ip=${SFTP_IP:-unset}"
echo "port=${SFTP_PORT:-unset}"
echo "home=$HOME"
`)

	var stdout bytes.Buffer
	e := New(scriptDir,
		WithStdio(strings.NewReader(""), &stdout, &stdout),
		WithEnviron(func() []string {
			return []string{"PATH=" + os.Getenv("PATH"), "HOME=/home/test", "SFTP_PORT=1"}
		}),
	)
	require.Equal(t, path, e.Path("My/Phone;1"))

	err := e.Execute("My/Phone;1", mountPath, session.Info{Username: "kdeconnect", Address: "192.168.1.17"})
	require.NoError(t, err)

	resolvedMountPath, err := filepath.EvalSymlinks(mountPath)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		resolvedMountPath,
		"user=kdeconnect",
		"ip=192.168.1.17",
		"port=1",
		"home=/home/test",
		"",
	}, "\n"), stdout.String())

	requireMode(t, path, 0744)
}

func TestExecuteErrors(t *testing.T) {
	testCases := []struct {
		description   string
		script        string
		mountPath     string
		expectedError error
	}{
		{
			description:   "missing script",
			expectedError: ErrScriptNotFound,
		},
		{
			description:   "non-zero exit",
			script:        "exit 3\n",
			expectedError: ErrScriptFailed,
		},
		{
			description:   "missing working directory",
			script:        "true\n",
			mountPath:     "/nonexistent/kcb/mount",
			expectedError: ErrScriptFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			scriptDir := t.TempDir()
			if tc.script != "" {
				writeScript(t, scriptDir, "Phone", tc.script)
			}
			mountPath := tc.mountPath
			if mountPath == "" {
				mountPath = t.TempDir()
			}

			var output bytes.Buffer
			e := New(scriptDir, WithStdio(nil, &output, &output))
			err := e.Execute("Phone", mountPath, session.Info{})
			require.ErrorIs(t, err, tc.expectedError)
		})
	}
}

func TestExecuteDirectory(t *testing.T) {
	scriptDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(scriptDir, FileName("Phone")), 0755))

	err := New(scriptDir).Execute("Phone", t.TempDir(), session.Info{})
	require.ErrorIs(t, err, ErrScriptNotFound)
}

func TestExecuteRelativeScriptDir(t *testing.T) {
	workDir := t.TempDir()
	scriptDir := filepath.Join(workDir, "scripts")
	require.NoError(t, os.Mkdir(scriptDir, 0755))
	writeScript(t, scriptDir, "Phone", "pwd\n")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(workDir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(cwd))
	})

	var stdout bytes.Buffer
	e := New("scripts", WithStdio(nil, &stdout, &stdout))
	require.True(t, filepath.IsAbs(e.Path("Phone")))

	mountPath := t.TempDir()
	require.NoError(t, e.Execute("Phone", mountPath, session.Info{}))

	resolvedMountPath, err := filepath.EvalSymlinks(mountPath)
	require.NoError(t, err)
	require.Equal(t, resolvedMountPath+"\n", stdout.String())
}
