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

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	testCases := []struct {
		description string
		options     []Option
		print       func(*Printer)
		expected    string
	}{
		{
			description: "non-terminal writer disables color",
			print: func(p *Printer) {
				p.Section("Device %s", "Phone")
				p.Infof("mounted at %s", "/run/user/1000/abc")
				p.Errorf("failed: %v", "boom")
				p.Successf("done")
				p.Newline()
			},
			expected: "Device Phone\nmounted at /run/user/1000/abc\nfailed: boom\ndone\n\n",
		},
		{
			description: "color forced off",
			options:     []Option{WithColor(false)},
			print: func(p *Printer) {
				p.Errorf("failed")
			},
			expected: "failed\n",
		},
		{
			description: "section with color forced on",
			options:     []Option{WithColor(true)},
			print: func(p *Printer) {
				p.Section("Phone")
			},
			expected: "\x1b[37;1;44mPhone\x1b[0m\n",
		},
		{
			description: "error with color forced on",
			options:     []Option{WithColor(true)},
			print: func(p *Printer) {
				p.Errorf("failed")
			},
			expected: "\x1b[31mfailed\x1b[0m\n",
		},
		{
			description: "success with color forced on",
			options:     []Option{WithColor(true)},
			print: func(p *Printer) {
				p.Successf("ok")
			},
			expected: "\x1b[32mok\x1b[0m\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var out bytes.Buffer
			p := New(&out, tc.options...)
			tc.print(p)
			require.Equal(t, tc.expected, out.String())
		})
	}
}

func TestIsTerminal(t *testing.T) {
	require.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	require.False(t, isTerminal(f))
}
