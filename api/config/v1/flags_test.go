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

package v1

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalFlags(t *testing.T) {
	testCases := []struct {
		input  string
		output Flags
		err    bool
	}{
		{
			input: ``,
			err:   true,
		},
		{
			input:  `{}`,
			output: Flags{},
		},
		{
			input: `{
				"dbus": {}
			}`,
			output: Flags{
				CommandLineFlags{
					DBus: &DBusCommandLineFlags{},
				},
			},
		},
		{
			input: `{
				"mountRetryInterval": 0
			}`,
			output: Flags{
				CommandLineFlags{
					MountRetryInterval: ptr(Duration(0)),
				},
			},
		},
		{
			input: `{
				"mountRetryInterval": "5s"
			}`,
			output: Flags{
				CommandLineFlags{
					MountRetryInterval: ptr(Duration(5 * time.Second)),
				},
			},
		},
		{
			input: `{
				"mountRetryInterval": "five seconds"
			}`,
			err: true,
		},
		{
			input: `{
				"scriptDir": "/home/user/.config/kcb",
				"directoryLabel": "Internal storage",
				"mountAttempts": 3,
				"sftpClient": "/usr/bin/sshfs",
				"dbus": {
					"address": "unix:path=/run/user/1000/bus",
					"service": "org.kde.kdeconnectd"
				}
			}`,
			output: Flags{
				CommandLineFlags{
					ScriptDir:      ptr("/home/user/.config/kcb"),
					DirectoryLabel: ptr("Internal storage"),
					MountAttempts:  ptr(3),
					SFTPClient:     ptr("/usr/bin/sshfs"),
					DBus: &DBusCommandLineFlags{
						Address: ptr("unix:path=/run/user/1000/bus"),
						Service: ptr(LegacyDBusService),
					},
				},
			},
		},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("test case %d", i), func(t *testing.T) {
			var output Flags
			err := json.Unmarshal([]byte(tc.input), &output)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.output, output)
		})
	}
}

func TestMarshalFlags(t *testing.T) {
	input := Flags{
		CommandLineFlags{
			MountAttempts:      ptr(10),
			MountRetryInterval: ptr(Duration(1500 * time.Millisecond)),
		},
	}

	output, err := json.Marshal(input)
	require.NoError(t, err)
	require.JSONEq(t, `{"mountAttempts": 10, "mountRetryInterval": "1.5s"}`, string(output))
}

func TestSetDefaults(t *testing.T) {
	f := Flags{
		CommandLineFlags{
			MountAttempts: ptr(4),
		},
	}
	f.SetDefaults()

	require.Equal(t, 4, *f.MountAttempts)
	require.Equal(t, DefaultDirectoryLabel, *f.DirectoryLabel)
	require.Equal(t, DefaultMountRetryInterval, f.MountRetryIntervalDuration())
	require.Equal(t, DefaultSFTPClient, *f.SFTPClient)
	require.Equal(t, DefaultProcRoot, *f.ProcRoot)
	require.Equal(t, "", *f.DBus.Address)
	require.Equal(t, DefaultDBusService, *f.DBus.Service)
}
