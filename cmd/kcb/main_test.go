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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/kcb/internal/kdeconnect"
)

func TestSortedIDs(t *testing.T) {
	testCases := []struct {
		description string
		registry    kdeconnect.Registry
		expected    []kdeconnect.DeviceID
	}{
		{
			description: "empty registry",
			registry:    kdeconnect.Registry{},
		},
		{
			description: "sorted by name",
			registry:    kdeconnect.Registry{"a": "Tablet", "b": "Phone"},
			expected:    []kdeconnect.DeviceID{"b", "a"},
		},
		{
			description: "duplicate names sorted by id",
			registry:    kdeconnect.Registry{"z": "Phone", "y": "Phone", "a": "Tablet"},
			expected:    []kdeconnect.DeviceID{"y", "z", "a"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, sortedIDs(tc.registry))
		})
	}
}

func TestSetVerbosity(t *testing.T) {
	require.NoError(t, setVerbosity(0))
	require.NoError(t, setVerbosity(4))
}
