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
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/NVIDIA/kcb/internal/kdeconnect"
)

// newListCommand constructs the command that prints the devices known to the daemon.
func newListCommand(cfg *Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the devices known to the KDE Connect daemon",
		Action: func(c *cli.Context) error {
			return list(c, cfg)
		},
	}
}

func list(c *cli.Context, cfg *Config) error {
	config, err := cfg.loadConfig(c)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	client, err := newClient(config)
	if err != nil {
		return err
	}

	registry, err := client.ListDevices()
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	for _, id := range sortedIDs(registry) {
		reachable, err := client.IsReachable(id)
		if err != nil {
			return fmt.Errorf("failed to check reachability of %v: %w", id, err)
		}
		fmt.Fprintf(c.App.Writer, "%v\t%v\t%v\n", id, registry[id], reachable)
	}
	return nil
}

// sortedIDs orders the devices by name, then by ID.
func sortedIDs(registry kdeconnect.Registry) []kdeconnect.DeviceID {
	var ids []kdeconnect.DeviceID
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if registry[ids[i]] != registry[ids[j]] {
			return registry[ids[i]] < registry[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
