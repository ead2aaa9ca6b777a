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

package kdeconnect

import "github.com/godbus/dbus/v5"

// Option defines a functional option for configuring a KDE Connect client.
type Option func(*client)

// WithService sets the well-known bus name of the daemon.
func WithService(service string) Option {
	return func(c *client) {
		if service != "" {
			c.service = service
		}
	}
}

// WithBusAddress connects to the bus at the specified address instead of the session bus.
func WithBusAddress(address string) Option {
	return func(c *client) {
		c.address = address
	}
}

// WithConnection uses an existing bus connection.
func WithConnection(conn *dbus.Conn) Option {
	return func(c *client) {
		c.conn = conn
	}
}
