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

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"k8s.io/klog/v2"
)

const (
	// DefaultService is the well-known bus name of the KDE Connect daemon.
	DefaultService = "org.kde.kdeconnect"

	devicesPath     = dbus.ObjectPath("/modules/kdeconnect/devices")
	deviceInterface = "org.kde.kdeconnect.device"
	sftpInterface   = "org.kde.kdeconnect.device.sftp"
)

type client struct {
	service string
	address string
	conn    *dbus.Conn
	// object returns the bus object at the specified path of the daemon.
	object func(dbus.ObjectPath) dbus.BusObject
}

var _ Interface = (*client)(nil)

// New creates a client for the KDE Connect daemon.
// A single bus connection is opened and used for all subsequent requests.
func New(opts ...Option) (Interface, error) {
	c := &client{
		service: DefaultService,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.conn == nil {
		conn, err := c.connect()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnection, err)
		}
		c.conn = conn
	}
	if c.object == nil {
		c.object = func(path dbus.ObjectPath) dbus.BusObject {
			return c.conn.Object(c.service, path)
		}
	}

	return c, nil
}

func (c *client) connect() (*dbus.Conn, error) {
	if c.address == "" {
		klog.V(2).InfoS("Connecting to session bus")
		return dbus.ConnectSessionBus()
	}
	klog.V(2).InfoS("Connecting to bus", "address", c.address)
	return dbus.Connect(c.address)
}

// ListDevices introspects the devices root of the daemon and reads the name
// of every device node found there.
func (c *client) ListDevices() (Registry, error) {
	node, err := introspect.Call(c.object(devicesPath))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to introspect %v on %v: %v", ErrConnection, devicesPath, c.service, err)
	}

	registry := make(Registry)
	for _, child := range node.Children {
		id := DeviceID(child.Name)
		name, err := c.deviceName(id)
		if err != nil {
			// The device may have been removed since the introspection.
			klog.Warningf("Ignoring device %v: %v", id, err)
			continue
		}
		registry[id] = name
	}
	klog.V(4).InfoS("Listed devices", "count", len(registry))

	return registry, nil
}

// IsReachable returns whether the daemon currently has a connection to the device.
func (c *client) IsReachable(id DeviceID) (bool, error) {
	value, err := c.deviceProperty(id, "isReachable")
	if err != nil {
		return false, err
	}
	reachable, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected type %T for isReachable of device %v", value, id)
	}
	return reachable, nil
}

// SFTP returns the mount control object of the device.
func (c *client) SFTP(id DeviceID) SFTP {
	return &sftp{
		id:  id,
		obj: c.object(sftpPath(id)),
	}
}

func (c *client) deviceName(id DeviceID) (string, error) {
	value, err := c.deviceProperty(id, "name")
	if err != nil {
		return "", err
	}
	name, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("unexpected type %T for name of device %v", value, id)
	}
	return name, nil
}

func (c *client) deviceProperty(id DeviceID, property string) (interface{}, error) {
	variant, err := c.object(devicePath(id)).GetProperty(deviceInterface + "." + property)
	if err != nil {
		return nil, fmt.Errorf("error reading property %v of device %v: %w", property, id, err)
	}
	return variant.Value(), nil
}

func devicePath(id DeviceID) dbus.ObjectPath {
	return devicesPath + dbus.ObjectPath("/"+string(id))
}

func sftpPath(id DeviceID) dbus.ObjectPath {
	return devicePath(id) + "/sftp"
}
