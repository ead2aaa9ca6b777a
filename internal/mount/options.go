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

package mount

import "time"

// Option defines a functional option for configuring an Acquirer.
type Option func(*Acquirer)

// WithAttempts sets the maximum number of mount requests.
func WithAttempts(attempts int) Option {
	return func(a *Acquirer) {
		a.attempts = attempts
	}
}

// WithInterval sets the delay between mount requests.
func WithInterval(interval time.Duration) Option {
	return func(a *Acquirer) {
		a.interval = interval
	}
}

// WithLabel sets the label of the directory that is used as the mount root.
func WithLabel(label string) Option {
	return func(a *Acquirer) {
		a.label = label
	}
}

// WithSleep sets the function used to wait between mount requests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(a *Acquirer) {
		a.sleep = sleep
	}
}
