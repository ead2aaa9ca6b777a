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

package runner

import (
	"os"

	"github.com/NVIDIA/kcb/internal/kdeconnect"
	"github.com/NVIDIA/kcb/internal/mount"
	"github.com/NVIDIA/kcb/internal/report"
	"github.com/NVIDIA/kcb/internal/resolver"
	"github.com/NVIDIA/kcb/internal/session"
)

// Option defines a functional option for configuring a Runner.
type Option func(*Runner)

// WithResolver sets the resolver used to map device names to IDs.
func WithResolver(resolver Resolver) Option {
	return func(r *Runner) {
		r.resolver = resolver
	}
}

// WithAcquirer sets the acquirer used to mount devices.
func WithAcquirer(acquirer Acquirer) Option {
	return func(r *Runner) {
		r.acquirer = acquirer
	}
}

// WithInspector sets the inspector used to recover the session of a mount.
func WithInspector(inspector session.Inspector) Option {
	return func(r *Runner) {
		r.inspector = inspector
	}
}

// WithPrinter sets the printer for the progress report.
func WithPrinter(printer *report.Printer) Option {
	return func(r *Runner) {
		r.printer = printer
	}
}

func (r *Runner) setDefaults(client kdeconnect.Interface) {
	if r.resolver == nil {
		r.resolver = resolver.New(client)
	}
	if r.acquirer == nil {
		r.acquirer = mount.New(client)
	}
	if r.inspector == nil {
		r.inspector = session.New()
	}
	if r.printer == nil {
		r.printer = report.New(os.Stdout)
	}
}
