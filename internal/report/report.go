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
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer writes the human-readable progress of a run.
type Printer struct {
	out     io.Writer
	section *color.Color
	err     *color.Color
	success *color.Color
	info    *color.Color
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor forces colored output on or off.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		for _, c := range p.colors() {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// New creates a Printer for the specified writer. Colors are enabled only
// when the writer is a terminal unless overridden with WithColor.
func New(out io.Writer, opts ...Option) *Printer {
	if out == nil {
		out = os.Stdout
	}
	p := &Printer{
		out:     out,
		section: color.New(color.FgWhite, color.Bold, color.BgBlue),
		err:     color.New(color.FgRed),
		success: color.New(color.FgGreen),
		info:    color.New(color.Reset),
	}
	WithColor(isTerminal(out))(p)

	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Printer) colors() []*color.Color {
	return []*color.Color{p.section, p.err, p.success, p.info}
}

// Section prints a heading that starts the output for a device.
func (p *Printer) Section(format string, a ...interface{}) {
	p.line(p.section, format, a...)
}

// Infof prints an uncolored progress line.
func (p *Printer) Infof(format string, a ...interface{}) {
	p.line(p.info, format, a...)
}

// Errorf prints a failure line.
func (p *Printer) Errorf(format string, a ...interface{}) {
	p.line(p.err, format, a...)
}

// Successf prints a success line.
func (p *Printer) Successf(format string, a ...interface{}) {
	p.line(p.success, format, a...)
}

// Newline prints an empty line.
func (p *Printer) Newline() {
	fmt.Fprintln(p.out)
}

func (p *Printer) line(c *color.Color, format string, a ...interface{}) {
	// Keep the newline outside the escape codes so a background color stops
	// at the end of the text.
	fmt.Fprintln(p.out, c.Sprint(fmt.Sprintf(format, a...)))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
