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
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/NVIDIA/kcb/internal/info"
	"github.com/NVIDIA/kcb/internal/kdeconnect"
	"github.com/NVIDIA/kcb/internal/logger"
	"github.com/NVIDIA/kcb/internal/mount"
	"github.com/NVIDIA/kcb/internal/report"
	"github.com/NVIDIA/kcb/internal/runner"
	"github.com/NVIDIA/kcb/internal/script"
	"github.com/NVIDIA/kcb/internal/session"

	spec "github.com/NVIDIA/kcb/api/config/v1"
)

// Config represents a collection of config options for kcb.
type Config struct {
	configFile string
	noColor    bool
	verbosity  int

	// flags stores the CLI flags for later processing.
	flags []cli.Flag
}

func main() {
	config := &Config{}

	c := cli.NewApp()
	c.Name = "kcb"
	c.Usage = "Run a script in the mounted filesystem of each KDE Connect device"
	c.UsageText = "kcb [global options] [device-name ...]"
	c.Version = info.GetVersionString()
	c.Before = func(ctx *cli.Context) error {
		return setVerbosity(config.verbosity)
	}
	c.Action = func(ctx *cli.Context) error {
		klog.V(1).InfoS("Starting "+ctx.App.Name, "version", ctx.App.Version)
		return start(ctx, config)
	}
	c.Commands = []*cli.Command{
		newListCommand(config),
	}

	config.flags = []cli.Flag{
		&cli.StringFlag{
			Name:        spec.FlagConfigFile,
			Usage:       "the path to a config file as an alternative to command line options or environment variables",
			Destination: &config.configFile,
			EnvVars:     []string{"KCB_CONFIG_FILE"},
		},
		&cli.StringFlag{
			Name:    spec.FlagScriptDir,
			Value:   spec.DefaultScriptDir(),
			Usage:   "the directory holding one <device-name>.sh script per device",
			EnvVars: []string{"KCB_SCRIPT_DIR"},
		},
		&cli.StringFlag{
			Name:    spec.FlagDirectoryLabel,
			Value:   spec.DefaultDirectoryLabel,
			Usage:   "the (case-insensitive) label of the mounted directory the scripts run in",
			EnvVars: []string{"KCB_DIRECTORY_LABEL"},
		},
		&cli.IntFlag{
			Name:    spec.FlagMountAttempts,
			Value:   spec.DefaultMountAttempts,
			Usage:   "the number of times a mount is requested before giving up",
			EnvVars: []string{"KCB_MOUNT_ATTEMPTS"},
		},
		&cli.DurationFlag{
			Name:    spec.FlagMountRetryInterval,
			Value:   spec.DefaultMountRetryInterval,
			Usage:   "the time to wait between mount requests",
			EnvVars: []string{"KCB_MOUNT_RETRY_INTERVAL"},
		},
		&cli.StringFlag{
			Name:    spec.FlagSFTPClient,
			Value:   spec.DefaultSFTPClient,
			Usage:   "the executable that serves the mounts; used to look up session details",
			EnvVars: []string{"KCB_SFTP_CLIENT"},
		},
		&cli.StringFlag{
			Name:    spec.FlagDBusAddress,
			Usage:   "the address of the bus to connect to instead of the session bus",
			EnvVars: []string{"KCB_DBUS_ADDRESS"},
		},
		&cli.StringFlag{
			Name:    spec.FlagDBusService,
			Value:   spec.DefaultDBusService,
			Usage:   "the bus name of the KDE Connect daemon",
			EnvVars: []string{"KCB_DBUS_SERVICE"},
		},
		&cli.StringFlag{
			Name:    spec.FlagProcRoot,
			Value:   spec.DefaultProcRoot,
			Usage:   "the mount point of the proc filesystem",
			EnvVars: []string{"KCB_PROC_ROOT"},
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "disable colored output",
			Destination: &config.noColor,
			EnvVars:     []string{"NO_COLOR"},
		},
		&cli.IntFlag{
			Name:        "verbosity",
			Usage:       "the log level of diagnostic messages written to stderr",
			Destination: &config.verbosity,
			EnvVars:     []string{"KCB_VERBOSITY"},
		},
	}
	c.Flags = config.flags

	err := c.Run(os.Args)
	if err != nil {
		klog.Error(err)
		os.Exit(1)
	}
}

// setVerbosity forwards the verbosity to klog.
func setVerbosity(verbosity int) error {
	flags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(flags)
	if err := flags.Set("v", strconv.Itoa(verbosity)); err != nil {
		return fmt.Errorf("invalid verbosity %v: %w", verbosity, err)
	}
	return nil
}

// loadConfig builds the config from the config file, the environment and the flags.
func (cfg *Config) loadConfig(c *cli.Context) (*spec.Config, error) {
	config, err := spec.NewConfig(c, cfg.flags)
	if err != nil {
		return nil, fmt.Errorf("unable to finalize config: %w", err)
	}
	spec.CheckSettings(logger.ToKlog, config)
	klog.V(2).InfoS("Loaded config", "config", config)

	return config, nil
}

func newClient(config *spec.Config) (kdeconnect.Interface, error) {
	return kdeconnect.New(
		kdeconnect.WithService(*config.Flags.DBus.Service),
		kdeconnect.WithBusAddress(*config.Flags.DBus.Address),
	)
}

func (cfg *Config) newPrinter(c *cli.Context) *report.Printer {
	var opts []report.Option
	if cfg.noColor {
		opts = append(opts, report.WithColor(false))
	}
	return report.New(c.App.Writer, opts...)
}

func start(c *cli.Context, cfg *Config) error {
	config, err := cfg.loadConfig(c)
	if err != nil {
		return fmt.Errorf("unable to load config: %w", err)
	}

	client, err := newClient(config)
	if err != nil {
		return err
	}

	flags := config.Flags
	r := runner.New(
		client,
		script.New(*flags.ScriptDir),
		runner.WithAcquirer(
			mount.New(client,
				mount.WithAttempts(*flags.MountAttempts),
				mount.WithInterval(flags.MountRetryIntervalDuration()),
				mount.WithLabel(*flags.DirectoryLabel),
			),
		),
		runner.WithInspector(
			session.New(
				session.WithProcRoot(*flags.ProcRoot),
				session.WithClient(*flags.SFTPClient),
			),
		),
		runner.WithPrinter(cfg.newPrinter(c)),
	)

	results, err := r.Run(c.Args().Slice())
	if err != nil {
		return err
	}

	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	klog.V(1).InfoS("Finished", "devices", len(results), "failed", failed)
	return nil
}
