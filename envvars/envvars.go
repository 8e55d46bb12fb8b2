/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/
package envvars

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/capitalone/checks-out-console/set"

	"github.com/hashicorp/go-version"
	"github.com/ianschenck/envflag"
	"github.com/mspiegel/go-multierror"
)

type EnvValues struct {
	// Server connection
	Server struct {
		Url     string
		Token   string
		Csrf    string
		Timeout time.Duration
		// MinVersion is a version constraint the server must satisfy
		MinVersion string
	}
	// Startup snapshot
	Snapshot struct {
		File string
	}
	// External (user-facing) customization
	Branding struct {
		Name string
	}
	// Logging/debug config
	Monitor struct {
		LogLevel string
	}
	// Caching config
	Cache struct {
		CacheTTL time.Duration
	}
}

var Env EnvValues

var logLevels = set.New("debug", "info", "warn", "error", "fatal", "panic")

func init() {
	configure()
}

func configure() {
	envflag.StringVar(&Env.Server.Url, "CHECKS_OUT_URL", "http://localhost:8000", "checks-out server url")
	envflag.StringVar(&Env.Server.Token, "CHECKS_OUT_TOKEN", "", "checks-out API token. Required")
	envflag.StringVar(&Env.Server.Csrf, "CHECKS_OUT_CSRF", "", "CSRF token sent with every request")
	envflag.DurationVar(&Env.Server.Timeout, "REQUEST_TIMEOUT", 30*time.Second, "Timeout of a single server request")
	envflag.StringVar(&Env.Server.MinVersion, "MIN_SERVER_VERSION", "", "Version constraint the server must satisfy, e.g. '>= 1.0'")

	envflag.StringVar(&Env.Snapshot.File, "SNAPSHOT_FILE", "", "Startup snapshot file (.json, .hjson or .toml)")

	envflag.StringVar(&Env.Branding.Name, "BRANDING_NAME", "checks-out", "Branding of the service")

	envflag.StringVar(&Env.Monitor.LogLevel, "LOG_LEVEL", "warn", "One of debug|info|warn|error|fatal|panic")

	envflag.DurationVar(&Env.Cache.CacheTTL, "CACHE_TTL", time.Minute*15, "Cache length for user and organization lookups")

	envflag.Parse()

	Env.Monitor.LogLevel = strings.ToLower(Env.Monitor.LogLevel)
	Env.Server.Url = strings.TrimRight(Env.Server.Url, "/")
}

// Usage prints the environment variables and their defaults to w.
func Usage(w io.Writer) {
	envflag.EnvironmentFlags.SetOutput(w)
	envflag.EnvironmentFlags.PrintDefaults()
}

func Validate() error {
	var errs error
	if Env.Server.Url == "" {
		err := errors.New("Environment variable CHECKS_OUT_URL is empty")
		errs = multierror.Append(errs, err)
	} else if !strings.HasPrefix(Env.Server.Url, "https://") && !strings.HasPrefix(Env.Server.Url, "http://") {
		err := errors.New("CHECKS_OUT_URL must have prefix 'https://' or 'http://'")
		errs = multierror.Append(errs, err)
	}
	if Env.Server.Token == "" {
		err := errors.New("Missing required environment variable CHECKS_OUT_TOKEN")
		errs = multierror.Append(errs, err)
	}
	if Env.Server.Timeout <= 0 {
		err := fmt.Errorf("Environment variable REQUEST_TIMEOUT '%s' must be positive", Env.Server.Timeout)
		errs = multierror.Append(errs, err)
	}
	if Env.Server.MinVersion != "" {
		if _, err := version.NewConstraint(Env.Server.MinVersion); err != nil {
			err = fmt.Errorf("Environment variable MIN_SERVER_VERSION '%s' is not a version constraint",
				Env.Server.MinVersion)
			errs = multierror.Append(errs, err)
		}
	}
	if !logLevels.Contains(Env.Monitor.LogLevel) {
		err := fmt.Errorf("Environment variable LOG_LEVEL '%s' must be one of: %s",
			Env.Monitor.LogLevel,
			"'debug', 'info', 'warn', 'error', 'fatal', 'panic'")
		errs = multierror.Append(errs, err)
	}
	return errs
}
