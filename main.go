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
package main

import (
	"fmt"
	"os"

	"github.com/capitalone/checks-out-console/envvars"
	"github.com/capitalone/checks-out-console/version"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func setLogLevel(level string) {
	switch level {
	case "panic":
		logrus.SetLevel(logrus.PanicLevel)
	case "fatal":
		logrus.SetLevel(logrus.FatalLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.Fatal("Unrecognized log level ", level)
	}
}

func newRootCmd() *cobra.Command {
	var ver, env bool
	root := &cobra.Command{
		Use:           "checks-out-console",
		Short:         fmt.Sprintf("Manage the repositories monitored by %s", envvars.Env.Branding.Name),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case ver:
				fmt.Fprintln(cmd.OutOrStdout(), version.Version)
			case env:
				envvars.Usage(cmd.OutOrStdout())
			default:
				return cmd.Help()
			}
			return nil
		},
	}
	root.Flags().BoolVar(&ver, "version", false, "print version")
	root.Flags().BoolVar(&env, "env", false, "print environment variables")

	root.AddCommand(
		newOrgsCmd(),
		newReposCmd(),
		newActivateCmd(),
		newDeactivateCmd(),
		newShellCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
