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

	"github.com/capitalone/checks-out-console/logstats"
	"github.com/capitalone/checks-out-console/model"

	"github.com/spf13/cobra"
)

func newOrgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orgs",
		Short: "List the organizations of the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			if err := ws.open(cmd.Context(), ""); err != nil {
				return err
			}
			view := ws.ctrl.State()
			renderOrgs(cmd.OutOrStdout(), view.Orgs, view.Org)
			return nil
		},
	}
}

func newReposCmd() *cobra.Command {
	var org string
	var all bool
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List the repositories of an organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			if err := ws.load(cmd.Context(), org); err != nil {
				return err
			}
			view := ws.ctrl.State()
			logstats.WriteLog(view.Repos)
			if all {
				renderRepos(cmd.OutOrStdout(), view.Repos)
				return nil
			}
			if view.Org == nil {
				return fmt.Errorf("Organization %s not found", org)
			}
			renderRepos(cmd.OutOrStdout(), view.OrgRepos())
			return nil
		},
	}
	cmd.Flags().StringVar(&org, "org", "", "organization to show, defaults to the current user")
	cmd.Flags().BoolVar(&all, "all", false, "show the repositories of every organization")
	return cmd
}

func newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <owner/name|url>",
		Short: "Activate a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			if err := ws.load(cmd.Context(), ""); err != nil {
				return err
			}
			repo, err := ws.find(args[0])
			if err != nil {
				return err
			}
			if err := ws.ctrl.Activate(cmd.Context(), repo); err != nil {
				return err
			}
			updated, _ := ws.ctrl.State().Find(repo.Key())
			renderRepos(cmd.OutOrStdout(), []*model.Repo{updated})
			return nil
		},
	}
}

func newDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "deactivate <owner/name|url>",
		Aliases: []string{"delete"},
		Short:   "Deactivate a repository",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			if err := ws.load(cmd.Context(), ""); err != nil {
				return err
			}
			repo, err := ws.find(args[0])
			if err != nil {
				return err
			}
			if err := ws.ctrl.Deactivate(cmd.Context(), repo); err != nil {
				return err
			}
			updated, _ := ws.ctrl.State().Find(repo.Key())
			renderRepos(cmd.OutOrStdout(), []*model.Repo{updated})
			return nil
		},
	}
}
