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
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/capitalone/checks-out-console/console"
	"github.com/capitalone/checks-out-console/envvars"
	"github.com/capitalone/checks-out-console/model"
	"github.com/capitalone/checks-out-console/usage"

	"github.com/spf13/cobra"
)

const shellHelp = `Commands:
  orgs               list organizations
  org <name>         select an organization without reloading
  open [name]        start a new session for an organization and load it
  load               reload the repository list
  ls [all]           list repositories of the selected organization
  activate <repo>    activate a repository in the background
  delete <repo>      deactivate a repository in the background
  edit <repo>        select a repository for editing
  close              close the editor
  wait               wait for background requests
  show [repo [ptr]]  show the session state, a repository or a JSON pointer
                     into its server metadata
  stats              show repository and request statistics
  quit               leave the shell
`

type shell struct {
	ws *workspace

	mu  sync.Mutex
	out io.Writer
	wg  sync.WaitGroup
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell [org]",
		Short: "Start an interactive session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			org := ""
			if len(args) == 1 {
				org = args[0]
			}
			sh := &shell{ws: ws, out: cmd.OutOrStdout()}
			if err := ws.open(cmd.Context(), org); err != nil {
				return err
			}
			sh.report(ws.ctrl.Load(cmd.Context()))
			return sh.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// print runs fn with exclusive access to the output.
func (sh *shell) print(fn func(w io.Writer)) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	fn(sh.out)
}

func (sh *shell) printf(format string, a ...interface{}) {
	sh.print(func(w io.Writer) {
		fmt.Fprintf(w, format, a...)
	})
}

func (sh *shell) report(err error) {
	switch {
	case err == nil:
	case err == console.ErrStale:
		sh.printf("discarded: %s\n", err)
	default:
		sh.printf("error: %s\n", errorText(err))
	}
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	defer usage.WriteLog()
	defer sh.wg.Wait()

	scanner := bufio.NewScanner(in)
	sh.printf("%s> ", envvars.Env.Branding.Name)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			if fields[0] == "quit" || fields[0] == "exit" {
				return nil
			}
			sh.exec(ctx, fields[0], fields[1:])
		}
		sh.printf("%s> ", envvars.Env.Branding.Name)
	}
	return scanner.Err()
}

func (sh *shell) exec(ctx context.Context, name string, args []string) {
	ctrl := sh.ws.ctrl
	switch name {
	case "help":
		sh.print(func(w io.Writer) { io.WriteString(w, shellHelp) })
	case "orgs":
		view := ctrl.State()
		sh.print(func(w io.Writer) { renderOrgs(w, view.Orgs, view.Org) })
	case "org":
		if len(args) != 1 {
			sh.printf("usage: org <name>\n")
			return
		}
		ctrl.ChangeOrg(args[0])
		if ctrl.State().Org == nil {
			sh.printf("Organization %s not found\n", args[0])
		}
	case "open":
		org := ""
		if len(args) > 0 {
			org = args[0]
		}
		if err := sh.ws.open(ctx, org); err != nil {
			sh.printf("error: %s\n", err)
			return
		}
		sh.report(ctrl.Load(ctx))
	case "load":
		sh.report(ctrl.Load(ctx))
	case "ls":
		view := ctrl.State()
		repos := view.OrgRepos()
		if len(args) > 0 && args[0] == "all" {
			repos = view.Repos
		} else if view.Org == nil {
			sh.printf("No organization selected\n")
			return
		}
		sh.print(func(w io.Writer) { renderRepos(w, repos) })
	case "activate", "delete":
		repo, ok := sh.lookup(args)
		if !ok {
			return
		}
		sh.background(ctx, name, repo)
	case "edit":
		repo, ok := sh.lookup(args)
		if !ok {
			return
		}
		ctrl.Edit(repo)
	case "close":
		ctrl.CloseEdit()
	case "wait":
		sh.wg.Wait()
	case "show":
		if len(args) == 0 {
			view := ctrl.State()
			sh.print(func(w io.Writer) { renderView(w, view) })
			return
		}
		repo, ok := sh.lookup(args[:1])
		if !ok {
			return
		}
		if len(args) == 1 {
			sh.print(func(w io.Writer) { renderRepos(w, []*model.Repo{repo}) })
			return
		}
		value, ok := repo.Lookup(args[1])
		if !ok {
			sh.printf("Repository %s has no value at %s\n", repo.Key(), args[1])
			return
		}
		sh.print(func(w io.Writer) { renderMeta(w, repo, args[1], value) })
	case "stats":
		view := ctrl.State()
		stats := usage.GetStats()
		sh.print(func(w io.Writer) { renderStats(w, view.Repos, stats) })
	default:
		sh.printf("Unknown command %s. Type help for a list of commands.\n", name)
	}
}

func (sh *shell) lookup(args []string) (*model.Repo, bool) {
	if len(args) != 1 {
		sh.printf("usage: <command> <owner/name|url>\n")
		return nil, false
	}
	repo, err := sh.ws.find(args[0])
	if err != nil {
		sh.printf("error: %s\n", err)
		return nil, false
	}
	return repo, true
}

// background runs an activation or deactivation without blocking the prompt.
func (sh *shell) background(ctx context.Context, name string, repo *model.Repo) {
	sh.wg.Add(1)
	go func() {
		defer sh.wg.Done()
		var err error
		if name == "activate" {
			err = sh.ws.ctrl.Activate(ctx, repo)
		} else {
			err = sh.ws.ctrl.Deactivate(ctx, repo)
		}
		if err != nil {
			sh.report(err)
			return
		}
		sh.printf("%s %s: ok\n", name, repo.Key())
	}()
}
