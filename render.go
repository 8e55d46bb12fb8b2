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
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/capitalone/checks-out-console/console"
	"github.com/capitalone/checks-out-console/exterror"
	"github.com/capitalone/checks-out-console/logstats"
	"github.com/capitalone/checks-out-console/model"
	"github.com/capitalone/checks-out-console/set"
	"github.com/capitalone/checks-out-console/usage"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	activeLabel   = color.New(color.FgGreen).SprintFunc()
	inactiveLabel = color.New(color.Faint).SprintFunc()
	errorLabel    = color.New(color.FgRed).SprintFunc()
	personalLabel = color.New(color.FgCyan).SprintFunc()
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

func renderOrgs(w io.Writer, orgs []*model.Team, selected *model.Team) {
	table := newTable(w, "", "Organization", "Avatar")
	for i, org := range orgs {
		mark := ""
		if selected != nil && selected.Login == org.Login {
			mark = "*"
		}
		login := org.Login
		if i == 0 {
			login = personalLabel(login)
		}
		table.Append([]string{mark, login, org.Avatar})
	}
	table.Render()
}

func renderRepos(w io.Writer, repos []*model.Repo) {
	table := newTable(w, "Repository", "ID", "Private", "Status")
	for _, repo := range repos {
		table.Append(repoRow(repo))
	}
	table.Render()
}

func repoRow(repo *model.Repo) []string {
	id := ""
	if repo.ID != 0 {
		id = strconv.FormatInt(repo.ID, 10)
	}
	status := inactiveLabel("inactive")
	if repo.IsActive() {
		status = activeLabel("active")
	}
	return []string{repo.Key(), id, strconv.FormatBool(repo.Private), status}
}

func renderView(w io.Writer, view console.View) {
	table := newTable(w, "Field", "Value")
	org := "(not found)"
	if view.Org != nil {
		org = view.Org.Login
	}
	editing := ""
	if view.Editing != nil {
		editing = view.Editing.Key()
	}
	table.Append([]string{"org", org})
	table.Append([]string{"repos", strconv.Itoa(len(view.Repos))})
	table.Append([]string{"loaded", strconv.FormatBool(view.Loaded)})
	table.Append([]string{"editing", editing})
	table.Append([]string{"saving", strconv.FormatBool(view.Saving)})
	table.Append([]string{"error", errorText(view.Err)})
	table.Render()
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	if exterror.IsNetwork(err) {
		return errorLabel("network") + " " + err.Error()
	}
	remote := exterror.Convert(err)
	return errorLabel(strconv.Itoa(remote.Status)) + " " + err.Error()
}

func renderStats(w io.Writer, repos []*model.Repo, stats usage.Usage) {
	summary := logstats.Summarize(repos)
	table := newTable(w, "Statistic", "Value")
	table.Append([]string{"repositories", strconv.Itoa(summary.Repos)})
	table.Append([]string{"active", strconv.Itoa(summary.Active)})
	table.Append([]string{"users", summary.Users.Print(" ")})
	table.Append([]string{"organizations", summary.Orgs.Print(" ")})
	events := set.Empty()
	for e := range stats.RemoteReq {
		events.Add(e)
	}
	for _, e := range events.Keys() {
		count := strconv.Itoa(stats.RemoteReq[e])
		if fail := stats.RemoteFail[e]; fail > 0 {
			count += " (" + errorLabel(strconv.Itoa(fail)+" failed") + ")"
		}
		table.Append([]string{"requests " + e, count})
	}
	table.Render()
}

func renderMeta(w io.Writer, repo *model.Repo, pointer string, value interface{}) {
	out, err := json.Marshal(value)
	if err != nil {
		out = []byte(fmt.Sprint(value))
	}
	table := newTable(w, "Repository", "Pointer", "Value")
	table.Append([]string{repo.Key(), pointer, string(out)})
	table.Render()
}
