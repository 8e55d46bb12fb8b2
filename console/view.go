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
package console

import (
	"strings"

	"github.com/capitalone/checks-out-console/model"
)

// View is the state of a view session. Absent values are nil: Org when
// the requested organization is unknown, Err when the last operation
// succeeded, Editing when no repository is selected.
type View struct {
	Org     *model.Team
	Orgs    []*model.Team
	Repos   []*model.Repo
	Loaded  bool
	Err     error
	Editing *model.Repo
	Saving  bool
}

// OrgRepos returns the repositories owned by the selected organization.
func (v View) OrgRepos() []*model.Repo {
	if v.Org == nil {
		return nil
	}
	var out []*model.Repo
	for _, r := range v.Repos {
		if strings.EqualFold(r.Owner, v.Org.Login) {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the repository with the owner/name key.
func (v View) Find(key string) (*model.Repo, bool) {
	if i := v.index(key); i >= 0 {
		return v.Repos[i], true
	}
	return nil, false
}

func (v View) index(key string) int {
	for i, r := range v.Repos {
		if strings.EqualFold(r.Key(), key) {
			return i
		}
	}
	return -1
}

func (v View) copy() View {
	if v.Orgs != nil {
		v.Orgs = append([]*model.Team{}, v.Orgs...)
	}
	if v.Repos != nil {
		v.Repos = append([]*model.Repo{}, v.Repos...)
	}
	return v
}
