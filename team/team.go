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

// Package team resolves the organizations a user can act as.
package team

import "github.com/capitalone/checks-out-console/model"

// Directory is a read-only list of teams. The personal account of the
// user always comes first.
type Directory struct {
	teams []*model.Team
}

// New creates the directory for user from the memberships reported by the
// server. Memberships keep the server order and are not deduplicated.
func New(user *model.User, teams []*model.Team) *Directory {
	list := make([]*model.Team, 0, len(teams)+1)
	list = append(list, model.PersonalTeam(user))
	for _, t := range teams {
		if t != nil {
			list = append(list, t)
		}
	}
	return &Directory{teams: list}
}

// List returns the teams, personal account first.
func (d *Directory) List() []*model.Team {
	out := make([]*model.Team, len(d.teams))
	copy(out, d.teams)
	return out
}

// Get returns the first team whose login equals name.
func (d *Directory) Get(name string) (*model.Team, bool) {
	for _, t := range d.teams {
		if t.Login == name {
			return t, true
		}
	}
	return nil, false
}
