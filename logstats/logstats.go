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
package logstats

import (
	"github.com/capitalone/checks-out-console/model"
	"github.com/capitalone/checks-out-console/set"

	log "github.com/sirupsen/logrus"
)

// Stats summarizes a repository list.
type Stats struct {
	Repos  int
	Active int
	Users  set.Set
	Orgs   set.Set
}

func usersAndOrgs(repos []*model.Repo) (set.Set, set.Set) {
	users := set.Empty()
	orgs := set.Empty()
	for _, repo := range repos {
		if repo.Org {
			orgs.Add(repo.Owner)
		} else {
			users.Add(repo.Owner)
		}
	}
	return users, orgs
}

func Summarize(repos []*model.Repo) Stats {
	users, orgs := usersAndOrgs(repos)
	s := Stats{Repos: len(repos), Users: users, Orgs: orgs}
	for _, repo := range repos {
		if repo.IsActive() {
			s.Active++
		}
	}
	return s
}

// WriteLog logs the summary of repos at info level.
func WriteLog(repos []*model.Repo) {
	s := Summarize(repos)
	log.Infof("Listing %d repositories", s.Repos)
	log.Infof("Monitoring %d repositories", s.Active)
	log.Infof("Listing %d users", len(s.Users))
	log.Infof("Listing %d organizations", len(s.Orgs))
}
