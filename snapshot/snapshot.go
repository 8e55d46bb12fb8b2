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

// Package snapshot loads the state the console starts from: the user, the
// organizations they belong to and the CSRF token of their session.
package snapshot

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/capitalone/checks-out-console/exterror"
	"github.com/capitalone/checks-out-console/model"
	"github.com/capitalone/checks-out-console/usage"

	"github.com/pkg/errors"
)

// Source produces a startup snapshot.
type Source interface {
	Load(context.Context) (*model.Snapshot, error)
}

// File reads the snapshot from a json, hjson or toml file. The format is
// chosen by the file extension.
type File struct {
	Path string
}

func (f *File) Load(context.Context) (*model.Snapshot, error) {
	data, err := ioutil.ReadFile(f.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "Reading snapshot %s", f.Path)
	}
	snap, err := Parse(data, formatOf(f.Path))
	if err != nil {
		return nil, errors.Wrapf(err, "Parsing snapshot %s", f.Path)
	}
	return snap, nil
}

func formatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "json"
	}
	return ext
}

// Fetcher is the part of the server API a snapshot is built from.
type Fetcher interface {
	GetUser(context.Context) (*model.User, error)
	GetOrgs(context.Context) ([]*model.Team, error)
}

// Remote builds the snapshot from the server.
type Remote struct {
	Fetcher Fetcher
	Csrf    string
}

func (r *Remote) Load(c context.Context) (*model.Snapshot, error) {
	c = usage.AddEventToContext(c, "snapshot")
	user, err := r.Fetcher.GetUser(c)
	if err != nil {
		return nil, exterror.Append(err, "Loading snapshot")
	}
	orgs, err := r.Fetcher.GetOrgs(c)
	if err != nil {
		return nil, exterror.Append(err, "Loading snapshot")
	}
	// the server lists the personal account with the organizations
	teams := []*model.Team{}
	for _, org := range orgs {
		if org == nil || (user != nil && org.Login == user.Login) {
			continue
		}
		teams = append(teams, org)
	}
	snap := &model.Snapshot{
		User:  user,
		Teams: teams,
		Csrf:  r.Csrf,
	}
	if err := Validate(snap); err != nil {
		return nil, err
	}
	return snap, nil
}
