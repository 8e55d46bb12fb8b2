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
package model

import (
	"encoding/json"

	"github.com/mattn/go-jsonpointer"
)

// Repo is a repository as reported by the checks-out server. Fields the
// console does not model are preserved in Meta.
type Repo struct {
	ID      int64  `json:"id,omitempty"`
	Owner   string `json:"owner"`
	Name    string `json:"name"`
	Slug    string `json:"slug,omitempty"`
	Link    string `json:"link_url,omitempty"`
	Private bool   `json:"private"`
	Org     bool   `json:"org"`
	Active  bool   `json:"active,omitempty"`

	Meta map[string]interface{} `json:"-"`
}

// RepoOptions is the request body sent when activating a repository.
type RepoOptions map[string]interface{}

// repoFields is Repo without its methods, so the JSON codec does not recurse.
type repoFields Repo

// Key returns the stable owner/name key of the repository.
func (r *Repo) Key() string {
	return r.Owner + "/" + r.Name
}

// IsActive reports whether the server monitors the repository. The server
// marks activated repositories by assigning them an id.
func (r *Repo) IsActive() bool {
	return r.Active || r.ID != 0
}

// Ref returns a copy of the repository that carries only the owner and name.
func (r *Repo) Ref() *Repo {
	return &Repo{Owner: r.Owner, Name: r.Name}
}

// WithoutID returns a copy of the repository with the server identifier
// cleared. A repository without an identifier is not active.
func (r *Repo) WithoutID() *Repo {
	c := *r
	c.ID = 0
	c.Active = false
	if r.Meta != nil {
		c.Meta = make(map[string]interface{}, len(r.Meta))
		for k, v := range r.Meta {
			c.Meta[k] = v
		}
		delete(c.Meta, "id")
		delete(c.Meta, "active")
	}
	return &c
}

// Lookup resolves a JSON pointer (RFC 6901) against the server metadata.
func (r *Repo) Lookup(pointer string) (interface{}, bool) {
	if r.Meta == nil || !jsonpointer.Has(r.Meta, pointer) {
		return nil, false
	}
	v, err := jsonpointer.Get(r.Meta, pointer)
	if err != nil {
		return nil, false
	}
	return v, true
}

func (r *Repo) UnmarshalJSON(data []byte) error {
	var fields repoFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var meta map[string]interface{}
	if err := json.Unmarshal(data, &meta); err != nil {
		return err
	}
	*r = Repo(fields)
	r.Meta = meta
	return nil
}

func (r Repo) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(repoFields(r))
	if err != nil {
		return nil, err
	}
	if len(r.Meta) == 0 {
		return known, nil
	}
	out := make(map[string]interface{}, len(r.Meta))
	for k, v := range r.Meta {
		out[k] = v
	}
	// drop metadata for modelled fields so that cleared values stay cleared
	for _, k := range []string{"id", "owner", "name", "slug", "link_url", "private", "org", "active"} {
		delete(out, k)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		out[k] = v
	}
	return json.Marshal(out)
}
