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

// Package console implements the repository view: the selected
// organization, the repository list and the state of pending changes,
// kept in sync with the checks-out server.
package console

import (
	"context"
	"errors"
	"sync"

	"github.com/capitalone/checks-out-console/model"
	"github.com/capitalone/checks-out-console/usage"

	log "github.com/sirupsen/logrus"
)

// ErrStale is returned when the view session ended while a request was in
// flight. The response was discarded.
var ErrStale = errors.New("View session ended before the request completed")

// Gateway performs the repository operations on the server.
type Gateway interface {
	List(context.Context) ([]*model.Repo, error)
	Activate(context.Context, *model.Repo, model.RepoOptions) (*model.Repo, error)
	Deactivate(context.Context, *model.Repo) error
}

// Session identifies the user of a view session.
type Session interface {
	User() *model.User
}

// Directory resolves organization names.
type Directory interface {
	List() []*model.Team
	Get(string) (*model.Team, bool)
}

// Controller owns the view state. Gateway calls run without holding the
// state lock; their results are applied only if the view session that
// issued them is still current.
type Controller struct {
	gateway Gateway

	mu    sync.Mutex
	gen   uint64
	teams Directory
	view  View
}

// New creates a controller backed by gw.
func New(gw Gateway) *Controller {
	return &Controller{gateway: gw}
}

// Init starts a new view session for the organization name, or for the
// personal account of the user when name is empty. Results of requests
// issued by earlier sessions are discarded from now on. It returns the
// session number.
func (c *Controller) Init(s Session, teams Directory, name string) uint64 {
	if name == "" {
		name = s.User().Login
	}
	org, ok := teams.Get(name)
	if !ok {
		log.Debugf("Organization %s is not in the directory", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.teams = teams
	c.view = View{
		Org:  org,
		Orgs: teams.List(),
	}
	log.WithFields(log.Fields{"session": c.gen, "org": name}).Debug("View session started")
	return c.gen
}

// Leave ends the current view session and clears the view.
func (c *Controller) Leave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.teams = nil
	c.view = View{}
}

// Generation returns the number of the current view session.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// State returns a copy of the view.
func (c *Controller) State() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.copy()
}

// Load fetches the repository list. A fresh list clears the error and
// the saving flag. On failure the previous list is kept and the error is
// recorded.
func (c *Controller) Load(ctx context.Context) error {
	gen := c.Generation()
	repos, err := c.gateway.List(usage.AddEventToContext(ctx, "list"))

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		log.Debugf("Discarding repository list of session %d", gen)
		return ErrStale
	}
	if err != nil {
		c.view.Err = err
		return err
	}
	c.view.Repos = append([]*model.Repo{}, repos...)
	c.view.Loaded = true
	c.view.Err = nil
	c.view.Saving = false
	return nil
}

// Activate registers repo with the server and replaces its list entry
// with the record the server returns. The entry is located by owner and
// name when the response arrives; if it is gone by then the list is left
// alone. Concurrent activations are not serialized.
func (c *Controller) Activate(ctx context.Context, repo *model.Repo) error {
	key := repo.Key()

	c.mu.Lock()
	gen := c.gen
	c.view.Saving = true
	c.view.Editing = nil
	c.view.Err = nil
	c.mu.Unlock()

	result, err := c.gateway.Activate(usage.AddEventToContext(ctx, "activate"), repo, model.RepoOptions{})

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		log.Debugf("Discarding activation of %s from session %d", key, gen)
		return ErrStale
	}
	c.view.Saving = false
	c.view.Editing = nil
	if err != nil {
		c.view.Err = err
		return err
	}
	if i := c.view.index(key); i >= 0 {
		c.view.Repos[i] = result
	} else {
		log.Debugf("Repository %s left the list before its activation completed", key)
	}
	c.view.Err = nil
	return nil
}

// Deactivate removes repo from the server. The server identifier is
// cleared from the list entry beforehand and the request carries the
// owner and name only. A success changes nothing else; the list is
// refreshed by the next Load.
func (c *Controller) Deactivate(ctx context.Context, repo *model.Repo) error {
	req := repo.Ref()
	key := req.Key()

	c.mu.Lock()
	gen := c.gen
	if i := c.view.index(key); i >= 0 && c.view.Repos[i].IsActive() {
		c.view.Repos[i] = c.view.Repos[i].WithoutID()
	}
	c.mu.Unlock()

	err := c.gateway.Deactivate(usage.AddEventToContext(ctx, "deactivate"), req)
	if err == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		log.Debugf("Discarding failed deactivation of %s from session %d", key, gen)
		return ErrStale
	}
	c.view.Err = err
	return err
}

// Edit selects repo for inline editing.
func (c *Controller) Edit(repo *model.Repo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Editing = repo
}

// CloseEdit clears the editing selection.
func (c *Controller) CloseEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.Editing = nil
}

// ChangeOrg selects another organization. The repository list is not
// reloaded: it already spans every organization of the user.
func (c *Controller) ChangeOrg(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var org *model.Team
	if c.teams != nil {
		org, _ = c.teams.Get(name)
	}
	c.view.Org = org
	log.WithFields(log.Fields{"session": c.gen, "org": name}).Debug("Organization changed")
}
