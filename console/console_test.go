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
	"context"
	"errors"
	"io/ioutil"
	"sync"
	"testing"

	"github.com/capitalone/checks-out-console/exterror"
	"github.com/capitalone/checks-out-console/model"
	"github.com/capitalone/checks-out-console/session"
	"github.com/capitalone/checks-out-console/team"

	"github.com/franela/goblin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway answers from fixed values. When hold is set, Activate and
// Deactivate report on started and wait for release.
type fakeGateway struct {
	mu sync.Mutex

	repos   []*model.Repo
	listErr error
	lists   int

	activated   *model.Repo
	activateErr error
	activations []*model.Repo
	options     []model.RepoOptions

	deactivateErr error
	deactivations []*model.Repo

	hold    bool
	started chan struct{}
	release chan struct{}
}

func newFakeGateway(repos ...*model.Repo) *fakeGateway {
	return &fakeGateway{
		repos:   repos,
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

func (f *fakeGateway) wait() {
	f.mu.Lock()
	hold := f.hold
	f.mu.Unlock()
	if hold {
		f.started <- struct{}{}
		<-f.release
	}
}

func (f *fakeGateway) List(context.Context) ([]*model.Repo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.repos, nil
}

func (f *fakeGateway) Activate(_ context.Context, repo *model.Repo, opts model.RepoOptions) (*model.Repo, error) {
	f.mu.Lock()
	f.activations = append(f.activations, repo)
	f.options = append(f.options, opts)
	f.mu.Unlock()
	f.wait()
	return f.activated, f.activateErr
}

func (f *fakeGateway) Deactivate(_ context.Context, repo *model.Repo) error {
	f.mu.Lock()
	f.deactivations = append(f.deactivations, repo)
	f.mu.Unlock()
	f.wait()
	return f.deactivateErr
}

func newSession(login string) *session.Session {
	s, _ := session.New(&model.Snapshot{User: &model.User{Login: login}})
	return s
}

func TestController(t *testing.T) {
	logrus.SetOutput(ioutil.Discard)
	g := goblin.Goblin(t)
	ctx := context.Background()

	alice := newSession("alice")
	teams := team.New(alice.User(), []*model.Team{{Login: "acme"}})

	g.Describe("Init", func() {

		g.It("Should select the personal account by default", func() {
			c := New(newFakeGateway())
			c.Init(alice, team.New(alice.User(), nil), "")
			v := c.State()
			require.NotNil(t, v.Org)
			assert.Equal(t, "alice", v.Org.Login)
			assert.Len(t, v.Orgs, 1)
			assert.Nil(t, v.Err)
			assert.Nil(t, v.Editing)
			assert.False(t, v.Saving)
			assert.False(t, v.Loaded)
		})

		g.It("Should select the requested organization", func() {
			c := New(newFakeGateway())
			c.Init(alice, teams, "acme")
			v := c.State()
			assert.Equal(t, "acme", v.Org.Login)
			assert.Equal(t, "alice", v.Orgs[0].Login)
			assert.Equal(t, "acme", v.Orgs[1].Login)
		})

		g.It("Should leave an unknown organization absent", func() {
			c := New(newFakeGateway())
			c.Init(alice, teams, "nobody")
			v := c.State()
			assert.Nil(t, v.Org)
			assert.Len(t, v.Orgs, 2)
			assert.Nil(t, v.OrgRepos())
		})

		g.It("Should start a new session every time", func() {
			c := New(newFakeGateway())
			first := c.Init(alice, teams, "")
			second := c.Init(alice, teams, "")
			assert.True(t, second > first)
			assert.Equal(t, second, c.Generation())
		})
	})

	g.Describe("Load", func() {

		g.It("Should hold the list in gateway order", func() {
			gw := newFakeGateway(
				&model.Repo{Owner: "acme", Name: "b"},
				&model.Repo{Owner: "alice", Name: "a"},
			)
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))
			v := c.State()
			assert.True(t, v.Loaded)
			assert.False(t, v.Saving)
			assert.Nil(t, v.Err)
			require.Len(t, v.Repos, 2)
			assert.Equal(t, "acme/b", v.Repos[0].Key())
			assert.Equal(t, "alice/a", v.Repos[1].Key())
		})

		g.It("Should keep the previous list on failure", func() {
			gw := newFakeGateway(&model.Repo{Owner: "alice", Name: "a"})
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))

			boom := exterror.Create(500, []byte("boom"))
			gw.listErr = boom
			err := c.Load(ctx)
			assert.Equal(t, boom, err)
			v := c.State()
			assert.Equal(t, boom, v.Err)
			assert.Len(t, v.Repos, 1)
		})

		g.It("Should clear the error after a successful load", func() {
			gw := newFakeGateway(&model.Repo{Owner: "alice", Name: "a"})
			gw.listErr = exterror.Network(errors.New("connection refused"))
			c := New(gw)
			c.Init(alice, teams, "")
			assert.Error(t, c.Load(ctx))
			assert.Nil(t, c.State().Repos)

			gw.listErr = nil
			require.NoError(t, c.Load(ctx))
			assert.Nil(t, c.State().Err)
		})
	})

	g.Describe("Activate", func() {

		g.It("Should replace the entry with the canonical record", func() {
			r1 := &model.Repo{Owner: "alice", Name: "r1", Active: false}
			gw := newFakeGateway(r1)
			gw.activated = &model.Repo{Owner: "alice", Name: "r1", Active: true, ID: 7}
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))
			c.Edit(r1)

			require.NoError(t, c.Activate(ctx, r1))
			v := c.State()
			assert.Equal(t, []*model.Repo{{Owner: "alice", Name: "r1", Active: true, ID: 7}}, v.Repos)
			assert.Nil(t, v.Err)
			assert.False(t, v.Saving)
			assert.Nil(t, v.Editing)
			assert.Equal(t, "alice/r1", gw.activations[0].Key())
			assert.Equal(t, model.RepoOptions{}, gw.options[0])
		})

		g.It("Should keep the entry and record the error on failure", func() {
			r1 := &model.Repo{Owner: "alice", Name: "r1"}
			gw := newFakeGateway(r1)
			remoteErr := exterror.Create(409, []byte("Unable to activate repository alice/r1 because it is already active."))
			gw.activateErr = remoteErr
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))
			c.Edit(r1)

			err := c.Activate(ctx, r1)
			assert.Equal(t, remoteErr, err)
			v := c.State()
			assert.True(t, v.Repos[0] == r1)
			assert.Equal(t, remoteErr, v.Err)
			assert.False(t, v.Saving)
			assert.Nil(t, v.Editing)
		})

		g.It("Should mark the view as saving while in flight", func() {
			r1 := &model.Repo{Owner: "alice", Name: "r1"}
			gw := newFakeGateway(r1)
			gw.listErr = errors.New("stale error")
			gw.activated = &model.Repo{Owner: "alice", Name: "r1", ID: 7}
			c := New(gw)
			c.Init(alice, teams, "")
			c.Load(ctx)
			c.Edit(r1)

			gw.hold = true
			done := make(chan error)
			go func() { done <- c.Activate(ctx, r1) }()
			<-gw.started

			v := c.State()
			assert.True(t, v.Saving)
			assert.Nil(t, v.Editing)
			assert.Nil(t, v.Err)

			close(gw.release)
			require.NoError(t, <-done)
			assert.False(t, c.State().Saving)
		})

		g.It("Should clear the saving flag on a fresh list", func() {
			r1 := &model.Repo{Owner: "alice", Name: "r1"}
			gw := newFakeGateway(r1)
			gw.activated = &model.Repo{Owner: "alice", Name: "r1", ID: 7}
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))

			gw.hold = true
			done := make(chan error)
			go func() { done <- c.Activate(ctx, r1) }()
			<-gw.started
			assert.True(t, c.State().Saving)

			require.NoError(t, c.Load(ctx))
			assert.False(t, c.State().Saving)

			close(gw.release)
			require.NoError(t, <-done)
			v := c.State()
			assert.False(t, v.Saving)
			assert.Equal(t, int64(7), v.Repos[0].ID)
		})

		g.It("Should keep the saving flag when the list fails", func() {
			r1 := &model.Repo{Owner: "alice", Name: "r1"}
			gw := newFakeGateway(r1)
			gw.activated = &model.Repo{Owner: "alice", Name: "r1", ID: 7}
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))

			gw.hold = true
			done := make(chan error)
			go func() { done <- c.Activate(ctx, r1) }()
			<-gw.started

			gw.mu.Lock()
			gw.listErr = errors.New("list failed")
			gw.mu.Unlock()
			require.Error(t, c.Load(ctx))
			assert.True(t, c.State().Saving)

			close(gw.release)
			require.NoError(t, <-done)
			assert.False(t, c.State().Saving)
		})

		g.It("Should leave the list alone when the entry is gone", func() {
			r1 := &model.Repo{Owner: "alice", Name: "r1"}
			r2 := &model.Repo{Owner: "alice", Name: "r2"}
			gw := newFakeGateway(r1, r2)
			gw.activated = &model.Repo{Owner: "alice", Name: "r1", ID: 7}
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))

			gw.hold = true
			done := make(chan error)
			go func() { done <- c.Activate(ctx, r1) }()
			<-gw.started

			gw.mu.Lock()
			gw.repos = []*model.Repo{r2}
			gw.mu.Unlock()
			require.NoError(t, c.Load(ctx))

			close(gw.release)
			require.NoError(t, <-done)
			v := c.State()
			assert.Equal(t, []*model.Repo{r2}, v.Repos)
			assert.False(t, v.Saving)
			assert.Nil(t, v.Err)
		})

		g.It("Should write back by key after the list was reloaded", func() {
			r1 := &model.Repo{Owner: "alice", Name: "r1"}
			r2 := &model.Repo{Owner: "alice", Name: "r2"}
			gw := newFakeGateway(r1, r2)
			gw.activated = &model.Repo{Owner: "alice", Name: "r1", ID: 7}
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))

			gw.hold = true
			done := make(chan error)
			go func() { done <- c.Activate(ctx, r1) }()
			<-gw.started

			gw.mu.Lock()
			gw.repos = []*model.Repo{r2, {Owner: "alice", Name: "r1"}}
			gw.mu.Unlock()
			require.NoError(t, c.Load(ctx))

			close(gw.release)
			require.NoError(t, <-done)
			v := c.State()
			assert.True(t, v.Repos[0] == r2)
			assert.Equal(t, int64(7), v.Repos[1].ID)
		})

		g.It("Should discard results of an ended session", func() {
			r1 := &model.Repo{Owner: "alice", Name: "r1"}
			gw := newFakeGateway(r1)
			gw.activated = &model.Repo{Owner: "alice", Name: "r1", ID: 7}
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))

			gw.hold = true
			done := make(chan error)
			go func() { done <- c.Activate(ctx, r1) }()
			<-gw.started

			c.Init(alice, teams, "acme")
			require.NoError(t, c.Load(ctx))

			close(gw.release)
			assert.Equal(t, ErrStale, <-done)
			v := c.State()
			assert.True(t, v.Repos[0] == r1)
			assert.False(t, v.Saving)
			assert.Equal(t, "acme", v.Org.Login)
		})
	})

	g.Describe("Deactivate", func() {

		g.It("Should key the request by owner and name", func() {
			r2 := &model.Repo{Owner: "bob", Name: "r2", ID: 9}
			gw := newFakeGateway(r2)
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))

			prior := errors.New("prior failure")
			gw.listErr = prior
			c.Load(ctx)

			require.NoError(t, c.Deactivate(ctx, r2))
			require.Len(t, gw.deactivations, 1)
			req := gw.deactivations[0]
			assert.Equal(t, "bob", req.Owner)
			assert.Equal(t, "r2", req.Name)
			assert.Equal(t, int64(0), req.ID)

			v := c.State()
			assert.Equal(t, prior, v.Err)
			assert.Equal(t, int64(0), v.Repos[0].ID)
			assert.False(t, v.Repos[0].IsActive())
			assert.Equal(t, int64(9), r2.ID)
		})

		g.It("Should record the error on failure", func() {
			r2 := &model.Repo{Owner: "bob", Name: "r2", ID: 9}
			gw := newFakeGateway(r2)
			remoteErr := exterror.Create(500, []byte("Deleting repository r2"))
			gw.deactivateErr = remoteErr
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))

			assert.Equal(t, remoteErr, c.Deactivate(ctx, r2))
			assert.Equal(t, remoteErr, c.State().Err)
		})

		g.It("Should discard failures of an ended session", func() {
			r2 := &model.Repo{Owner: "bob", Name: "r2", ID: 9}
			gw := newFakeGateway(r2)
			gw.deactivateErr = errors.New("boom")
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))

			gw.hold = true
			done := make(chan error)
			go func() { done <- c.Deactivate(ctx, r2) }()
			<-gw.started
			c.Leave()

			close(gw.release)
			assert.Equal(t, ErrStale, <-done)
			assert.Nil(t, c.State().Err)
		})
	})

	g.Describe("Editing", func() {

		g.It("Should select and close without touching the list", func() {
			r1 := &model.Repo{Owner: "alice", Name: "r1"}
			gw := newFakeGateway(r1)
			boom := errors.New("boom")
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))
			gw.listErr = boom
			c.Load(ctx)

			c.Edit(r1)
			assert.True(t, c.State().Editing == r1)
			c.CloseEdit()

			v := c.State()
			assert.Nil(t, v.Editing)
			assert.Equal(t, []*model.Repo{r1}, v.Repos)
			assert.Equal(t, boom, v.Err)
			assert.Equal(t, 2, gw.lists)
		})
	})

	g.Describe("ChangeOrg", func() {

		g.It("Should select the organization without reloading", func() {
			gw := newFakeGateway(
				&model.Repo{Owner: "alice", Name: "a"},
				&model.Repo{Owner: "acme", Name: "b"},
			)
			c := New(gw)
			c.Init(alice, teams, "")
			require.NoError(t, c.Load(ctx))

			c.ChangeOrg("acme")
			v := c.State()
			assert.Equal(t, "acme", v.Org.Login)
			assert.Equal(t, 1, gw.lists)
			require.Len(t, v.OrgRepos(), 1)
			assert.Equal(t, "acme/b", v.OrgRepos()[0].Key())

			c.ChangeOrg("nobody")
			assert.Nil(t, c.State().Org)
			assert.Len(t, c.State().Repos, 2)
		})

		g.It("Should leave the organization absent after the session ended", func() {
			c := New(newFakeGateway())
			c.Init(alice, teams, "")
			c.Leave()
			c.ChangeOrg("acme")
			assert.Nil(t, c.State().Org)
		})
	})
}
