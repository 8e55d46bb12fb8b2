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
	"context"

	"github.com/capitalone/checks-out-console/cache"
	"github.com/capitalone/checks-out-console/console"
	"github.com/capitalone/checks-out-console/envvars"
	"github.com/capitalone/checks-out-console/model"
	"github.com/capitalone/checks-out-console/remote"
	"github.com/capitalone/checks-out-console/remote/checksout"
	"github.com/capitalone/checks-out-console/session"
	"github.com/capitalone/checks-out-console/snapshot"
	"github.com/capitalone/checks-out-console/team"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// workspace connects the view controller to the configured server.
type workspace struct {
	token  string
	client *checksout.Client
	source snapshot.Source
	ctrl   *console.Controller

	session *session.Session
	teams   *team.Directory
}

func connect(ctx context.Context) (*workspace, error) {
	if err := envvars.Validate(); err != nil {
		return nil, err
	}
	env := envvars.Env
	setLogLevel(env.Monitor.LogLevel)

	conf := checksout.Config{
		URL:     env.Server.Url,
		Token:   env.Server.Token,
		Csrf:    env.Server.Csrf,
		Timeout: env.Server.Timeout,
	}

	var source snapshot.Source
	if env.Snapshot.File != "" {
		file := &snapshot.File{Path: env.Snapshot.File}
		snap, err := file.Load(ctx)
		if err != nil {
			return nil, err
		}
		sess, err := session.New(snap)
		if err != nil {
			return nil, err
		}
		if conf.Csrf == "" {
			conf.Csrf = sess.Csrf()
		}
		source = file
	}

	client := checksout.New(conf)
	if source == nil {
		cached := remote.NewCached(client, cache.NewTTL(env.Cache.CacheTTL), conf.Token)
		source = &snapshot.Remote{Fetcher: cached, Csrf: conf.Csrf}
	}

	if err := remote.CheckVersion(ctx, client, env.Server.MinVersion); err != nil {
		return nil, err
	}

	return &workspace{
		token:  conf.Token,
		client: client,
		source: source,
		ctrl:   console.New(client),
	}, nil
}

// open starts a view session for org from a fresh snapshot.
func (w *workspace) open(ctx context.Context, org string) error {
	snap, err := w.source.Load(ctx)
	if err != nil {
		return err
	}
	sess, err := session.New(snap)
	if err != nil {
		return err
	}
	if _, err := session.ParseToken(w.token); err != nil {
		log.Warnf("Unable to inspect the API token. %s", err)
	} else if err := sess.Verify(w.token); err != nil {
		return errors.Wrap(err, "Verifying the API token")
	}
	w.session = sess
	w.teams = team.New(sess.User(), snap.Teams)
	w.ctrl.Init(w.session, w.teams, org)
	return nil
}

// load opens a view session for org and fetches the repositories.
func (w *workspace) load(ctx context.Context, org string) error {
	if err := w.open(ctx, org); err != nil {
		return err
	}
	return w.ctrl.Load(ctx)
}

// find resolves an owner/name pair or repository URL in the loaded list.
func (w *workspace) find(arg string) (*model.Repo, error) {
	owner, name, err := model.ParseSlug(arg)
	if err != nil {
		return nil, err
	}
	repo, ok := w.ctrl.State().Find(owner + "/" + name)
	if !ok {
		return nil, errors.Errorf("Repository %s/%s is not visible to %s", owner, name, w.session.User().Login)
	}
	return repo, nil
}
