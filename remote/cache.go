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
package remote

import (
	"context"
	"fmt"

	"github.com/capitalone/checks-out-console/cache"
	"github.com/capitalone/checks-out-console/model"
)

// Cached is a Remote whose user and organization lookups are served
// from a cache.
type Cached struct {
	Remote
	cache cache.Cache
	key   string
}

// NewCached wraps r. Entries are stored under key, which should identify
// the credentials r authenticates with.
func NewCached(r Remote, c cache.Cache, key string) *Cached {
	return &Cached{Remote: r, cache: c, key: key}
}

// GetUser returns the authenticated user from the cache.
func (c *Cached) GetUser(ctx context.Context) (*model.User, error) {
	key := fmt.Sprintf("user:%s", c.key)
	// if we fetch from the cache we can return immediately
	val, err := c.cache.Get(key)
	if err == nil {
		return val.(*model.User), nil
	}
	// else we try to grab from the remote system and
	// populate our cache.
	user, err := c.Remote.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, user)
	return user, nil
}

// GetOrgs returns the list of user organizations from the cache.
func (c *Cached) GetOrgs(ctx context.Context) ([]*model.Team, error) {
	key := fmt.Sprintf("orgs:%s", c.key)
	val, err := c.cache.Get(key)
	if err == nil {
		return val.([]*model.Team), nil
	}
	orgs, err := c.Remote.GetOrgs(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, orgs)
	return orgs, nil
}
