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
package cache

import (
	"time"

	"github.com/koding/cache"
)

type Cache interface {
	Get(string) (interface{}, error)
	Set(string, interface{}) error
}

// NewTTL returns an in-memory cache with the specified
// ttl expiration period. A non-positive ttl disables caching.
func NewTTL(t time.Duration) Cache {
	if t <= 0 {
		return noop{}
	}
	return cache.NewMemoryWithTTL(t)
}

type noop struct{}

func (noop) Get(string) (interface{}, error) {
	return nil, cache.ErrNotFound
}

func (noop) Set(string, interface{}) error {
	return nil
}
