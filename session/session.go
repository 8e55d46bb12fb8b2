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

// Package session holds the identity of the user running the console.
package session

import (
	"errors"

	"github.com/capitalone/checks-out-console/model"
)

// Session is the read-only session context built from the startup
// snapshot.
type Session struct {
	user model.User
	csrf string
}

// New creates the session context of the snapshot user.
func New(snap *model.Snapshot) (*Session, error) {
	if snap == nil || snap.User == nil {
		return nil, errors.New("Snapshot does not identify a user")
	}
	if snap.User.Login == "" {
		return nil, errors.New("Snapshot user has no login")
	}
	return &Session{user: *snap.User, csrf: snap.Csrf}, nil
}

// User returns a copy of the authenticated user.
func (s *Session) User() *model.User {
	u := s.user
	return &u
}

// Csrf returns the CSRF token of the session, if any.
func (s *Session) Csrf() string {
	return s.csrf
}
