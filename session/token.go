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
package session

import (
	"fmt"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// Token kinds issued by the checks-out server.
const (
	UserToken = "user"
	SessToken = "sess"
	HookToken = "hook"
	CsrfToken = "csrf"
)

// Token is the payload of a checks-out token.
type Token struct {
	Kind string
	Text string
}

// ParseToken decodes the claims of a checks-out token. The signature is
// not verified; only the server holds the signing secret.
func ParseToken(raw string) (*Token, error) {
	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(raw, claims)
	if err != nil {
		return nil, errors.Wrap(err, "Parsing token")
	}
	t := new(Token)
	t.Kind, _ = claims["type"].(string)
	t.Text, _ = claims["text"].(string)
	if t.Kind == "" || t.Text == "" {
		return nil, errors.New("Parsing token. Missing type or text claim")
	}
	return t, nil
}

// Verify checks that raw is an API token issued to the session user.
func (s *Session) Verify(raw string) error {
	t, err := ParseToken(raw)
	if err != nil {
		return err
	}
	if t.Kind != UserToken && t.Kind != SessToken {
		return fmt.Errorf("Token of kind %s cannot be used to sign in", t.Kind)
	}
	if t.Text != s.user.Login {
		return fmt.Errorf("Token belongs to %s, not %s", t.Text, s.user.Login)
	}
	return nil
}
