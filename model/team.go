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

// Team is an organization the user can act within. The user's personal
// account is represented as a Team as well.
type Team struct {
	Login   string `json:"login"   toml:"login"`
	Avatar  string `json:"avatar"  toml:"avatar"`
	Enabled bool   `json:"enabled" toml:"enabled"`
}

// PersonalTeam returns the team representing the user's own account.
func PersonalTeam(u *User) *Team {
	return &Team{
		Login:  u.Login,
		Avatar: u.Avatar,
	}
}
