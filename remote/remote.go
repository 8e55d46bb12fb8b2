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

	"github.com/capitalone/checks-out-console/model"
)

// Remote is the checks-out server as seen by the console.
type Remote interface {
	// GetUser gets the authenticated user.
	GetUser(context.Context) (*model.User, error)

	// GetOrgs gets the organizations the user is a member of.
	GetOrgs(context.Context) ([]*model.Team, error)

	// GetVersion gets the version of the server.
	GetVersion(context.Context) (string, error)

	// List gets all repositories visible to the user.
	List(context.Context) ([]*model.Repo, error)

	// Activate registers the repository with the server and returns
	// the canonical record.
	Activate(context.Context, *model.Repo, model.RepoOptions) (*model.Repo, error)

	// Deactivate removes the repository from the server.
	Deactivate(context.Context, *model.Repo) error
}
