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
	"io/ioutil"
	"strings"
	"testing"

	"github.com/capitalone/checks-out-console/envvars"
	"github.com/capitalone/checks-out-console/remote/mock"
	"github.com/capitalone/checks-out-console/usage"

	"github.com/fatih/color"
	"github.com/franela/goblin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestShell(t *testing.T) {
	logrus.SetOutput(ioutil.Discard)
	color.NoColor = true
	saved := envvars.Env
	defer func() { envvars.Env = saved }()

	g := goblin.Goblin(t)
	g.Describe("console shell", func() {

		var s *mock.Server

		g.BeforeEach(func() {
			s = newServer()
		})

		g.AfterEach(func() {
			s.Close()
		})

		g.It("Should list the repositories of the selected organization", func() {
			out, err := execute(script("ls", "org drone", "ls", "quit"), "shell")
			require.NoError(t, err)
			assert.Contains(t, out, "alice/r1")
			assert.Contains(t, out, "drone/r3")
			assert.NotContains(t, out, "bob/r2")
		})

		g.It("Should not reload when the organization changes", func() {
			_, err := execute(script("org drone", "org alice", "quit"), "shell")
			require.NoError(t, err)
			lists := 0
			for _, req := range s.Requests() {
				if req.Path == "/api/user/repos" {
					lists++
				}
			}
			assert.Equal(t, 1, lists)
		})

		g.It("Should report an unknown organization", func() {
			out, err := execute(script("org nope", "show", "ls"), "shell")
			require.NoError(t, err)
			assert.Contains(t, out, "Organization nope not found")
			assert.Contains(t, out, "(not found)")
			assert.Contains(t, out, "No organization selected")
		})

		g.It("Should activate and deactivate in the background", func() {
			out, err := execute(script("activate alice/r1", "delete bob/r2", "wait", "ls all", "quit"), "shell")
			require.NoError(t, err)
			assert.Contains(t, out, "activate alice/r1: ok")
			assert.Contains(t, out, "delete bob/r2: ok")

			r1, _ := s.Repo("alice", "r1")
			assert.True(t, r1.IsActive())
			r2, _ := s.Repo("bob", "r2")
			assert.False(t, r2.IsActive())
		})

		g.It("Should show the server error", func() {
			s.Fail("POST", "/api/repos/alice/r1", 409, "Unable to activate repository alice/r1 because it is already active.")
			out, err := execute(script("activate alice/r1", "wait", "show"), "shell")
			require.NoError(t, err)
			assert.Contains(t, out, "error: 409 Unable to activate repository alice/r1")
		})

		g.It("Should select and close the editor", func() {
			out, err := execute(script("edit bob/r2", "show", "close", "show"), "shell")
			require.NoError(t, err)
			assert.Equal(t, 1, strings.Count(out, "bob/r2"))
		})

		g.It("Should open a new session", func() {
			out, err := execute(script("open drone", "ls", "show"), "shell", "alice")
			require.NoError(t, err)
			assert.Contains(t, out, "drone/r3")
		})

		g.It("Should show statistics", func() {
			usage.Reset()
			out, err := execute(script("activate alice/r1", "wait", "stats"), "shell")
			require.NoError(t, err)
			assert.Contains(t, out, "alice bob drone")
			assert.Contains(t, out, "requests activate")
			assert.Contains(t, out, "requests list")
		})

		g.It("Should show a repository and its server metadata", func() {
			out, err := execute(script("show alice/r1", "show bob/r2 /hooks/pull_request", "show bob/r2 /hooks/push"), "shell")
			require.NoError(t, err)
			assert.Contains(t, out, "alice/r1")
			assert.Contains(t, out, "/hooks/pull_request")
			assert.Contains(t, out, "true")
			assert.Contains(t, out, "Repository bob/r2 has no value at /hooks/push")
		})

		g.It("Should drop the metadata id of a deactivated repository", func() {
			out, err := execute(script("delete bob/r2", "wait", "show bob/r2 /id", "show bob/r2 /hooks/pull_request"), "shell")
			require.NoError(t, err)
			assert.Contains(t, out, "Repository bob/r2 has no value at /id")
			assert.Contains(t, out, "/hooks/pull_request")
		})

		g.It("Should reject unknown commands", func() {
			out, err := execute(script("bogus", "activate", "edit carol/r9"), "shell")
			require.NoError(t, err)
			assert.Contains(t, out, "Unknown command bogus")
			assert.Contains(t, out, "usage:")
			assert.Contains(t, out, "carol/r9 is not visible")
		})
	})
}
