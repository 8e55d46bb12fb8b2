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

import "testing"

func TestParseSlug(t *testing.T) {
	data := []struct {
		in    string
		owner string
		name  string
	}{
		{"alice/r1", "alice", "r1"},
		{" alice/r1 ", "alice", "r1"},
		{"https://github.com/octocat/hello-world", "octocat", "hello-world"},
		{"https://github.com/octocat/hello-world.git", "octocat", "hello-world"},
		{"https://github.example.com/octocat/hello-world/blob/master/.checks-out", "octocat", "hello-world"},
	}
	for _, d := range data {
		owner, name, err := ParseSlug(d.in)
		if err != nil {
			t.Errorf("Unexpected error parsing %s: %s", d.in, err)
			continue
		}
		if owner != d.owner || name != d.name {
			t.Errorf("Parsing %s expected %s/%s, got %s/%s", d.in, d.owner, d.name, owner, name)
		}
	}
	for _, bad := range []string{"", "alice", "/r1", "alice/", "https://github.com/alice"} {
		if _, _, err := ParseSlug(bad); err == nil {
			t.Errorf("Expected error parsing %q", bad)
		}
	}
}
