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
package set

import "sort"

// Set is a collection of unique strings
type Set map[string]bool

// Empty creates an empty set
func Empty() Set {
	return make(map[string]bool)
}

// New creates a new set with the provided values
func New(keys ...string) Set {
	set := Empty()
	for _, k := range keys {
		set.Add(k)
	}
	return set
}

// Add inserts an element into the set
func (s Set) Add(key string) {
	s[key] = true
}

// Contains tests whether an element is a member of the set
func (s Set) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the elements in ascending order.
func (s Set) Keys() []string {
	if len(s) == 0 {
		return nil
	}
	lst := make([]string, 0, len(s))
	for k := range s {
		lst = append(lst, k)
	}
	sort.Strings(lst)
	return lst
}

// Print joins the sorted elements with sep.
func (s Set) Print(sep string) string {
	res := ""
	keys := s.Keys()
	for i, k := range keys {
		res += k
		if i < len(keys)-1 {
			res += sep
		}
	}
	return res
}

// Duplicates returns the values that occur more than once.
func Duplicates(values ...string) Set {
	seen := Empty()
	dup := Empty()
	for _, v := range values {
		if seen.Contains(v) {
			dup.Add(v)
		}
		seen.Add(v)
	}
	return dup
}
