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
package snapshot

import (
	"errors"
	"fmt"

	"github.com/capitalone/checks-out-console/model"
	"github.com/capitalone/checks-out-console/set"

	multierror "github.com/mspiegel/go-multierror"
)

// Validate checks the snapshot identifies a user and lists each
// organization at most once.
func Validate(snap *model.Snapshot) error {
	var errs error
	if snap.User == nil {
		return errors.New("Invalid snapshot. Missing user section.")
	}
	if snap.User.Login == "" {
		errs = multierror.Append(errs, errors.New("Invalid snapshot. User has no login."))
	}
	var logins []string
	for i, team := range snap.Teams {
		if team == nil || team.Login == "" {
			err := fmt.Errorf("Invalid snapshot. Team %d has no login.", i)
			errs = multierror.Append(errs, err)
			continue
		}
		if team.Login == snap.User.Login {
			err := fmt.Errorf("The team %s is the personal account of the user", team.Login)
			errs = multierror.Append(errs, err)
		}
		logins = append(logins, team.Login)
	}
	for _, dup := range set.Duplicates(logins...).Keys() {
		err := fmt.Errorf("The team %s is listed more than once", dup)
		errs = multierror.Append(errs, err)
	}
	return errs
}
