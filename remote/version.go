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
	"net/http"

	"github.com/capitalone/checks-out-console/exterror"
	"github.com/capitalone/checks-out-console/usage"

	"github.com/hashicorp/go-version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// CheckVersion verifies that the server version satisfies constraint.
// Servers that do not expose their version are accepted with a warning.
func CheckVersion(ctx context.Context, r Remote, constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := version.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, "Parsing version constraint %s", constraint)
	}
	raw, err := r.GetVersion(usage.AddEventToContext(ctx, "version"))
	if err != nil {
		if ext, ok := err.(exterror.RemoteError); ok && ext.Status == http.StatusNotFound {
			log.Warnf("Server does not report its version. Skipping check of %s", constraint)
			return nil
		}
		return exterror.Append(err, "Getting server version")
	}
	v, err := version.NewVersion(raw)
	if err != nil {
		return errors.Wrapf(err, "Parsing server version %s", raw)
	}
	if !c.Check(v) {
		return fmt.Errorf("Server version %s does not satisfy %s", v, constraint)
	}
	log.Debugf("Server version %s satisfies %s", v, constraint)
	return nil
}
