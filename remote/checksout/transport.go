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
package checksout

import (
	"net/http"
	"time"

	"github.com/capitalone/checks-out-console/usage"
	"github.com/capitalone/checks-out-console/version"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LogTransport decorates requests with the console headers and logs
// every exchange with the server.
type LogTransport struct {
	Csrf string
	// Transport is the underlying HTTP transport to use when making requests.
	// It will default to http.DefaultTransport if nil.
	Transport http.RoundTripper
}

// RoundTrip implements the RoundTripper interface.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// requests must not be modified in place
	req = req.Clone(req.Context())
	id := uuid.New().String()
	req.Header.Set("X-Request-ID", id)
	req.Header.Set("User-Agent", version.UserAgent())
	if t.Csrf != "" {
		req.Header.Set("X-CSRF-TOKEN", t.Csrf)
	}

	event := usage.GetEventFromContext(req.Context())
	start := time.Now()
	resp, err := t.transport().RoundTrip(req)
	usage.RecordRemoteRequest(event, err != nil || resp.StatusCode >= 400)
	entry := logrus.WithFields(logrus.Fields{
		"event":      event,
		"method":     req.Method,
		"path":       req.URL.Path,
		"latency":    time.Since(start),
		"request-id": id,
	})
	switch {
	case err != nil:
		entry.Error(err.Error())
	case resp.StatusCode >= 500:
		entry.WithField("status", resp.StatusCode).Error()
	case resp.StatusCode >= 400:
		entry.WithField("status", resp.StatusCode).Warn()
	default:
		entry.WithField("status", resp.StatusCode).Info()
	}
	return resp, err
}

func (t *LogTransport) transport() http.RoundTripper {
	if t.Transport != nil {
		return t.Transport
	}
	return http.DefaultTransport
}
