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
package exterror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/mspiegel/go-multierror"
	log "github.com/sirupsen/logrus"
)

// RemoteError is a failure status returned by the checks-out server. The
// response body is kept verbatim in Payload.
type RemoteError struct {
	Status  int
	Payload []byte
	Err     error
}

func (e RemoteError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if msg := strings.TrimSpace(string(e.Payload)); len(msg) != 0 {
		return msg
	}
	return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
}

// NetworkError is a transport failure. No response was received.
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return e.Err.Error()
}

func Create(status int, payload []byte) RemoteError {
	return RemoteError{Status: status, Payload: payload}
}

func Network(err error) NetworkError {
	return NetworkError{Err: err}
}

// Append prefixes the error message with head and keeps the error kind.
func Append(prev error, head string) error {
	prevMsg := prev.Error()
	if len(prevMsg) == 0 {
		return errors.New(head)
	}
	newMsg := fmt.Errorf("%s. %s", head, prevMsg)
	switch v := prev.(type) {
	case RemoteError:
		return RemoteError{Status: v.Status, Payload: v.Payload, Err: newMsg}
	case NetworkError:
		return NetworkError{Err: newMsg}
	case *multierror.Error:
		// flatten the multierror to retrieve the response status
		ext := Convert(v)
		return RemoteError{Status: ext.Status, Err: newMsg}
	default:
		return newMsg
	}
}

// Convert maps any error onto a RemoteError so that callers can branch on
// the status. Network failures map to 503.
func Convert(err error) RemoteError {
	switch v := err.(type) {
	case RemoteError:
		log.Debugf("No conversion necessary for RemoteError %s", err.Error())
		return v
	case NetworkError:
		return RemoteError{Status: http.StatusServiceUnavailable, Err: v}
	case *multierror.Error:
		log.Debugf("Multierror conversion for %s", err.Error())
		return convertMultiError(v)
	default:
		log.Debugf("Automatic promotion to 500 for %s", reflect.TypeOf(err).String())
		return RemoteError{Status: http.StatusInternalServerError, Err: err}
	}
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	_, ok := err.(NetworkError)
	return ok
}

func allRemoteError(errs *multierror.Error) bool {
	if len(errs.Errors) == 0 {
		return false
	}
	for _, e := range errs.Errors {
		if _, ok := e.(RemoteError); !ok {
			return false
		}
	}
	return true
}

func allEqualStatus(errs *multierror.Error) bool {
	resp := errs.Errors[0].(RemoteError).Status
	for _, e := range errs.Errors {
		if resp != e.(RemoteError).Status {
			return false
		}
	}
	return true
}

func allRangeStatus(errs *multierror.Error, low int, high int) bool {
	for _, e := range errs.Errors {
		status := e.(RemoteError).Status
		if (status < low) || (status >= high) {
			return false
		}
	}
	return true
}

func convertMultiError(errs *multierror.Error) RemoteError {
	status := http.StatusInternalServerError
	if !allRemoteError(errs) {
		return RemoteError{Status: status, Err: errs}
	}
	if allEqualStatus(errs) {
		status = errs.Errors[0].(RemoteError).Status
	} else if allRangeStatus(errs, 400, 500) {
		status = http.StatusBadRequest
	}
	return RemoteError{Status: status, Err: errs}
}
