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
package version

import (
	"fmt"
	"runtime"
)

// Version is overwritten at build time with -ldflags "-X".
var Version = "0.1.0-dev"

// UserAgent is sent with every request to the checks-out server.
func UserAgent() string {
	return fmt.Sprintf("checks-out-console/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}
