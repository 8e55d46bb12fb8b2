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
package usage

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

type usageType int

const (
	event usageType = iota
)

// AddEventToContext tags requests made with c as part of operation e.
func AddEventToContext(c context.Context, e string) context.Context {
	return context.WithValue(c, event, e)
}

func GetEventFromContext(c context.Context) string {
	e, ok := c.Value(event).(string)
	if !ok {
		return ""
	}
	return e
}

var lock = sync.Mutex{}

// Usage counts server requests per operation.
type Usage struct {
	RemoteReq  map[string]int `json:"remote"`
	RemoteFail map[string]int `json:"remote_fail"`
}

var data Usage

func init() {
	data = createUsage()
}

func createUsage() Usage {
	return Usage{
		RemoteReq:  make(map[string]int),
		RemoteFail: make(map[string]int),
	}
}

// RecordRemoteRequest counts a request of operation e. Requests that
// failed or were answered with an error status are counted as failures.
func RecordRemoteRequest(e string, failed bool) {
	if e == "" {
		e = "other"
	}
	lock.Lock()
	data.RemoteReq[e]++
	if failed {
		data.RemoteFail[e]++
	}
	lock.Unlock()
}

func copyMap(dst, src map[string]int) {
	for k, v := range src {
		dst[k] = v
	}
}

func GetStats() Usage {
	stats := createUsage()
	lock.Lock()
	copyMap(stats.RemoteReq, data.RemoteReq)
	copyMap(stats.RemoteFail, data.RemoteFail)
	lock.Unlock()
	return stats
}

// WriteLog logs the counters at info level.
func WriteLog() {
	stats := GetStats()
	log.Info("Usage statistics for this session")
	for k, v := range stats.RemoteReq {
		log.Infof("Remote request %s : %d requests, %d failed", k, v, stats.RemoteFail[k])
	}
}

// Reset clears the counters.
func Reset() {
	lock.Lock()
	data = createUsage()
	lock.Unlock()
}
