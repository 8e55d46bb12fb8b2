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
	"encoding/json"
	"fmt"

	"github.com/capitalone/checks-out-console/model"

	"github.com/hjson/hjson-go"
	"github.com/pelletier/go-toml"
)

// Parse decodes a snapshot in one of the formats json, hjson or toml and
// validates it.
func Parse(data []byte, format string) (*model.Snapshot, error) {
	var snap *model.Snapshot
	var err error
	switch format {
	case "json":
		snap, err = parseJSON(data)
	case "hjson":
		snap, err = parseHJSON(data)
	case "toml":
		snap, err = parseToml(data)
	default:
		return nil, fmt.Errorf("%s is not one of the snapshot formats json, hjson, toml", format)
	}
	if err != nil {
		return nil, err
	}
	if snap.Teams == nil {
		snap.Teams = []*model.Team{}
	}
	if err = Validate(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func parseJSON(data []byte) (*model.Snapshot, error) {
	snap := new(model.Snapshot)
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func parseHJSON(data []byte) (*model.Snapshot, error) {
	var raw interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return fromGeneric(raw)
}

func parseToml(data []byte) (*model.Snapshot, error) {
	tree, err := toml.Load(string(data))
	if err != nil {
		return nil, err
	}
	return fromGeneric(tree.ToMap())
}

// fromGeneric decodes a document already parsed into maps and slices.
func fromGeneric(raw interface{}) (*model.Snapshot, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return parseJSON(data)
}
