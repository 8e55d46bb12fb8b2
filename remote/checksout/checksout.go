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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/capitalone/checks-out-console/exterror"
	"github.com/capitalone/checks-out-console/model"

	"golang.org/x/oauth2"
)

// maxPayload bounds the error body kept in a RemoteError.
const maxPayload = 64 * 1024

// Config describes how to reach a checks-out server.
type Config struct {
	URL     string
	Token   string
	Csrf    string
	Timeout time.Duration
}

// Client talks to the checks-out REST API.
type Client struct {
	url    string
	client *http.Client
}

// New creates a client authenticated with the API token of conf.
func New(conf Config) *Client {
	return &Client{
		url:    strings.TrimRight(conf.URL, "/"),
		client: createClient(conf.Token, conf.Csrf, conf.Timeout),
	}
}

func createClient(accessToken, csrf string, timeout time.Duration) *http.Client {
	client := new(http.Client)
	if accessToken != "" {
		token := oauth2.Token{AccessToken: accessToken}
		source := oauth2.StaticTokenSource(&token)
		client = oauth2.NewClient(context.Background(), source)
	}
	client.Transport = &LogTransport{
		Csrf:      csrf,
		Transport: client.Transport}
	client.Timeout = timeout
	return client
}

func (c *Client) GetUser(ctx context.Context) (*model.User, error) {
	user := new(model.User)
	err := c.do(ctx, http.MethodGet, "/api/user", nil, user)
	if err != nil {
		return nil, exterror.Append(err, "Getting user")
	}
	return user, nil
}

func (c *Client) GetOrgs(ctx context.Context) ([]*model.Team, error) {
	var orgs []*model.Team
	err := c.do(ctx, http.MethodGet, "/api/user/orgs", nil, &orgs)
	if err != nil {
		return nil, exterror.Append(err, "Getting organizations")
	}
	return orgs, nil
}

func (c *Client) GetVersion(ctx context.Context) (string, error) {
	data, err := c.raw(ctx, http.MethodGet, "/version", nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// List gets the repositories of the user across all organizations.
func (c *Client) List(ctx context.Context) ([]*model.Repo, error) {
	var repos []*model.Repo
	err := c.do(ctx, http.MethodGet, "/api/user/repos", nil, &repos)
	if err != nil {
		return nil, err
	}
	return repos, nil
}

// Activate posts opts to the repository endpoint. The repository is
// addressed by owner and name only.
func (c *Client) Activate(ctx context.Context, repo *model.Repo, opts model.RepoOptions) (*model.Repo, error) {
	if opts == nil {
		opts = model.RepoOptions{}
	}
	out := new(model.Repo)
	err := c.do(ctx, http.MethodPost, repoPath(repo), opts, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate deletes the repository, addressed by owner and name only.
func (c *Client) Deactivate(ctx context.Context, repo *model.Repo) error {
	_, err := c.raw(ctx, http.MethodDelete, repoPath(repo), nil)
	return err
}

func repoPath(repo *model.Repo) string {
	return fmt.Sprintf("/api/repos/%s/%s",
		url.PathEscape(repo.Owner),
		url.PathEscape(repo.Name),
	)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	data, err := c.raw(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return exterror.RemoteError{
			Status:  http.StatusBadGateway,
			Payload: data,
			Err:     fmt.Errorf("Decoding response of %s %s. %s", method, path, err),
		}
	}
	return nil
}

// raw performs the request and returns the response body. Transport
// failures yield a NetworkError, failure statuses a RemoteError.
func (c *Client) raw(ctx context.Context, method, path string, in interface{}) ([]byte, error) {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return nil, exterror.RemoteError{
				Status: http.StatusInternalServerError,
				Err:    fmt.Errorf("Encoding request of %s %s. %s", method, path, err),
			}
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return nil, exterror.Network(err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, exterror.Network(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
		return nil, exterror.Create(resp.StatusCode, data)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exterror.Network(err)
	}
	return data, nil
}
