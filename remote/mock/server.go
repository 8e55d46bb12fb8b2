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

// Package mock provides an in-memory checks-out server for tests.
package mock

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/capitalone/checks-out-console/model"

	"github.com/gin-gonic/gin"
)

// Request is a request received by the server.
type Request struct {
	Method string
	Path   string
	Body   string
	Header http.Header
}

type failure struct {
	status int
	body   string
}

// Server emulates the subset of the checks-out API used by the console.
type Server struct {
	*httptest.Server

	Token   string
	Csrf    string
	Version string

	mu       sync.Mutex
	user     *model.User
	orgs     []*model.Team
	repos    []*model.Repo
	nextID   int64
	failures map[string]failure
	requests []Request
}

// New starts a server for user. Repositories are listed in the order given.
func New(user *model.User, orgs []*model.Team, repos ...*model.Repo) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		user:     user,
		orgs:     orgs,
		nextID:   1,
		failures: map[string]failure{},
	}
	for _, r := range repos {
		cp := *r
		s.repos = append(s.repos, &cp)
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	s.Server = httptest.NewServer(s.handler())
	return s
}

// Fail makes every request matching method and path answer with status.
func (s *Server) Fail(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, body: body}
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Repo returns the server side record of owner/name.
func (s *Server) Repo(owner, name string) (*model.Repo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(owner, name)
	if i < 0 {
		return nil, false
	}
	r := *s.repos[i]
	return &r, true
}

func (s *Server) handler() http.Handler {
	e := gin.New()
	e.Use(s.record)
	e.Use(s.authorize)

	e.GET("/api/user", s.getUser)
	e.GET("/api/user/orgs", s.getOrgs)
	e.GET("/api/user/repos", s.getRepos)
	e.POST("/api/repos/:owner/:repo", s.postRepo)
	e.DELETE("/api/repos/:owner/:repo", s.deleteRepo)
	e.GET("/version", s.getVersion)
	return e
}

func (s *Server) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Body:   string(body),
		Header: c.Request.Header.Clone(),
	})
	f, ok := s.failures[c.Request.Method+" "+c.Request.URL.Path]
	s.mu.Unlock()
	if ok {
		c.String(f.status, f.body)
		c.Abort()
	}
}

func (s *Server) authorize(c *gin.Context) {
	if s.Token != "" && c.Request.Header.Get("Authorization") != "Bearer "+s.Token {
		c.String(http.StatusUnauthorized,
			"You must be logged in and authorized to use this endpoint")
		c.Abort()
		return
	}
	if s.Csrf != "" && c.Request.Header.Get("X-CSRF-TOKEN") != s.Csrf {
		c.String(http.StatusUnauthorized,
			"You must be logged in and authorized to use this endpoint")
		c.Abort()
	}
}

func (s *Server) getUser(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.user)
}

// getOrgs appends the personal account like the real server does.
func (s *Server) getOrgs(c *gin.Context) {
	orgs := append([]*model.Team{}, s.orgs...)
	orgs = append(orgs, model.PersonalTeam(s.user))
	c.IndentedJSON(http.StatusOK, orgs)
}

func (s *Server) getRepos(c *gin.Context) {
	s.mu.Lock()
	repos := make([]*model.Repo, len(s.repos))
	for i, r := range s.repos {
		cp := *r
		repos[i] = &cp
	}
	s.mu.Unlock()
	c.IndentedJSON(http.StatusOK, repos)
}

func (s *Server) postRepo(c *gin.Context) {
	var (
		owner = c.Param("owner")
		name  = c.Param("repo")
	)
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(owner, name)
	switch {
	case i < 0:
		c.String(http.StatusNotFound, "Looking for repository %s on Github. Not Found", name)
	case s.repos[i].ID != 0:
		c.String(http.StatusConflict,
			"Unable to activate repository %s/%s because it is already active.", owner, name)
	default:
		r := s.repos[i]
		r.ID = s.nextID
		r.Active = true
		r.Slug = fmt.Sprintf("%s/%s", owner, name)
		s.nextID++
		cp := *r
		c.IndentedJSON(http.StatusOK, &cp)
	}
}

func (s *Server) deleteRepo(c *gin.Context) {
	var (
		owner = c.Param("owner")
		name  = c.Param("repo")
	)
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.find(owner, name)
	if i < 0 || s.repos[i].ID == 0 {
		c.String(http.StatusNotFound, "Getting repository %s. sql: no rows in result set", name)
		return
	}
	s.repos[i].ID = 0
	s.repos[i].Active = false
	c.String(http.StatusOK, "")
}

func (s *Server) getVersion(c *gin.Context) {
	if s.Version == "" {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	c.String(http.StatusOK, s.Version)
}

func (s *Server) find(owner, name string) int {
	for i, r := range s.repos {
		if strings.EqualFold(r.Owner, owner) && strings.EqualFold(r.Name, name) {
			return i
		}
	}
	return -1
}
