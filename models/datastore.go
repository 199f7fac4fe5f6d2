// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Datastore API method names.
const (
	MethodDatastoreMeta = "datastoreMeta"
	MethodDatastoreGet  = "datastoreGet"
	MethodDatastorePut  = "datastorePut"
)

// Session carries the opaque key that authenticates datastore requests.
type Session struct {
	AuthKey string `json:"authKey"`
}

// DatastoreCmd is one of [DatastoreCmdMeta], [DatastoreCmdGet] or
// [DatastoreCmdPut].
type DatastoreCmd interface {
	// Method returns the API method the command is sent to.
	Method() string
	apply(req *DatastoreRequest)
}

// DatastoreCmdMeta asks for the modification time of every item in the
// collection.
type DatastoreCmdMeta struct{}

// DatastoreCmdGet asks for full items. When All is set, IDs is ignored and
// the whole collection is returned.
type DatastoreCmdGet struct {
	IDs []string
	All bool
}

// DatastoreCmdPut upserts the given items.
type DatastoreCmdPut struct {
	Changes []LibItem
}

func (DatastoreCmdMeta) Method() string { return MethodDatastoreMeta }
func (DatastoreCmdGet) Method() string  { return MethodDatastoreGet }
func (DatastoreCmdPut) Method() string  { return MethodDatastorePut }

func (DatastoreCmdMeta) apply(req *DatastoreRequest) {}

func (c DatastoreCmdGet) apply(req *DatastoreRequest) {
	req.IDs = c.IDs
	if req.IDs == nil {
		req.IDs = []string{}
	}
	req.All = c.All
}

func (c DatastoreCmdPut) apply(req *DatastoreRequest) {
	req.Changes = c.Changes
	if req.Changes == nil {
		req.Changes = []LibItem{}
	}
}

// DatastoreRequest is the body of a datastore API call: the authentication
// key and collection shared by every command plus the command's own fields.
type DatastoreRequest struct {
	Method     string    `json:"-"`
	AuthKey    string    `json:"authKey"`
	Collection string    `json:"collection"`
	IDs        []string  `json:"ids,omitempty"`
	All        bool      `json:"all,omitempty"`
	Changes    []LibItem `json:"changes,omitempty"`
}

// MarshalJSON writes only the fields that belong to the request's method.
func (r DatastoreRequest) MarshalJSON() ([]byte, error) {
	switch r.Method {
	case MethodDatastoreGet:
		return json.Marshal(struct {
			AuthKey    string   `json:"authKey"`
			Collection string   `json:"collection"`
			IDs        []string `json:"ids"`
			All        bool     `json:"all"`
		}{r.AuthKey, r.Collection, r.IDs, r.All})
	case MethodDatastorePut:
		return json.Marshal(struct {
			AuthKey    string    `json:"authKey"`
			Collection string    `json:"collection"`
			Changes    []LibItem `json:"changes"`
		}{r.AuthKey, r.Collection, r.Changes})
	default:
		return json.Marshal(struct {
			AuthKey    string `json:"authKey"`
			Collection string `json:"collection"`
		}{r.AuthKey, r.Collection})
	}
}

// DatastoreReqBuilder stamps the session key and collection on every
// command built from it.
type DatastoreReqBuilder struct {
	AuthKey    string
	Collection string
}

// WithCmd builds the request for cmd.
func (b DatastoreReqBuilder) WithCmd(cmd DatastoreCmd) DatastoreRequest {
	req := DatastoreRequest{
		Method:     cmd.Method(),
		AuthKey:    b.AuthKey,
		Collection: b.Collection,
	}
	cmd.apply(&req)
	return req
}

// LibMTime is one entry of the datastoreMeta result, encoded on the wire as
// a two-element array: ["<id>", <unix milliseconds>].
type LibMTime struct {
	ID    string
	MTime time.Time
}

// UnmarshalJSON decodes the ["id", ms] pair.
func (m *LibMTime) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("mtime entry: expected 2 elements, got %d", len(pair))
	}

	var id string
	if err := json.Unmarshal(pair[0], &id); err != nil {
		return fmt.Errorf("mtime entry id: %w", err)
	}
	var ms int64
	if err := json.Unmarshal(pair[1], &ms); err != nil {
		return fmt.Errorf("mtime entry timestamp: %w", err)
	}
	if id == "" {
		return errors.New("mtime entry: empty id")
	}

	m.ID = id
	m.MTime = time.UnixMilli(ms).UTC()
	return nil
}

// MarshalJSON encodes the ["id", ms] pair.
func (m LibMTime) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{m.ID, m.MTime.UnixMilli()})
}

// APIResult is the envelope of every datastore API response. Exactly one of
// Result and Error is set.
type APIResult[T any] struct {
	Result *T            `json:"result,omitempty"`
	Error  *APIErrorBody `json:"error,omitempty"`
}

// APIErrorBody is the error half of [APIResult].
type APIErrorBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// SuccessResponse is the result of datastorePut.
type SuccessResponse struct {
	Success bool `json:"success"`
}
