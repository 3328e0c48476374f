/*
Copyright 2026 GDCF Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package httpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/client/httpclient"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/request"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *httpclient.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return httpclient.New(httpclient.Config{
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
	})
}

func TestMakeLevelDecodesFoundLevel(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/level", r.URL.Path)
		require.Equal(t, "1", r.URL.Query().Get("level_id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"found": true,
			"result": map[string]any{
				"level_id":          1,
				"name":              "Bloodbath",
				"creator_id":        42,
				"difficulty_rating": "7",
				"length":            "3",
				"featured":          "-1",
				"gd_version":        21,
			},
		})
	})

	resp, err := c.MakeLevel(context.Background(), request.LevelRequest{LevelID: 1}).Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bloodbath", resp.Result.Name)
	require.Equal(t, uint64(42), resp.Result.Creator)
}

func TestMakeLevelReturnsAPINoResultWhenNotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"found": false})
	})

	_, err := c.MakeLevel(context.Background(), request.LevelRequest{LevelID: 404}).Wait(context.Background())
	require.Error(t, err)
	require.True(t, gdcferr.IsNoResult(err))
}

func TestMakeLevelPropagatesUnexpectedStatus(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := c.MakeLevel(context.Background(), request.LevelRequest{LevelID: 1}).Wait(context.Background())
	require.Error(t, err)
	require.True(t, gdcferr.IsAPIError(err))
}

func TestMakeUserDecodesFoundUser(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "55", r.URL.Query().Get("account_id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"found": true,
			"result": map[string]any{
				"user_id":    42,
				"account_id": 55,
				"name":       "Hinds",
				"stars":      5000,
			},
		})
	})

	resp, err := c.MakeUser(context.Background(), request.UserRequest{AccountID: 55}).Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Hinds", resp.Result.Name)
	require.Equal(t, uint32(5000), resp.Result.Stars)
}

func TestMakeLevelsDecodesPageAndSecondaries(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/levels", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{
				{
					"level_id":          10,
					"name":              "Clutterfunk",
					"creator_id":        7,
					"difficulty_rating": "6",
					"length":            "2",
					"featured":          "0",
					"gd_version":        20,
				},
			},
			"secondaries": []map[string]any{
				{
					"kind":    "creator",
					"creator": map[string]any{"user_id": 7, "name": "Waterflame"},
				},
			},
		})
	})

	resp, err := c.MakeLevels(context.Background(), request.LevelsRequest{}).Wait(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Result, 1)
	require.Equal(t, "Clutterfunk", resp.Result[0].Name)
	require.Len(t, resp.Secondaries, 1)
	require.Equal(t, "Waterflame", resp.Secondaries[0].Creator.Name)
}
