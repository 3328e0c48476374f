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

// Package httpclient is the reference ApiClient: a plain HTTP+JSON
// transport against a configurable base URL. The wire format the real
// game server speaks is a bespoke, versioned, pipe-delimited encoding;
// reproducing it faithfully is a transport-layer concern the core treats
// as entirely external (ApiClient is a collaborator interface precisely
// so that concern never leaks in here), so this reference implementation
// speaks plain JSON against a GDCF-shaped façade endpoint instead.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/model"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/task"
)

//nolint:gochecknoglobals
var tracer = otel.Tracer("github.com/gdcf/core/pkg/client/httpclient")

// Config holds the base configuration for the reference client, matching
// the teacher's own test client's Config shape (base URL, timeout, and
// toggles for request/response logging at V(1)).
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	LogRequests    bool
	LogResponses   bool
}

// Client is the reference ApiClient implementation.
type Client struct {
	baseURL string
	http    *http.Client
	config  Config
}

// New constructs a Client against the given configuration.
func New(config Config) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		http:    &http.Client{Timeout: config.RequestTimeout},
		config:  config,
	}
}

var _ client.ApiClient = (*Client)(nil)

// levelWire is the wire shape for a single level, JSON-tagged snake_case to
// match a conventional REST façade; field names otherwise mirror
// client.RawLevel/model.PartialLevel.
type levelWire struct {
	LevelID          uint64  `json:"level_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Version          uint32  `json:"version"`
	CreatorID        uint64  `json:"creator_id"`
	DifficultyRating string  `json:"difficulty_rating"`
	IsAuto           bool    `json:"is_auto"`
	IsDemon          bool    `json:"is_demon"`
	Downloads        uint32  `json:"downloads"`
	MainSongIndex    uint8   `json:"main_song_index"`
	CustomSongID     *uint64 `json:"custom_song_id"`
	GDVersion        uint8   `json:"gd_version"`
	Likes            int32   `json:"likes"`
	Length           string  `json:"length"`
	Stars            uint8   `json:"stars"`
	Featured         string  `json:"featured"`
	CopyOf           *uint64 `json:"copy_of"`
	CoinAmount       uint8   `json:"coin_amount"`
	CoinsVerified    bool    `json:"coins_verified"`
	StarsRequested   *uint8  `json:"stars_requested"`
	IsEpic           bool    `json:"is_epic"`
	ObjectAmount     uint32  `json:"object_amount"`
	LevelData        string  `json:"level_data,omitempty"`
	Password         string  `json:"password,omitempty"`
	TimeSinceUpload  string  `json:"time_since_upload,omitempty"`
	TimeSinceUpdate  string  `json:"time_since_update,omitempty"`
}

type secondaryWire struct {
	Kind    string              `json:"kind"`
	Song    *newgroundsSongWire `json:"song,omitempty"`
	Creator *creatorWire        `json:"creator,omitempty"`
	Missing *uint64             `json:"missing_id,omitempty"`
}

type creatorWire struct {
	UserID    uint64  `json:"user_id"`
	Name      string  `json:"name"`
	AccountID *uint64 `json:"account_id"`
}

type newgroundsSongWire struct {
	SongID     uint64  `json:"song_id"`
	Name       string  `json:"name"`
	ArtistID   uint64  `json:"artist_id"`
	Artist     string  `json:"artist"`
	FilesizeMB float64 `json:"filesize_mb"`
	Link       string  `json:"link"`
}

type userWire struct {
	UserID        uint64 `json:"user_id"`
	AccountID     uint64 `json:"account_id"`
	Name          string `json:"name"`
	Stars         uint32 `json:"stars"`
	Demons        uint32 `json:"demons"`
	CreatorPoints uint32 `json:"creator_points"`
	Rank          uint32 `json:"rank"`
}

type envelope[T any] struct {
	Result      T               `json:"result"`
	Secondaries []secondaryWire `json:"secondaries"`
	Found       bool            `json:"found"`
}

// MakeLevel fetches a single level by id.
func (c *Client) MakeLevel(ctx context.Context, req request.LevelRequest) *task.Task[client.Response[client.RawLevel]] {
	return task.Run(ctx, func(taskCtx context.Context) (client.Response[client.RawLevel], error) {
		var env envelope[levelWire]

		if err := c.get(taskCtx, "level", req.CancellationToken, url.Values{
			"level_id": {strconv.FormatUint(req.LevelID, 10)},
		}, &env); err != nil {
			return client.Response[client.RawLevel]{}, err
		}

		if !env.Found {
			return client.Response[client.RawLevel]{}, gdcferr.APINoResult("no such level").WithValues("level_id", req.LevelID)
		}

		decoded, err := decodeLevel(env.Result)
		if err != nil {
			return client.Response[client.RawLevel]{}, err
		}

		return client.Response[client.RawLevel]{
			Result:      decoded,
			Secondaries: decodeSecondaries(env.Secondaries),
		}, nil
	})
}

// MakeLevels fetches one page of a levels listing.
func (c *Client) MakeLevels(ctx context.Context, req request.LevelsRequest) *task.Task[client.Response[[]client.RawPartialLevel]] {
	return task.Run(ctx, func(taskCtx context.Context) (client.Response[[]client.RawPartialLevel], error) {
		values := url.Values{
			"type": {strconv.Itoa(int(req.Type))},
			"page": {strconv.FormatUint(uint64(req.Page), 10)},
		}

		if req.Search != "" {
			values.Set("search", req.Search)
		}

		if req.Filters.CustomSongID != nil {
			values.Set("custom_song_id", strconv.FormatUint(*req.Filters.CustomSongID, 10))
		}

		if req.Filters.Demon {
			values.Set("demon", "true")
		}

		if req.Filters.Rated {
			values.Set("rated", "true")
		}

		var env envelope[[]levelWire]

		if err := c.get(taskCtx, "levels", req.CancellationToken, values, &env); err != nil {
			return client.Response[[]client.RawPartialLevel]{}, err
		}

		result := make([]client.RawPartialLevel, len(env.Result))
		for i, lvl := range env.Result {
			decoded, err := decodeLevel(lvl)
			if err != nil {
				return client.Response[[]client.RawPartialLevel]{}, err
			}

			result[i] = decoded.PartialLevel
		}

		return client.Response[[]client.RawPartialLevel]{
			Result:      result,
			Secondaries: decodeSecondaries(env.Secondaries),
		}, nil
	})
}

// MakeUser fetches a single user by account id.
func (c *Client) MakeUser(ctx context.Context, req request.UserRequest) *task.Task[client.Response[model.User]] {
	return task.Run(ctx, func(taskCtx context.Context) (client.Response[model.User], error) {
		var env envelope[userWire]

		if err := c.get(taskCtx, "user", req.CancellationToken, url.Values{
			"account_id": {strconv.FormatUint(req.AccountID, 10)},
		}, &env); err != nil {
			return client.Response[model.User]{}, err
		}

		if !env.Found {
			return client.Response[model.User]{}, gdcferr.APINoResult("no such user").WithValues("account_id", req.AccountID)
		}

		user := env.Result

		return client.Response[model.User]{
			Result: model.User{
				UserID:        user.UserID,
				AccountID:     user.AccountID,
				Name:          user.Name,
				Stars:         user.Stars,
				Demons:        user.Demons,
				CreatorPoints: user.CreatorPoints,
				Rank:          user.Rank,
			},
		}, nil
	})
}

// get performs one GET request against path, decoding a JSON envelope into
// out. A 404 becomes APINoResult directly, whatever its body, for façades
// that signal absence via status code rather than a Found field; any other
// status except 200 becomes a KindAPI error.
func (c *Client) get(ctx context.Context, path string, cancellationToken uuid.UUID, values url.Values, out any) error {
	ctx, span := tracer.Start(ctx, "httpclient."+path, trace.WithAttributes(attribute.String("gdcf.path", path)))
	defer span.End()

	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, path, values.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "building request")

		return gdcferr.API("building request failed").WithError(err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if cancellationToken != uuid.Nil {
		httpReq.Header.Set("X-Cancellation-Token", cancellationToken.String())
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	logger := log.FromContext(ctx).WithValues("path", path)

	if c.config.LogRequests {
		logger.V(1).Info("http request", "url", fullURL)
	}

	start := time.Now()

	resp, err := c.http.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")

		return gdcferr.API("http request failed").WithError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)

		return gdcferr.API("reading response body failed").WithError(err)
	}

	if c.config.LogResponses {
		logger.V(1).Info("http response", "status", resp.StatusCode, "duration", time.Since(start), "body", string(body))
	}

	if resp.StatusCode == http.StatusNotFound {
		return gdcferr.APINoResult("resource not found").WithValues("path", path)
	}

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "unexpected status")

		return gdcferr.API("unexpected status code").WithValues("path", path, "status", resp.StatusCode, "body", string(body))
	}

	if err := json.NewDecoder(bytes.NewReader(body)).Decode(out); err != nil {
		span.RecordError(err)

		return gdcferr.API("decoding response failed").WithError(err)
	}

	return nil
}

func decodeLevel(w levelWire) (client.RawLevel, error) {
	password, err := model.DecodeLevelPassword(passwordOrNoCopy(w.Password))
	if err != nil {
		return client.RawLevel{}, gdcferr.API("decoding level password failed").WithError(err).WithValues("level_id", w.LevelID)
	}

	featured, err := model.ParseFeatured(w.Featured)
	if err != nil {
		return client.RawLevel{}, gdcferr.API("decoding level featured state failed").WithError(err).WithValues("level_id", w.LevelID)
	}

	partial := model.PartialLevel[model.RawSong, model.RawCreator]{
		LevelID:        w.LevelID,
		Name:           w.Name,
		Description:    w.Description,
		Version:        w.Version,
		Creator:        w.CreatorID,
		Difficulty:     model.ProcessDifficulty(w.DifficultyRating, w.IsAuto, w.IsDemon),
		Downloads:      w.Downloads,
		MainSong:       model.ProcessMainSong(w.MainSongIndex, w.CustomSongID != nil),
		CustomSong:     w.CustomSongID,
		GDVersion:      model.GameVersionFromUint8(w.GDVersion),
		Likes:          w.Likes,
		Length:         model.ParseLevelLength(w.Length),
		Stars:          w.Stars,
		Featured:       featured,
		CopyOf:         w.CopyOf,
		CoinAmount:     w.CoinAmount,
		CoinsVerified:  w.CoinsVerified,
		StarsRequested: w.StarsRequested,
		IsEpic:         w.IsEpic,
		ObjectAmount:   w.ObjectAmount,
	}

	return client.RawLevel{
		PartialLevel:    partial,
		LevelData:       w.LevelData,
		Password:        password,
		TimeSinceUpload: w.TimeSinceUpload,
		TimeSinceUpdate: w.TimeSinceUpdate,
	}, nil
}

// passwordOrNoCopy normalizes an empty wire password field to "0"
// (DecodeLevelPassword's no-copy sentinel), since the JSON façade omits the
// field entirely for levels that carry no password rather than sending "0"
// explicitly.
func passwordOrNoCopy(raw string) string {
	if raw == "" {
		return "0"
	}

	return raw
}

func decodeSecondaries(wires []secondaryWire) []client.Secondary {
	secondaries := make([]client.Secondary, 0, len(wires))

	for _, w := range wires {
		switch w.Kind {
		case "song":
			if w.Song == nil {
				continue
			}

			secondaries = append(secondaries, client.Secondary{
				Kind: client.SecondaryKindNewgroundsSong,
				Song: model.NewgroundsSong{
					SongID:     w.Song.SongID,
					Name:       w.Song.Name,
					ArtistID:   w.Song.ArtistID,
					Artist:     w.Song.Artist,
					FilesizeMB: w.Song.FilesizeMB,
					Link:       w.Song.Link,
				},
			})
		case "creator":
			if w.Creator == nil {
				continue
			}

			secondaries = append(secondaries, client.Secondary{
				Kind: client.SecondaryKindCreator,
				Creator: model.Creator{
					UserID:    w.Creator.UserID,
					Name:      w.Creator.Name,
					AccountID: w.Creator.AccountID,
				},
			})
		case "missing_creator":
			if w.Missing != nil {
				secondaries = append(secondaries, client.Secondary{Kind: client.SecondaryKindMissingCreator, MissingID: *w.Missing})
			}
		case "missing_song":
			if w.Missing != nil {
				secondaries = append(secondaries, client.Secondary{Kind: client.SecondaryKindMissingNewgroundsSong, MissingID: *w.Missing})
			}
		}
	}

	return secondaries
}
