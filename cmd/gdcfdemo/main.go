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

// gdcfdemo wires every collaborator (reference ApiClient, CacheStore,
// Facade, debug server) into one runnable process: a worked example of the
// composition the core is meant to support, not a service the core itself
// depends on.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/gdcf/core/pkg/client"
	"github.com/gdcf/core/pkg/client/bounded"
	"github.com/gdcf/core/pkg/client/httpclient"
	"github.com/gdcf/core/pkg/client/ratelimited"
	"github.com/gdcf/core/pkg/constants"
	"github.com/gdcf/core/pkg/debugserver"
	"github.com/gdcf/core/pkg/gdcf"
	"github.com/gdcf/core/pkg/gdcferr"
	"github.com/gdcf/core/pkg/options"
	"github.com/gdcf/core/pkg/request"
	"github.com/gdcf/core/pkg/store"
	"github.com/gdcf/core/pkg/store/memstore"
	"github.com/gdcf/core/pkg/store/perkind"
	"github.com/gdcf/core/pkg/store/sqlstore"
)

// serviceName tags every span and log line this process emits.
const serviceName = "gdcfdemo"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := options.Load(os.Args[1:])
	if err != nil {
		return fmt.Errorf("loading options: %w", err)
	}

	opts.Core.SetupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := opts.Core.SetupOpenTelemetry(ctx); err != nil {
		return fmt.Errorf("setting up opentelemetry: %w", err)
	}

	logger := log.FromContext(ctx).WithName(serviceName)

	cacheStore, closeStore, err := buildCacheStore(ctx, opts.Cache)
	if err != nil {
		return fmt.Errorf("building cache store: %w", err)
	}
	defer closeStore()

	apiClient := buildAPIClient(opts.Cache)

	facade := gdcf.New(apiClient, cacheStore)

	logger.Info("gdcfdemo facade ready", "version", constants.VersionString(), "apiBaseURL", opts.Cache.ApiBaseURL, "refreshConcurrency", opts.Cache.RefreshConcurrency)

	// The core's facade has no HTTP surface of its own (spec.md scopes that
	// out). /v1/level is a thin worked example on top of the debug server's
	// router, not a surface the core depends on -- it exists so this process
	// does something observable beyond serving /healthz.
	mux := http.NewServeMux()
	mux.Handle("/", debugserver.New(serviceName, constants.Version, cacheStore).Handler())
	mux.HandleFunc("/v1/level", levelHandler(facade))

	srv := &http.Server{
		Addr:              opts.Server.ListenAddress,
		Handler:           mux,
		ReadTimeout:       opts.Server.ReadTimeout,
		ReadHeaderTimeout: opts.Server.ReadHeaderTimeout,
		WriteTimeout:      opts.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("debug server listening", "address", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err

			return
		}

		serveErr <- nil
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("debug server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down debug server: %w", err)
	}

	return <-serveErr
}

// buildAPIClient wraps the reference httpclient.Client in the concurrency
// and rate-limit decorators, in that order: bounded caps how many refreshes
// run at once, ratelimited caps how fast new ones may start, matching the
// contract each decorator documents (bounded.Client's doc comment and
// ratelimited.Client's doc comment both assume they compose this way, inner
// to outer, over a common client.ApiClient).
func buildAPIClient(cacheOpts options.CacheOptions) client.ApiClient {
	inner := httpclient.New(httpclient.Config{
		BaseURL:        cacheOpts.ApiBaseURL,
		RequestTimeout: cacheOpts.ApiRequestTimeout,
		LogRequests:    true,
		LogResponses:   true,
	})

	withConcurrencyLimit := bounded.New(inner, cacheOpts.RefreshConcurrency)

	return ratelimited.New(withConcurrencyLimit, int64(cacheOpts.RefreshConcurrency))
}

// buildCacheStore wires a perkind.Store over three memstore tiers, one per
// CacheOptions TTL field. GDCF_STORE_DSN selects a sqlstore-backed levels
// tier instead, for a deployment that wants level/listing cache entries to
// survive a restart; users and songs stay in memory either way, since
// neither needs that durability to be useful in a demo process.
func buildCacheStore(ctx context.Context, cacheOpts options.CacheOptions) (store.CacheStore, func(), error) {
	levels := store.CacheStore(memstore.New(cacheOpts.LevelTTL))

	closeFn := func() {}

	if dsn := os.Getenv("GDCF_STORE_DSN"); dsn != "" {
		sqlLevels, err := sqlstore.Open(ctx, dsn, cacheOpts.LevelTTL)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sql store: %w", err)
		}

		levels = sqlLevels
		closeFn = func() { sqlLevels.Close() }
	}

	composed := &perkind.Store{
		Levels: levels,
		Users:  memstore.New(cacheOpts.UserTTL),
		Songs:  memstore.New(cacheOpts.SongTTL),
	}

	return composed, closeFn, nil
}

// levelHandler serves GET /v1/level?id=<levelID>[&force=true], returning the
// as-fetched level outcome as JSON. It is a worked example of driving the
// facade from an HTTP surface, not a contract the core itself defines.
func levelHandler(facade *gdcf.Facade) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := r.URL.Query().Get("id")

		levelID, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			debugserver.WriteErrorResponse(w, r, http.StatusBadRequest, gdcferr.API("missing or invalid id query parameter").WithError(err))

			return
		}

		req := request.LevelRequest{
			LevelID:      levelID,
			ForceRefresh: r.URL.Query().Get("force") == "true",
		}

		outcome, err := facade.Level(r.Context(), req)
		if err != nil {
			debugserver.WriteErrorResponse(w, r, http.StatusBadGateway, err)

			return
		}

		e, ok := outcome.Entry()
		if !ok {
			refreshTask, _ := outcome.Refresh()

			e, err = refreshTask.Wait(r.Context())
			if err != nil {
				debugserver.WriteErrorResponse(w, r, http.StatusBadGateway, err)

				return
			}
		}

		v, hasValue := e.Value()
		if !hasValue {
			debugserver.WriteJSONResponse(w, r, http.StatusNotFound, struct {
				Absent bool `json:"absent"`
			}{Absent: true})

			return
		}

		debugserver.WriteJSONResponse(w, r, http.StatusOK, v)
	}
}
