/*
Copyright 2025 the Unikorn Authors.
Copyright 2026 Nscale.

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

package options

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"

	klog "k8s.io/klog/v2"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// CoreOptions are things all controllers, message consumers and servers will need.
// There is a corresponding Helm include that matches this type.
type CoreOptions struct {
	// Namespace is the namespace we are running in.
	Namespace string
	// OTLPEndpoint is used by OpenTelemetry.
	OTLPEndpoint string
	// Zap controls common logging.
	Zap zap.Options
}

func (o *CoreOptions) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.Namespace, "namespace", "", "Namespace the process is running in.")
	flags.StringVar(&o.OTLPEndpoint, "otlp-endpoint", "", "An optional OTLP endpoint.")

	z := flag.NewFlagSet("", flag.ExitOnError)
	o.Zap.BindFlags(z)

	flags.AddGoFlagSet(z)
}

func (o *CoreOptions) SetupLogging() {
	logr := zap.New(zap.UseFlagOptions(&o.Zap))

	log.SetLogger(logr)
	klog.SetLogger(logr)
	otel.SetLogger(logr)
}

func (o *CoreOptions) SetupOpenTelemetry(ctx context.Context, opts ...trace.TracerProviderOption) error {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if o.OTLPEndpoint != "" {
		exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(o.OTLPEndpoint), otlptracehttp.WithInsecure())
		if err != nil {
			return err
		}

		opts = append(opts, trace.WithBatcher(exporter))
	}

	otel.SetTracerProvider(trace.NewTracerProvider(opts...))

	return nil
}

// ServerOptions are shared across all servers.
type ServerOptions struct {
	// ListenAddress tells the server what to listen on, you shouldn't
	// need to change this, its already non-privileged and the default
	// should be modified to avoid clashes with other services e.g prometheus.
	ListenAddress string

	// ReadTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadTimeout time.Duration

	// ReadHeaderTimeout defines how long before we give up on the client,
	// this should be fairly short.
	ReadHeaderTimeout time.Duration

	// WriteTimeout defines how long we take to respond before we give up.
	// Ideally we'd like this to be short, but Openstack in general sucks
	// for performance.  Additionally some calls like cluster creation can
	// do a cascading create, e.g. create a default control plane, than in
	// turn creates a project.
	WriteTimeout time.Duration

	// RequestTimeout places a hard limit on all requests lengths.
	RequestTimeout time.Duration
}

func (o *ServerOptions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "server-listen-address", ":6080", "API listener address.")
	f.DurationVar(&o.ReadTimeout, "server-read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "server-read-header-timeout", time.Second, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "server-write-timeout", 10*time.Second, "How long to wait for the API to respond to the client.")
	f.DurationVar(&o.RequestTimeout, "server-request-timeout", 30*time.Second, "How long to wait of a request to be serviced.")
}

// CacheOptions configures the facade's cache collaborators: how long a
// freshly stored entry stays fresh, and what base URL the reference
// ApiClient talks to.
type CacheOptions struct {
	// LevelTTL is how long a cached level, or levels listing, stays fresh
	// before a lookup reports it Outdated.
	LevelTTL time.Duration

	// UserTTL is how long a cached user or creator stays fresh. Users and
	// creators rotate more slowly than level metadata, so this typically
	// outlives LevelTTL.
	UserTTL time.Duration

	// SongTTL is how long a cached Newgrounds song stays fresh. Song
	// metadata essentially never changes once published, so this is the
	// longest-lived of the three.
	SongTTL time.Duration

	// ApiBaseURL is the base URL the reference httpclient.Client issues
	// requests against.
	ApiBaseURL string

	// ApiRequestTimeout bounds a single outbound ApiClient request.
	ApiRequestTimeout time.Duration

	// RefreshConcurrency caps how many refreshes may be in flight against
	// the ApiClient at once (see pkg/client/bounded).
	RefreshConcurrency int
}

func (o *CacheOptions) AddFlags(f *pflag.FlagSet) {
	f.DurationVar(&o.LevelTTL, "cache-level-ttl", 5*time.Minute, "How long a cached level or listing page stays fresh.")
	f.DurationVar(&o.UserTTL, "cache-user-ttl", 30*time.Minute, "How long a cached user or creator stays fresh.")
	f.DurationVar(&o.SongTTL, "cache-song-ttl", 24*time.Hour, "How long a cached Newgrounds song stays fresh.")
	f.StringVar(&o.ApiBaseURL, "api-base-url", "", "Base URL of the GDCF-shaped REST façade the reference ApiClient talks to.")
	f.DurationVar(&o.ApiRequestTimeout, "api-request-timeout", 10*time.Second, "How long to wait for a single ApiClient request.")
	f.IntVar(&o.RefreshConcurrency, "refresh-concurrency", 16, "Maximum number of refresh requests in flight against the ApiClient at once.")
}

// Options is the full set of flags gdcfdemo (and any other GDCF process)
// binds, loads and validates together.
type Options struct {
	Core   CoreOptions
	Server ServerOptions
	Cache  CacheOptions
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	o.Core.AddFlags(f)
	o.Server.AddFlags(f)
	o.Cache.AddFlags(f)
}

// Load binds flags to a FlagSet, parses args, then lets viper override any
// unset flag from the environment (GDCF_ prefixed, dashes folded to
// underscores), mirroring pkg/testing/config's SetupViper without the
// test-only file-search-path plumbing a long-running process doesn't need.
// No config file is read.
func Load(args []string) (*Options, error) {
	opts := &Options{}

	flags := pflag.NewFlagSet("gdcf", pflag.ContinueOnError)
	opts.AddFlags(flags)

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("gdcf")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	// Environment variables win over an unset (default-valued) flag, never
	// over one the caller actually passed on the command line.
	if !flags.Changed("namespace") {
		opts.Core.Namespace = v.GetString("namespace")
	}

	if !flags.Changed("otlp-endpoint") {
		opts.Core.OTLPEndpoint = v.GetString("otlp-endpoint")
	}

	if !flags.Changed("api-base-url") {
		opts.Cache.ApiBaseURL = v.GetString("api-base-url")
	}

	if !flags.Changed("refresh-concurrency") && v.IsSet("refresh-concurrency") {
		opts.Cache.RefreshConcurrency = v.GetInt("refresh-concurrency")
	}

	for flag, field := range map[string]*time.Duration{
		"cache-level-ttl":     &opts.Cache.LevelTTL,
		"cache-user-ttl":      &opts.Cache.UserTTL,
		"cache-song-ttl":      &opts.Cache.SongTTL,
		"api-request-timeout": &opts.Cache.ApiRequestTimeout,
	} {
		if !flags.Changed(flag) {
			*field = durationFromViper(v, flag, *field)
		}
	}

	return opts, nil
}

// durationFromViper reads key as a bare integer number of seconds (the shape
// a plain environment variable or .env file most naturally takes), else as
// a duration string, and finally falls back to fallback if neither parses
// to something positive. The integer check comes first because viper's
// GetDuration would read a bare "120" as 120 nanoseconds.
func durationFromViper(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	if seconds := v.GetInt(key); seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if d := v.GetDuration(key); d > 0 {
		return d
	}

	return fallback
}
