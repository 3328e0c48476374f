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

package options_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gdcf/core/pkg/options"
)

func TestLoadAppliesFlagDefaults(t *testing.T) {
	t.Parallel()

	opts, err := options.Load(nil)
	require.NoError(t, err)

	require.Equal(t, 5*time.Minute, opts.Cache.LevelTTL)
	require.Equal(t, 30*time.Minute, opts.Cache.UserTTL)
	require.Equal(t, 24*time.Hour, opts.Cache.SongTTL)
	require.Equal(t, 16, opts.Cache.RefreshConcurrency)
}

func TestLoadHonorsExplicitFlagOverEnvironment(t *testing.T) {
	t.Setenv("GDCF_API_BASE_URL", "https://from-env.example")

	opts, err := options.Load([]string{"--api-base-url=https://from-flag.example"})
	require.NoError(t, err)

	require.Equal(t, "https://from-flag.example", opts.Cache.ApiBaseURL)
}

func TestLoadFallsBackToEnvironmentWhenFlagUnset(t *testing.T) {
	t.Setenv("GDCF_API_BASE_URL", "https://from-env.example")

	opts, err := options.Load(nil)
	require.NoError(t, err)

	require.Equal(t, "https://from-env.example", opts.Cache.ApiBaseURL)
}

func TestLoadFallsBackToEnvironmentDurationAsSeconds(t *testing.T) {
	t.Setenv("GDCF_CACHE_LEVEL_TTL", "120")

	opts, err := options.Load(nil)
	require.NoError(t, err)

	require.Equal(t, 120*time.Second, opts.Cache.LevelTTL)
}
