/*
Copyright 2022-2024 EscherCloud.
Copyright 2024 the Unikorn Authors.
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

// Package constants holds the handful of build-time and process-identity
// values a GDCF binary wants: an application name, a version set via
// -ldflags, and a derived User-Agent-style version string. cmd/gdcfdemo logs
// that string at startup and passes Version to debugserver to tag its spans.
package constants

import (
	"fmt"
	"os"
	"path"
)

var (
	// Application is the application name.
	//nolint:gochecknoglobals
	Application = path.Base(os.Args[0])

	// Version is the application version, set via the Makefile's -ldflags.
	//nolint:gochecknoglobals
	Version = DeveloperVersion

	// Revision is the git revision, set via the Makefile's -ldflags.
	//nolint:gochecknoglobals
	Revision string
)

// DeveloperVersion is the default Version for an unreleased build.
const DeveloperVersion = "0.0.0"

// VersionString returns a canonical version string.  It's based on HTTP's
// User-Agent so can be used to set that too, if this ever has to call out
// to other services.
func VersionString() string {
	return fmt.Sprintf("%s/%s (revision/%s)", Application, Version, Revision)
}

// IsProduction reports whether Version has been set to something other than
// the default, i.e. whether this is a released build.
func IsProduction() bool {
	return Version != DeveloperVersion
}
