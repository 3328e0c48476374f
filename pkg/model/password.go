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

package model

import (
	"context"
	"encoding/base64"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// PasswordKind discriminates the three shapes a level's copy password can
// take on the wire.
type PasswordKind int

const (
	// PasswordNoCopy means the level cannot be copied.
	PasswordNoCopy PasswordKind = iota
	// PasswordFreeCopy means the level can be copied without a password.
	PasswordFreeCopy
	// PasswordCopy means the level can be copied with the carried password.
	PasswordCopy
)

// Password is a level's copy-protection state.
type Password struct {
	Kind     PasswordKind
	Password string
}

// levelPasswordXORKey is the GD protocol's well-known XOR key used to
// obscure (not secure) level copy passwords, applied to the base64-decoded
// bytes.
const levelPasswordXORKey = "26364"

// DecodeLevelPassword decodes the wire representation of a level's copy
// password. Levels uploaded on client 1.9 and earlier are not XOR-encoded
// at all and are handled by the length-1 fast path below; later clients
// XOR-obscure the base64 payload with levelPasswordXORKey before the
// leading digit-count byte is stripped.
func DecodeLevelPassword(encrypted string) (Password, error) {
	switch {
	case encrypted == "0":
		return Password{Kind: PasswordNoCopy}, nil
	case len(encrypted) == 1:
		return Password{Kind: PasswordFreeCopy}, nil
	default:
		decoded, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(encrypted)
		if err != nil {
			return Password{}, fmt.Errorf("decoding level password: %w", err)
		}

		plain := xorBytes(decoded, levelPasswordXORKey)
		if len(plain) == 0 {
			return Password{}, fmt.Errorf("decoding level password: empty payload")
		}

		// The first decoded byte is a digit count prefix robtop uses to pad
		// the password to a fixed length; the actual password follows it.
		return Password{Kind: PasswordCopy, Password: string(plain[1:])}, nil
	}
}

func xorBytes(data []byte, key string) []byte {
	out := make([]byte, len(data))

	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}

	return out
}

// ParseDescription decodes a level's base64-encoded description. Lenient by
// design: the upstream server occasionally sends a description that isn't
// valid base64 at all, in which case the raw string is returned verbatim
// rather than failing the surrounding parse. This is flagged with a V(1)
// Info log line rather than silently swallowed.
func ParseDescription(ctx context.Context, raw string) string {
	decoded, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(raw)
	if err != nil {
		log.FromContext(ctx).V(1).Info("level description is not valid base64, using raw value", "error", err)

		return raw
	}

	return string(decoded)
}
