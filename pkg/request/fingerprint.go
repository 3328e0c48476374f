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

package request

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

// Fingerprint returns a stable 64-bit hash of req's canonical key, prefixed
// by the request's Kind so that, e.g., a user id and a level id with the
// same numeric value never collide. Stable across runs and store restarts:
// no process nonce, no address-dependent hashing.
func Fingerprint(req Request) uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(req.Kind())})
	h.Write(req.Key())

	return h.Sum64()
}

// encodeUint64 appends the big-endian bytes of v to buf, for use in
// canonical key serialization. Big-endian keeps the encoding sorted the
// same way as the numeric value, which is of no behavioural consequence
// here but costs nothing and matches how the pack's other binary
// serializers (e.g. encoding/binary-based wire codecs) typically lay out
// fixed-width fields.
func encodeUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte

	binary.BigEndian.PutUint64(tmp[:], v)

	return append(buf, tmp[:]...)
}

func formatUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}
