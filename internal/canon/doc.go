// Package canon normalizes raw ingredient names, unit labels, and
// quantities into canonical identities. Every function is pure,
// deterministic, and idempotent: re-canonicalizing an already-canonical
// value returns it unchanged.
package canon
