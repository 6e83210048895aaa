// Package cache stores the captured standard output of wrapped commands on disk.
//
// Each distinct command-token sequence maps to exactly one regular file:
//   - Files live in a single flat directory, <UserCacheDir>/kep by default
//     (falling back to <TempDir>/kep when no cache directory is known)
//   - The file name is a 16-character hexadecimal xxhash64 of the tokens
//   - The file content is the raw stdout bytes, with no header or sidecar
//   - Freshness is judged purely from the file's modification time
//
// Entries are overwritten on every real execution and are never removed by kep.
package cache
