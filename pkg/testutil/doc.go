// Package testutil provides test environments for pathman packages.
//
// A TestEnvironment isolates a test from the developer's machine: XDG
// lookups point at a temp dir, PATHMAN_* variables are cleared and
// directory checks run against an in-memory or temp-dir filesystem.
//
// Usage guidelines:
//   - prefer EnvMemoryOnly; directory checks never touch the disk
//   - use EnvIsolated when the code under test opens real files
package testutil
