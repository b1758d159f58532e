// Package filesystem provides the directory existence check used when
// filtering path strings.
//
// The check runs on an afero.Fs so callers can swap the OS filesystem for an
// in-memory one in tests.
package filesystem
