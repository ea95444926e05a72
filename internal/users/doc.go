// Package users fetches user records from the remote users API, exposes them
// as read-only Records backed by cty values, and filters them by city.
//
// Every failure the package reports is one of the typed errors declared in
// errors.go, so callers can tell an unreachable API apart from a bad payload
// with errors.As.
package users
