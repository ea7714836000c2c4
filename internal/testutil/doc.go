// Package testutil provides testing utilities for the errcode module.
// Helpers here produce real platform failures so tests can compare what the
// operating system reported with what errcode reads back.
package testutil
