package catalog

import "errors"

var (
	// ErrNotFound means the requested id or slug does not exist upstream.
	ErrNotFound = errors.New("product not found")

	// ErrUpstream covers every other upstream failure: transport errors,
	// non-2xx statuses and malformed response bodies. Callers surface it
	// as a generic "failed to load" condition; no retry happens here.
	ErrUpstream = errors.New("upstream catalog unavailable")
)
