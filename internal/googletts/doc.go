// Package googletts is a minimal client for the Google Cloud Text-to-Speech
// voices list endpoint.
//
// It owns the single blocking fetch the generator performs: one GET against
// /v1beta1/voices authenticated by API key. There is no pagination, retry,
// or rate-limit handling; a failed request fails the whole generation run.
package googletts
