// Package classify infers a voice's quality tier from provider name markers
// and buckets its gender attribute into two pitch categories.
package classify
