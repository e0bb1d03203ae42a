// Package httputil provides HTTP client utilities shared by the packing
// engine client: retry with exponential backoff for transient failures and
// a file-based response cache with TTL expiration.
package httputil
