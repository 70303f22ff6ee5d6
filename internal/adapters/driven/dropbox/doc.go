// Package dropbox implements the storage ports against the Dropbox HTTP
// API v2 via the unofficial Go SDK. A Provider mints authenticated sessions
// (refreshing OAuth tokens when the payload allows it); each session wraps
// the SDK's files and users clients with rate limiting, path-root scoping
// for team namespaces, and temp-slot downloads with a size cap.
package dropbox
