// Package endpoints resolves the backend base URL used by the IntelliClaim
// web client and derives the named endpoint URLs (query, upload, health)
// from it. Values are built once and never change afterwards.
package endpoints
