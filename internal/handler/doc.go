// Package handler serves the resolved endpoint configuration to the web
// client so it can discover the backend at runtime.
package handler
