// Package common contains constants shared by the rentpred client packages.
package common

// HTTP header names used on every outbound API request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Keys of the durable session entries. Both are always written and cleared together.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)

// LoginPath is the view every unauthenticated protected navigation is sent to.
const LoginPath = "/login"
