// Package client talks to the rent-estimation backend over HTTP/JSON.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Login,
//     Signup, Logout, Profile, EstimateHistory, Predict and Ping.
//  2. A concrete implementation (see HTTPClient) whose transport attaches the
//     stored bearer token to every request and reports 401 responses to the
//     session owner (see TokenSource and UnauthorizedHandler).
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError and match ErrUnauthorized,
// ErrRejected or ErrServer with errors.Is. Transport failures are returned as
// *NetworkError and match ErrUnavailable. A 2xx body that cannot be decoded
// matches ErrMalformedResponse.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every operation takes a
// context.Context and is bounded by the configured request timeout. Nothing
// is retried.
package client
