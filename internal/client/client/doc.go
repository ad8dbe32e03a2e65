// Package client contains client-side building blocks for Publicada.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the Publicada backend: SignUp/Authorize, the record operations
//     GetRecord/PutRecord/DeleteRecord, and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens, and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, and common.ErrorNotFound for
// missing records.
//
// Concurrency & Contexts
//
// The CLI drives the client from a single goroutine; the token pair held by
// GRPCClient is not guarded by a lock. All operations accept context.Context
// and honor cancellation/timeouts.
//
// See Also
//
//   - Interface: Client
//   - gRPC impl: GRPCClient
//   - Errors:    ErrUnavailable, ErrUnauthorized
package client
