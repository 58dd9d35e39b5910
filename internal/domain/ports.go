// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "context"

// RepositorySource supplies the raw repository records for a session.
// Implemented by the HTTP feed adapter and by in-memory fakes in tests.
type RepositorySource interface {
	// FetchRepositories returns every record the source knows about.
	FetchRepositories(ctx context.Context) ([]Repository, error)
}

// SourceFunc adapts a plain function to RepositorySource.
type SourceFunc func(ctx context.Context) ([]Repository, error)

// FetchRepositories calls f.
func (f SourceFunc) FetchRepositories(ctx context.Context) ([]Repository, error) {
	return f(ctx)
}

// NetworkClient defines the interface for network operations.
type NetworkClient interface {
	// GetJSON issues a GET request and decodes the JSON response body into target.
	GetJSON(ctx context.Context, url string, target any) error
}
