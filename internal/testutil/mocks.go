// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides testify mocks for the domain ports.
package testutil

import (
	"context"

	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockRepositorySource mocks the RepositorySource port for testing.
type MockRepositorySource struct {
	mock.Mock
}

// FetchRepositories mocks fetching the record list.
func (m *MockRepositorySource) FetchRepositories(ctx context.Context) ([]domain.Repository, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		records, ok := result.([]domain.Repository)
		if !ok {
			return nil, args.Error(1)
		}

		return records, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockNetworkClient mocks the NetworkClient port for testing.
type MockNetworkClient struct {
	mock.Mock
}

// GetJSON mocks a JSON GET request. Use Run on the expectation to populate target.
func (m *MockNetworkClient) GetJSON(ctx context.Context, url string, target any) error {
	args := m.Called(ctx, url, target)
	return args.Error(0)
}

// FillRecords returns a Run function that copies records into a
// *[]domain.Repository target.
func FillRecords(records []domain.Repository) func(mock.Arguments) {
	return func(args mock.Arguments) {
		if target, ok := args.Get(2).(*[]domain.Repository); ok {
			*target = records
		}
	}
}
