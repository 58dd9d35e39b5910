// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package network

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/janderssonse/repodeck/internal/logging"
	"github.com/janderssonse/repodeck/internal/platform"
)

// RepositoryFeed is the remote repository list, fetched with a single GET.
type RepositoryFeed struct {
	client   domain.NetworkClient
	endpoint string
	logger   *slog.Logger
}

// NewRepositoryFeed creates a feed reading endpoint through client.
func NewRepositoryFeed(client domain.NetworkClient, endpoint string, logger *slog.Logger) *RepositoryFeed {
	if logger == nil {
		logger = slog.Default()
	}

	return &RepositoryFeed{client: client, endpoint: endpoint, logger: logger}
}

// FetchRepositories implements domain.RepositorySource. It does not retry.
func (f *RepositoryFeed) FetchRepositories(ctx context.Context) ([]domain.Repository, error) {
	ctx = logging.WithComponent(ctx, "feed")

	f.logger.DebugContext(ctx, "fetching repositories", "endpoint", f.endpoint, "proxy", platform.ProxyFor(f.endpoint))

	var records []domain.Repository
	if err := f.client.GetJSON(ctx, f.endpoint, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", f.endpoint, err)
	}

	if records == nil {
		records = []domain.Repository{}
	}

	return records, nil
}
