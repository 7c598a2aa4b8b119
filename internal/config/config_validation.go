// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// maxPageSize is the People API upper bound for connections.list.
const maxPageSize = 1000

// validate checks that the merged, defaulted [StructuredConfig] can be used
// at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if !isHTTPURL(cfg.Directory.BaseURL) {
		return fmt.Errorf("%w: base url %q", ErrInvalidDirectoryConfigs, cfg.Directory.BaseURL)
	}
	if cfg.Directory.PageSize < 1 || cfg.Directory.PageSize > maxPageSize {
		return fmt.Errorf("%w: page size %d", ErrInvalidDirectoryConfigs, cfg.Directory.PageSize)
	}

	if !isHTTPURL(cfg.Messaging.BaseURL) {
		return fmt.Errorf("%w: base url %q", ErrInvalidMessagingConfigs, cfg.Messaging.BaseURL)
	}

	if cfg.Sync.UpdateInterval <= 0 || cfg.Sync.ApprovalTimeout <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
