// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the invariants shared by every view of the configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !isHTTPURL(cfg.Adapter.APIURL) {
		return fmt.Errorf("%w: api url %q", ErrInvalidAdapterConfigs, cfg.Adapter.APIURL)
	}
	if cfg.Adapter.AddonURL != "" && !isHTTPURL(cfg.Adapter.AddonURL) {
		return fmt.Errorf("%w: addon url %q", ErrInvalidAdapterConfigs, cfg.Adapter.AddonURL)
	}

	if cfg.App.AuthKey == "" || cfg.App.Collection == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	// the issue-key mode never touches storage
	if cfg.App.IssueKeyFor != "" {
		return nil
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
