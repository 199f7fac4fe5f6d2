// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the library sync client runtime: one sync pass
// on start, then the terminal browser.
package client
