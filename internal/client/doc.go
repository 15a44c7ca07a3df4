// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the gpu-missions application runtime.
//
// It turns parsed flags into a configured stack (logger, credential store,
// remote adapter, session client) and hands it to either the terminal UI or
// the headless commands.
package client
