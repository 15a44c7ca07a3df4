// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrNoProgram is returned by [ConfirmBridge.Confirm] when no running
// program is attached to answer the question.
var ErrNoProgram = errors.New("tui: no program attached")
