// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tracker

import "errors"

var (
	ErrRateLimited     = errors.New("rate limit exceeded")
	ErrUnknownService  = errors.New("service is not tracked")
	ErrCounterStore    = errors.New("counter store failure")
	ErrPersistingUsage = errors.New("failed to persist api usage")
)
