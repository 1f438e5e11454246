// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package linkedslab

import (
	"io"
	"log/slog"
)

// DefaultCapacity is the number of records a segment holds when no
// capacity option is given.
const DefaultCapacity = 8

type options struct {
	capacity int
	logger   *slog.Logger
}

// Option configures a Map at construction time.
type Option func(*options)

// WithCapacity sets the fixed number of records each segment can hold.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger sets the logger used for structural events such as tail
// allocation. A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
