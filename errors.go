// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package linkedslab

import "errors"

var (
	// ErrInvalidCapacity is the panic value cause when a map is configured
	// with a per-segment capacity below one.
	ErrInvalidCapacity = errors.New("linkedslab: segment capacity must be at least 1")

	// ErrPlacement reports that the insertion walk finished without placing
	// a record. It only surfaces as a panic and means the chain is corrupt.
	ErrPlacement = errors.New("linkedslab: failed to place record")
)
