package cksum

import "github.com/samrussell/coreutils/internal/engine"

// ErrLengthOverflow is returned when the cumulative stream length would wrap
// the 64-bit byte counter.
var ErrLengthOverflow = engine.ErrLengthOverflow

// ErrInvalidArgument is returned for a nil byte source.
var ErrInvalidArgument = engine.ErrInvalidArgument
