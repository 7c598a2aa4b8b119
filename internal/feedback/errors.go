// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package feedback

import "errors"

// ErrClosed is returned by Send once the channel is done.
var ErrClosed = errors.New("feedback channel closed")
