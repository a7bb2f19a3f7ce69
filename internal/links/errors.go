// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package links

import "errors"

// ErrIndexOutOfRange is returned by [List.RemoveAt] for an index outside the
// current bounds of the list.
var ErrIndexOutOfRange = errors.New("link index out of range")
