// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perms

const (
	ReadWrite        = 0o640
	ReadWriteExecute = 0o750
)
