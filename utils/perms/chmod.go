// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perms

import (
	"errors"
	"os"
	"path/filepath"
)

// EnsureDir creates [dir] and its parents if needed and restricts every
// directory under it to [ReadWriteExecute]. Files are left untouched.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, ReadWriteExecute); err != nil {
		return err
	}
	return ChmodR(dir, true, ReadWriteExecute)
}

// ChmodR sets the permissions of all directories and optionally files to [perm]
// permissions.
func ChmodR(dir string, dirOnly bool, perm os.FileMode) error {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(dir, func(name string, d os.DirEntry, err error) error {
		if err != nil || (dirOnly && !d.IsDir()) {
			return err
		}
		return os.Chmod(name, perm)
	})
}
