// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package wm

import "errors"

// Errors returned by Manager construction are fatal: the caller should
// abort start-up. Errors returned by commands are logged by the dispatcher
// and the loop continues.
var (
	// ErrNoGroups is a programming precondition: a manager needs at least
	// one group to have something to activate.
	ErrNoGroups = errors.New("wm: at least one group is required")

	// ErrGroupNotFound is returned by commands that reference a group name
	// that doesn't exist in the configured group list.
	ErrGroupNotFound = errors.New("wm: group not found")
)
