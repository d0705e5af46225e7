// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "fmt"

// ResourceError is returned when a platform resource such as a
// system cursor cannot be acquired.
type ResourceError struct {
	// Resource names what could not be acquired.
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("platform: %s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
