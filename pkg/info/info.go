// Package info carries build-time version information, overridable with
// -ldflags at release time.
package info

import (
	"github.com/google/uuid"
)

var (
	Version   = "0.0.0"
	Dist      = "1"
	GitRev    = "000000"
	BuildTime = "2000-01-01_00:00:00"

	// InstanceID distinguishes this process in logs and health responses.
	InstanceID = uuid.New().String()
)
