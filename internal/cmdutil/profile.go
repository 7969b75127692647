package cmdutil

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"
)

// ProfileModes lists the accepted --profile values.
var ProfileModes = []string{"cpu", "mem", "block"}

// ValidateProfile checks a --profile value ("" disables profiling).
func ValidateProfile(mode string) error {
	switch strings.ToLower(mode) {
	case "", "cpu", "mem", "block":
		return nil
	}
	return fmt.Errorf("invalid --profile %q (want %s)", mode, strings.Join(ProfileModes, " | "))
}

// StartProfile starts the requested profile, written to dir, and returns its
// stop function. An empty mode returns a no-op.
func StartProfile(mode, dir string) (stop func(), err error) {
	if err := ValidateProfile(mode); err != nil {
		return nil, err
	}
	opts := []func(*profile.Profile){profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook}
	switch strings.ToLower(mode) {
	case "cpu":
		return profile.Start(append(opts, profile.CPUProfile)...).Stop, nil
	case "mem":
		return profile.Start(append(opts, profile.MemProfile)...).Stop, nil
	case "block":
		return profile.Start(append(opts, profile.BlockProfile)...).Stop, nil
	}
	return func() {}, nil
}
