// This file is part of microcode6502.
//
// microcode6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// microcode6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with microcode6502.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"
)

// Profile specifies which profile to generate with RunProfiler().
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileTrace
	ProfileBlock
)

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "NONE"
	case ProfileCPU:
		return "CPU"
	case ProfileMem:
		return "MEM"
	case ProfileTrace:
		return "TRACE"
	case ProfileBlock:
		return "BLOCK"
	}
	return fmt.Sprintf("unknown profile (%d)", int(p))
}

// ParseProfileString returns the Profile named by the string. The comparison
// is case insensitive.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "TRACE":
		return ProfileTrace, nil
	case "BLOCK":
		return ProfileBlock, nil
	}
	return ProfileNone, fmt.Errorf("performance: unknown profile type: %s", s)
}

// RunProfiler runs the supplied function, generating the requested profile in
// the path directory. If the profile is ProfileNone then the function is run
// without any profiling.
func RunProfiler(p Profile, path string, run func() error) error {
	var mode func(*profile.Profile)

	switch p {
	case ProfileNone:
		return run()
	case ProfileCPU:
		mode = profile.CPUProfile
	case ProfileMem:
		mode = profile.MemProfile
	case ProfileTrace:
		mode = profile.TraceProfile
	case ProfileBlock:
		mode = profile.BlockProfile
	default:
		return fmt.Errorf("performance: %v", p)
	}

	// signal handling is left to the caller
	defer profile.Start(mode, profile.ProfilePath(path), profile.Quiet, profile.NoShutdownHook).Stop()

	return run()
}
