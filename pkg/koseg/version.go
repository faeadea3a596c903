package koseg

import "runtime/debug"

var (
	// Version is set with -ldflags "-X github.com/hsiuhsiu/koseg-go/pkg/koseg.Version=...".
	Version      = "v0.0.0-in-progress"
	engineModule = "github.com/ikawaha/kagome/v2"
)

// WrapperVersion is the koseg-go release string; koseg_version reports it.
// Untagged builds report v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// EngineVersion reports the kagome module version linked into the binary, or
// "unknown" when build information is unavailable.
func EngineVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != engineModule {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
