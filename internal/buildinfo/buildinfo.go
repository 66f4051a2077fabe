// Package buildinfo reports how the running binary was built.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Info is the subset of the embedded build information shown to users.
type Info struct {
	Version  string
	Tags     string
	Revision string
	Dirty    bool
}

var readBuildInfo = debug.ReadBuildInfo

// Read returns the build information of the running binary. Version is "dev"
// for builds outside a released module.
func Read() Info {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return Info{Version: "dev"}
	}
	out := Info{Version: info.Main.Version}
	if out.Version == "" || out.Version == "(devel)" {
		out.Version = "dev"
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "-tags":
			out.Tags = setting.Value
		case "vcs.revision":
			out.Revision = setting.Value
		case "vcs.modified":
			out.Dirty = setting.Value == "true"
		}
	}
	return out
}

// String formats the version, followed by the short revision and build tags
// when present.
func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.Version)
	if i.Version == "dev" && i.Revision != "" {
		rev := i.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		fmt.Fprintf(&b, "+%s", rev)
		if i.Dirty {
			b.WriteString("-dirty")
		}
	}
	if i.Tags != "" {
		fmt.Fprintf(&b, " (tags: %s)", i.Tags)
	}
	return b.String()
}
