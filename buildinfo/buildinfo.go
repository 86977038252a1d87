// Package buildinfo reports which commit and Go toolchain produced the
// running binary, pulled from the module build metadata.
package buildinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type Info struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (i Info) String() string {
	suffix := ""
	if i.Modified {
		suffix = " Files in the repo were modified after that commit."
	}

	return fmt.Sprintf("This %s binary was built with %s at commit %v at time %v.%s", i.Package, i.GoVersion, i.Commit, i.CommitTime, suffix)
}

func Get() Info {
	out := Info{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Package = bi.Path
	out.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			out.Commit = setting.Value
		case "vcs.time":
			out.CommitTime = setting.Value
		case "vcs.modified":
			out.Modified = setting.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
