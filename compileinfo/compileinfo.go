// Package compileinfo reports how a biodistance binary was built, from the
// module and VCS settings the Go toolchain embeds.
package compileinfo

import (
	"fmt"
	"io"
	"runtime/debug"
)

type CompileInfo struct {
	Tool       string
	Package    string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	mod := ""
	if c.Modified {
		mod = " Files in the repo were modified after that commit."
	}

	commit := ""
	if c.Commit != "" {
		commit = fmt.Sprintf(" at commit %v at time %v", c.Commit, c.CommitTime)
	}

	return fmt.Sprintf("%s (%s %s) was built with %s%s.%s", c.Tool, c.Package, c.Version, c.GoVersion, commit, mod)
}

// Get collects build information for the named tool. Fields stay empty when
// the binary carries no build information.
func Get(tool string) CompileInfo {
	out := CompileInfo{Tool: tool}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = z.GoVersion
	out.Package = z.Path
	out.Version = z.Main.Version
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

// Fprint writes the build information for tool to w.
func Fprint(w io.Writer, tool string) {
	fmt.Fprintf(w, "%s\n", Get(tool))
}
