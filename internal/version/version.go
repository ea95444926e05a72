// Package version describes the running binary for the --version flag.
package version

import (
	goversion "github.com/caarlos0/go-version"
)

const (
	Application = "usersfetch"
	Description = "Fetch and display users from a public API"
	WebSite     = "https://jsonplaceholder.typicode.com"
)

// Set through -ldflags at release time.
var (
	version   = "0.1.0"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

// Info returns the build information of the binary.
func Info() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(Application, Description, WebSite),
		func(i *goversion.Info) {
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
