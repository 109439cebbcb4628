package iex

import (
	"runtime/debug"
	"strings"
	"sync"
)

const modulePath = "github.com/iexdata/iex-api-go"

var (
	goVersion     string
	moduleVersion string
	versionOnce   sync.Once
)

// Version returns the running go version and the iex-api-go version found
// in the build info. Either may be empty.
func Version() (string, string) {
	versionOnce.Do(func() {
		buildInfo, found := debug.ReadBuildInfo()
		if !found {
			return
		}
		goVersion = buildInfo.GoVersion
		if buildInfo.Main.Path == modulePath {
			moduleVersion = buildInfo.Main.Version
			return
		}
		for _, dep := range buildInfo.Deps {
			if strings.HasPrefix(dep.Path, modulePath) {
				moduleVersion = dep.Version
				return
			}
		}
	})
	return goVersion, moduleVersion
}

func userAgent() string {
	gv, mv := Version()
	if mv == "" {
		mv = "devel"
	}
	ua := "iex-api-go/" + mv
	if gv != "" {
		ua += " " + gv
	}
	return ua
}
