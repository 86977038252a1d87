// buildinfoprint is imported for the side effect of printing the build info
// to os.Stderr
package buildinfoprint

import "github.com/genrisk/gwascat/buildinfo"

func init() {
	buildinfo.PrintToStdErr()
}
