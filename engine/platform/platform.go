package platform

import (
	"runtime"
)

// OS is the name of the operating system the binary was built for:
// "windows", "macos" or "linux". Every other target reports "linux".
var OS = osName(runtime.GOOS)

func osName(goos string) string {
	switch goos {
	case "windows":
		return "windows"
	case "darwin", "ios":
		return "macos"
	default:
		return "linux"
	}
}
