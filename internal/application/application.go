package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "rostr"

	// AppVersion is the released version reported by the root command
	AppVersion = "0.3.1"

	// AppExeName is the executable name (without extension)
	AppExeName = "rostr"

	// AppExeNameWindows is the executable name on Windows
	AppExeNameWindows = "rostr.exe"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the rostr configuration directory path.
// Linux: ~/.config/rostr (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\rostr (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, errDir
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
	}

	appDir = filepath.Join(baseDir, AppName)
}
