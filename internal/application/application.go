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
	AppName = "focset"

	// Version is reported by `focset --version`
	Version = "0.3.0"

	// ConfigFileName is the name of the ini file inside the application directory
	ConfigFileName = "config.ini"

	// HistoryDBName is the name of the submission history database
	HistoryDBName = "history.db"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the focset configuration directory path.
// Linux: ~/.config/focset (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\focset (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
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
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
