//go:build windows

package log

import (
	"os"
	"path/filepath"
)

// %LocalAppData%\clockalarm\logs
func getDefaultDir() (string, error) {
	local, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(local, "clockalarm", "logs"), nil
}
