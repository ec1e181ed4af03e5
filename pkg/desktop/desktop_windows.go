//go:build windows

package desktop

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	spiSetDeskWallpaper  = 0x0014
	spifUpdateINIFile    = 0x01
	spifSendWinIniChange = 0x02
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	sysParametersInfo = user32.NewProc("SystemParametersInfoW")
)

func setWallpaper(abs string) error {
	p, err := windows.UTF16PtrFromString(abs)
	if err != nil {
		return err
	}

	// Returns nonzero on success.
	r, _, err := sysParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(unsafe.Pointer(p)),
		uintptr(spifUpdateINIFile|spifSendWinIniChange),
	)
	if r == 0 {
		return fmt.Errorf("SystemParametersInfoW: %w", err)
	}

	return nil
}

// Current returns the path of the active wallpaper, read from the
// registry value Windows maintains for it.
func Current() (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open key: %w", err)
	}
	defer k.Close()

	v, _, err := k.GetStringValue("Wallpaper")
	if err != nil {
		return "", fmt.Errorf("get value: %w", err)
	}

	return v, nil
}
