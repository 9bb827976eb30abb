package notify

import (
	"fmt"
	"os/exec"
	"runtime"
)

// BrowserLauncher starts the platform's URL handler.
type BrowserLauncher struct {
	goos string
}

func NewBrowserLauncher() *BrowserLauncher {
	return &BrowserLauncher{goos: runtime.GOOS}
}

// Open starts the handler and returns without waiting for it.
func (b *BrowserLauncher) Open(url string) error {
	name, args := b.command(url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return cmd.Process.Release()
}

func (b *BrowserLauncher) command(url string) (string, []string) {
	switch b.goos {
	case "windows":
		// cmd's start would split the URL at "&".
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default:
		return "xdg-open", []string{url}
	}
}
