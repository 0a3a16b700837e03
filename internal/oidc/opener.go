package oidc

import (
	"errors"
	"strings"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/afero"
)

// ErrNoBrowser signals that no local browser is available for the
// verification URL.
var ErrNoBrowser = errors.New("no local browser available")

var containerMarkers = []string{"docker", "containerd", "kubepods", "lxc"}

// BrowserOpener launches the system browser unless the process appears to
// run inside a container, in which case opening a browser is pointless.
type BrowserOpener struct {
	Fs afero.Fs
}

func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{Fs: afero.NewOsFs()}
}

func (b *BrowserOpener) Open(url string) error {
	if runningInContainer(b.Fs) {
		return ErrNoBrowser
	}
	return open.Run(url)
}

// runningInContainer inspects the init process's control groups for a
// containerization marker. Best-effort: any read failure means "not in a
// container" and only affects whether the browser opens.
func runningInContainer(fs afero.Fs) bool {
	data, err := afero.ReadFile(fs, "/proc/1/cgroup")
	if err != nil {
		return false
	}

	content := string(data)
	for _, marker := range containerMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}
