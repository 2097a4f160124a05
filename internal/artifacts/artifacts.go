// Package artifacts exposes the loader binaries packaged into the executable.
package artifacts

import (
	"embed"
	"fmt"
	"io"
	"path"

	"github.com/conn-castle/patch-loader/internal/messages"
)

// Resource ids of the packaged loader builds.
const (
	MacOSDoorstop = "macos_doorstop.dylib"
	LinuxDoorstop = "linux_doorstop.so"
)

//go:embed resources/*
var resources embed.FS

// Source yields the bytes of a packaged artifact.
type Source interface {
	Open(resourceID string) (io.ReadCloser, error)
}

// Embedded serves artifacts compiled into the binary.
type Embedded struct{}

// Open returns a reader over the embedded resource.
func (Embedded) Open(resourceID string) (io.ReadCloser, error) {
	if resourceID == "" || path.Base(resourceID) != resourceID {
		return nil, fmt.Errorf(messages.ArtifactsUnknownResourceFmt, resourceID)
	}
	f, err := resources.Open("resources/" + resourceID)
	if err != nil {
		return nil, fmt.Errorf(messages.ArtifactsOpenResourceFmt, resourceID, err)
	}
	return f, nil
}

// Read returns the full contents of an embedded resource.
func Read(resourceID string) ([]byte, error) {
	rc, err := Embedded{}.Open(resourceID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
