package artifacts

import (
	"io"
	"testing"
)

func TestOpenKnownResources(t *testing.T) {
	for _, id := range []string{MacOSDoorstop, LinuxDoorstop} {
		rc, err := Embedded{}.Open(id)
		if err != nil {
			t.Fatalf("open %s: %v", id, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", id, err)
		}
		if len(data) == 0 {
			t.Fatalf("resource %s is empty", id)
		}
	}
}

func TestOpenRejectsUnknownAndTraversal(t *testing.T) {
	for _, id := range []string{"", "missing.dll", "../artifacts.go", "resources/macos_doorstop.dylib"} {
		if _, err := (Embedded{}).Open(id); err == nil {
			t.Fatalf("expected error for %q", id)
		}
	}
}

func TestReadMatchesOpen(t *testing.T) {
	data, err := Read(MacOSDoorstop)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data[:4]) != "\xcf\xfa\xed\xfe" {
		t.Fatalf("unexpected mach-o magic %x", data[:4])
	}
}
