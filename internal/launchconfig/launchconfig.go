// Package launchconfig encodes and decodes the generated launch script that tells the
// loader whether to inject and which assembly to load.
//
// The script layout is positional: header lines, then the preload, enabled, and
// target-assembly assignments, then diagnostic echo lines, then the exec line. Decoding
// reads the three assignments by line index, so the layout written by Encode is the
// on-disk contract.
package launchconfig

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/conn-castle/patch-loader/internal/messages"
)

var (
	// ErrConfigParse marks a launch script that does not match the fixed layout.
	ErrConfigParse = errors.New("launch config parse failed")
	// ErrUnencodable marks settings that Encode cannot write so that Decode reads them back.
	ErrUnencodable = errors.New("launch config settings cannot be encoded")
)

// shellActive are the characters that keep their meaning inside a double-quoted sh string.
const shellActive = "\"$`\\"

// Settings is the payload carried by the launch script.
type Settings struct {
	Enabled        bool
	TargetAssembly string
	// UsesUserPreload is always false. Deriving it from the preload value needs a
	// per-platform rule for user-local library paths that does not exist yet.
	UsesUserPreload bool
}

// Boilerplate is the per-platform framing around the three assignment lines.
type Boilerplate struct {
	// Header is written verbatim before the assignments; it may span several lines.
	Header            string
	PreloadKey        string
	PreloadValue      string
	EnabledKey        string
	TargetAssemblyKey string
	// Diagnostics are echo lines written between the assignments and ExecLine.
	Diagnostics []string
	ExecLine    string
}

// HeaderLines returns the number of lines Header occupies.
func (b Boilerplate) HeaderLines() int {
	if b.Header == "" {
		return 0
	}
	return strings.Count(b.Header, "\n") + 1
}

// LayoutLines returns the number of lines Encode produces.
func (b Boilerplate) LayoutLines() int {
	return b.HeaderLines() + 3 + len(b.Diagnostics) + 1
}

// Codec maps Settings to and from launch script text.
type Codec interface {
	Encode(settings Settings, bp Boilerplate) string
	Decode(lines []string, bp Boilerplate) (Settings, error)
}

// PositionalCodec reads the assignment lines by fixed index.
type PositionalCodec struct{}

// Validate reports ErrUnencodable when settings would not survive Encode and Decode
// unchanged, or would be interpreted by the shell running the script.
func Validate(settings Settings) error {
	target := settings.TargetAssembly
	for _, r := range target {
		if (unicode.IsControl(r) && r != '\t') || strings.ContainsRune(shellActive, r) {
			return fmt.Errorf("%w: "+messages.LaunchConfigTargetCharFmt, ErrUnencodable, target, r)
		}
	}
	if strings.HasPrefix(target, ";") || strings.HasSuffix(target, ";") {
		return fmt.Errorf("%w: "+messages.LaunchConfigTargetEdgeFmt, ErrUnencodable, target)
	}
	return nil
}

// Encode renders settings inside bp. The exec line is written without a trailing newline.
// Encode does not check settings; callers writing to disk run Validate first.
func (PositionalCodec) Encode(settings Settings, bp Boilerplate) string {
	var b strings.Builder
	if bp.Header != "" {
		b.WriteString(bp.Header)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s=%s;\n", bp.PreloadKey, bp.PreloadValue)
	fmt.Fprintf(&b, "%s=%s;\n", bp.EnabledKey, strings.ToUpper(fmt.Sprint(settings.Enabled)))
	fmt.Fprintf(&b, "%s=\"%s\";\n", bp.TargetAssemblyKey, settings.TargetAssembly)
	for _, line := range bp.Diagnostics {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(bp.ExecLine)
	return b.String()
}

// Decode parses the assignment lines of a script framed by bp. Input shorter than the
// full layout, an assignment without '=', or an enabled flag other than true/false
// fails with ErrConfigParse and a zero Settings.
func (PositionalCodec) Decode(lines []string, bp Boilerplate) (Settings, error) {
	if want := bp.LayoutLines(); len(lines) < want {
		return Settings{}, fmt.Errorf("%w: "+messages.LaunchConfigTooFewLinesFmt, ErrConfigParse, len(lines), want)
	}
	base := bp.HeaderLines()

	if _, err := assignmentValue(lines, base); err != nil {
		return Settings{}, err
	}

	rawEnabled, err := assignmentValue(lines, base+1)
	if err != nil {
		return Settings{}, err
	}
	enabled, err := parseEnabled(rawEnabled)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: "+messages.LaunchConfigInvalidBoolFmt, ErrConfigParse, base+2, rawEnabled)
	}

	rawTarget, err := assignmentValue(lines, base+2)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Enabled:        enabled,
		TargetAssembly: strings.Trim(strings.TrimSpace(rawTarget), "\";"),
	}, nil
}

// PreloadValue returns the raw preload assignment value from a script framed by bp.
func PreloadValue(lines []string, bp Boilerplate) (string, error) {
	if want := bp.LayoutLines(); len(lines) < want {
		return "", fmt.Errorf("%w: "+messages.LaunchConfigTooFewLinesFmt, ErrConfigParse, len(lines), want)
	}
	value, err := assignmentValue(lines, bp.HeaderLines())
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSpace(value), ";"), nil
}

// SplitLines splits script text into lines, dropping carriage returns.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func assignmentValue(lines []string, idx int) (string, error) {
	_, value, ok := strings.Cut(lines[idx], "=")
	if !ok {
		return "", fmt.Errorf("%w: "+messages.LaunchConfigMissingAssignFmt, ErrConfigParse, idx+1, lines[idx])
	}
	return value, nil
}

func parseEnabled(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), ";"))) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, ErrConfigParse
	}
}
