package loader

import (
	"github.com/conn-castle/patch-loader/internal/artifacts"
	"github.com/conn-castle/patch-loader/internal/launchconfig"
	"github.com/conn-castle/patch-loader/internal/messages"
)

// Platform is the capability set of one operating system variant. Exactly one is
// active per process, chosen by PlatformFor.
type Platform struct {
	Name           string
	LoaderFileName string
	ConfigFileName string
	// ResourceID names the packaged artifact in artifacts.Embedded.
	ResourceID string
	// LoaderHash is the expected ContentHash of the packaged artifact.
	LoaderHash  string
	Boilerplate launchconfig.Boilerplate

	Supported       bool
	CanEnable       bool
	RequiresRestart bool

	InstallMessage   string
	UninstallMessage string
	// UpgradeName prefixes the coordinator's log lines.
	UpgradeName string
}

const launcherEchoPrefix = "[Cities_Loader]"

const macOSInstallMessage = "The game will be closed.\n\n" +
	"\tIMPORTANT!\n\n" +
	"If you use Paradox game launcher:\n" +
	"  1. Open main game directory (Cities.app) navigate to " +
	"     /Contents/Launcher directory and search for launcher-settings.json\n" +
	"  2. Make backup of that file (e.g. create copy with different name)\n" +
	"  3. Open launcher-settings.json using any text editor and change" +
	" 'exePath' value to '../../../Cities_Loader.sh' instead of" +
	" original '../MacOS/Cities'\n" +
	"  4. Save file and run game normally\n\n" +
	"---------------------------------------------------------------------\n" +
	"Or if don't use Paradox game launcher:\n" +
	"  1. Add './Cities_Loader.sh %command%' (without quotes) to the game Steam Set Launch Options\n" +
	"    in the Steam Client\n" +
	"  2. Run game normally\n" +
	"---------------------------------------------------------------------\n" +
	"If game won't launch remove commandline parameter or restore backup launcher-settings.json\n" +
	"and contact the mod author for more solutions"

const linuxInstallMessage = "The game will be closed.\n\n" +
	"\tIMPORTANT!\n\n" +
	"  1. Add './Cities_Loader.sh %command%' (without quotes) to the game Steam Set Launch Options\n" +
	"    in the Steam Client\n" +
	"  2. Run game normally\n" +
	"---------------------------------------------------------------------\n" +
	"If game won't launch remove the launch option and contact the mod author for more solutions"

const closingMessage = "The game will be closed.\n\n"

// MacOS is the darwin variant.
var MacOS = Platform{
	Name:           "darwin",
	LoaderFileName: "doorstop.dylib",
	ConfigFileName: "Cities_Loader.sh",
	ResourceID:     artifacts.MacOSDoorstop,
	LoaderHash:     "811d1df749d47a9fcea5958901d47842c8cdca55c144e3479495d6eb0a172cb6",
	Boilerplate: launchconfig.Boilerplate{
		Header: "#!/bin/sh\n" +
			"doorstop_libname=\"doorstop.dylib\"\n" +
			"doorstop_dir=$PWD\n" +
			"export DYLD_LIBRARY_PATH=${doorstop_dir}:${DYLD_LIBRARY_PATH};",
		PreloadKey:        "export DYLD_INSERT_LIBRARIES",
		PreloadValue:      "$doorstop_libname",
		EnabledKey:        "export DOORSTOP_ENABLED",
		TargetAssemblyKey: "export DOORSTOP_TARGET_ASSEMBLY",
		Diagnostics: diagnostics(
			"DOORSTOP_ENABLED",
			"DOORSTOP_TARGET_ASSEMBLY",
			"DYLD_INSERT_LIBRARIES",
			"DYLD_LIBRARY_PATH",
		),
		ExecLine: "./Cities.app/Contents/MacOS/Cities $@",
	},
	Supported:        true,
	CanEnable:        true,
	RequiresRestart:  false,
	InstallMessage:   macOSInstallMessage,
	UninstallMessage: closingMessage,
	UpgradeName:      "MacOSUpgrade",
}

// Linux is the linux variant.
var Linux = Platform{
	Name:           "linux",
	LoaderFileName: "doorstop.so",
	ConfigFileName: "Cities_Loader.sh",
	ResourceID:     artifacts.LinuxDoorstop,
	LoaderHash:     "4584c3a3521918d4dd08b8a503fc3edcdede1f0aaa1fcfbf6adbfb166a0f301f",
	Boilerplate: launchconfig.Boilerplate{
		Header: "#!/bin/sh\n" +
			"doorstop_libname=\"doorstop.so\"\n" +
			"doorstop_dir=$PWD\n" +
			"export LD_LIBRARY_PATH=${doorstop_dir}:${LD_LIBRARY_PATH};",
		PreloadKey:        "export LD_PRELOAD",
		PreloadValue:      "$doorstop_libname",
		EnabledKey:        "export DOORSTOP_ENABLED",
		TargetAssemblyKey: "export DOORSTOP_TARGET_ASSEMBLY",
		Diagnostics: diagnostics(
			"DOORSTOP_ENABLED",
			"DOORSTOP_TARGET_ASSEMBLY",
			"LD_PRELOAD",
			"LD_LIBRARY_PATH",
		),
		ExecLine: "./Cities.x64 $@",
	},
	Supported:        true,
	CanEnable:        true,
	RequiresRestart:  false,
	InstallMessage:   linuxInstallMessage,
	UninstallMessage: closingMessage,
	UpgradeName:      "LinuxUpgrade",
}

// Unsupported is used for every other OS. Nothing can be installed or enabled.
var Unsupported = Platform{
	Name:             "unsupported",
	Supported:        false,
	CanEnable:        false,
	RequiresRestart:  false,
	InstallMessage:   messages.LoaderUnsupportedMessage,
	UninstallMessage: messages.LoaderUnsupportedMessage,
	UpgradeName:      "UnsupportedUpgrade",
}

// PlatformFor returns the variant for goos.
func PlatformFor(goos string) Platform {
	switch goos {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		p := Unsupported
		if goos != "" {
			p.Name = goos
		}
		return p
	}
}

func diagnostics(vars ...string) []string {
	lines := []string{`echo "` + launcherEchoPrefix + ` Launching with Doorstop..."`}
	for _, v := range vars {
		lines = append(lines, `echo "`+launcherEchoPrefix+` `+v+`=$`+v+`"`)
	}
	return lines
}
