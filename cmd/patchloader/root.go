package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/conn-castle/patch-loader/internal/config"
	"github.com/conn-castle/patch-loader/internal/loader"
	"github.com/conn-castle/patch-loader/internal/logging"
	"github.com/conn-castle/patch-loader/internal/messages"
)

var (
	lookupEnv = os.LookupEnv
	hostGOOS  = runtime.GOOS
)

type rootOptions struct {
	configPath string
	gameDir    string
	logLevel   string
}

// session is the resolved settings and the manager built from them.
type session struct {
	cfg     *config.Config
	manager *loader.Manager
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultFileName, messages.RootFlagConfig)
	cmd.PersistentFlags().StringVar(&opts.gameDir, "game-dir", "", messages.RootFlagGameDir)
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", messages.RootFlagLogLevel)

	cmd.AddCommand(
		newStatusCmd(opts),
		newInstallCmd(opts),
		newUninstallCmd(opts),
		newToggleCmd(opts, true),
		newToggleCmd(opts, false),
		newUpgradeCmd(opts),
		newConfigCmd(opts),
		newDoctorCmd(opts),
	)
	return cmd
}

// open loads settings, applies flag overrides, and builds the manager for the active platform.
func (o *rootOptions) open(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(o.configPath, lookupEnv)
	if err != nil {
		return nil, fmt.Errorf(messages.RootLoadConfigFmt, err)
	}
	if o.gameDir != "" {
		dir, err := config.ExpandPath(o.gameDir)
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigExpandPathFmt, messages.RootFlagsSource, o.gameDir, err)
		}
		cfg.Game.Dir = dir
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(messages.RootFlagsSource); err != nil {
		return nil, fmt.Errorf(messages.RootLoadConfigFmt, err)
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	platform := loader.PlatformFor(cfg.PlatformOr(hostGOOS))
	m := loader.New(platform, loader.Options{
		Dir:                    cfg.Game.Dir,
		ExpectedTargetAssembly: cfg.Loader.TargetAssembly,
		Logger:                 logger,
	})
	return &session{cfg: cfg, manager: m}, nil
}
