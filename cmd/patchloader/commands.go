package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/patch-loader/internal/config"
	"github.com/conn-castle/patch-loader/internal/launchconfig"
	"github.com/conn-castle/patch-loader/internal/loader"
	"github.com/conn-castle/patch-loader/internal/messages"
	"github.com/conn-castle/patch-loader/internal/upgrade"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func printStatus(out io.Writer, s *session) {
	m := s.manager
	_, _ = fmt.Fprintf(out, messages.StatusPlatformFmt, m.Platform().Name)
	if !m.PlatformSupported() {
		_, _ = fmt.Fprintf(out, messages.StatusUnsupportedFmt, m.Platform().Name)
		return
	}
	_, _ = fmt.Fprintf(out, messages.StatusGameDirFmt, s.cfg.Game.Dir)
	_, _ = fmt.Fprintf(out, messages.StatusCapabilityFmt, yesNo(m.PlatformSupported()), yesNo(m.CanEnable()), yesNo(m.RequiresRestart()))

	artifact := color.YellowString(messages.StatusNotInstalled)
	if m.IsInstalled() {
		artifact = color.GreenString(messages.StatusInstalled)
	}
	_, _ = fmt.Fprintf(out, messages.StatusInstalledFmt, artifact, m.LoaderPath())
	_, _ = fmt.Fprintf(out, messages.StatusUpgradeFmt, m.Upgrade().UpdateState())

	if !m.ConfigExists() {
		_, _ = fmt.Fprintf(out, messages.StatusConfigFmt, color.YellowString(messages.StatusConfigMissing), m.ConfigPath())
		return
	}
	settings, err := m.ReadConfig()
	if err != nil {
		_, _ = fmt.Fprintf(out, messages.StatusConfigFmt, color.RedString(messages.StatusConfigInvalid), m.ConfigPath())
		return
	}
	state := color.YellowString(messages.LoaderStatusDisabled)
	if settings.Enabled {
		state = color.GreenString(messages.LoaderStatusEnabled)
	}
	_, _ = fmt.Fprintf(out, messages.StatusConfigFmt, state, m.ConfigPath())
	target := settings.TargetAssembly
	if target == "" {
		target = messages.StatusTargetNotSet
	}
	_, _ = fmt.Fprintf(out, messages.StatusTargetFmt, target)
	if !m.ConfigMatchesExpected() {
		_, _ = fmt.Fprintf(out, messages.StatusTargetDriftFmt, m.ExpectedTargetAssembly())
	}
	_, _ = fmt.Fprintf(out, messages.StatusPreloadFmt, yesNo(settings.UsesUserPreload))
}

func yesNo(v bool) string {
	if v {
		return color.GreenString(messages.StatusYes)
	}
	return color.YellowString(messages.StatusNo)
}

func requireSupported(m *loader.Manager) error {
	if m.PlatformSupported() {
		return nil
	}
	return fmt.Errorf(messages.LoaderPlatformUnsupportedFmt+": %w", m.Platform().Name, loader.ErrPlatformUnsupported)
}

func newInstallCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			m := s.manager
			if err := requireSupported(m); err != nil {
				return err
			}
			if strings.TrimSpace(m.ExpectedTargetAssembly()) == "" {
				return fmt.Errorf(messages.InstallNeedsTargetFmt, config.EnvTargetAssembly)
			}
			if err := launchconfig.Validate(m.DefaultSettings()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			approved, err := confirmAction(cmd, yes, messages.InstallUse, messages.InstallPromptTitle, m.InstallMessage())
			if err != nil {
				return err
			}
			if !approved {
				_, _ = fmt.Fprintln(out, messages.InstallCancelled)
				return nil
			}

			if err := m.Install(); err != nil {
				return err
			}
			if err := m.WriteConfig(m.DefaultSettings()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.InstallDoneFmt, m.LoaderPath(), m.ConfigPath())
			if m.RequiresRestart() {
				_, _ = fmt.Fprintln(out, messages.InstallRestartNote)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.InstallFlagYes)
	return cmd
}

func newUninstallCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   messages.UninstallUse,
		Short: messages.UninstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			m := s.manager
			if err := requireSupported(m); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			approved, err := confirmAction(cmd, yes, messages.UninstallUse, messages.UninstallPromptTitle, m.UninstallMessage())
			if err != nil {
				return err
			}
			if !approved {
				_, _ = fmt.Fprintln(out, messages.UninstallCancelled)
				return nil
			}
			if err := m.Uninstall(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.UninstallDoneFmt, s.cfg.Game.Dir)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.InstallFlagYes)
	return cmd
}

// newToggleCmd builds `enable` when enabled is true and `disable` otherwise.
func newToggleCmd(opts *rootOptions, enabled bool) *cobra.Command {
	use, short, doneFmt := messages.DisableUse, messages.DisableShort, messages.DisableDoneFmt
	if enabled {
		use, short, doneFmt = messages.EnableUse, messages.EnableShort, messages.EnableDoneFmt
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			m := s.manager
			if enabled {
				err = m.Enable()
			} else {
				err = m.Disable()
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), doneFmt, m.ConfigPath())
			return nil
		},
	}
}

func newUpgradeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.UpgradeUse,
		Short: messages.UpgradeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			m := s.manager
			if err := requireSupported(m); err != nil {
				return err
			}
			report, err := upgrade.Drive(m.Upgrade())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if report.Initial == upgrade.Latest {
				_, _ = fmt.Fprintln(out, messages.UpgradeUpToDate)
				return nil
			}
			_, _ = fmt.Fprintf(out, messages.UpgradeDoneFmt, report.Initial, report.Final)
			if m.RequiresRestart() {
				_, _ = fmt.Fprintln(out, messages.InstallRestartNote)
			}
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var showDiff bool
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			m := s.manager
			if err := requireSupported(m); err != nil {
				return err
			}
			text, err := m.ReadConfigText()
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf(messages.ConfigMissingFmt, m.ConfigPath())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !showDiff {
				_, _ = fmt.Fprint(out, text)
				if !strings.HasSuffix(text, "\n") {
					_, _ = fmt.Fprintln(out)
				}
				return nil
			}
			diff := launchconfig.Diff(m.Platform().ConfigFileName, text, m.BuildConfig(regenerated(m, text)))
			if diff == "" {
				_, _ = fmt.Fprintln(out, messages.ConfigNoDiff)
				return nil
			}
			_, _ = fmt.Fprint(out, diff)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showDiff, "diff", false, messages.ConfigFlagDiff)
	return cmd
}

// regenerated returns the settings `enable`/`disable` would write: the expected target
// with the enabled flag carried over from text when it decodes.
func regenerated(m *loader.Manager, text string) launchconfig.Settings {
	settings := m.DefaultSettings()
	if current, err := m.LoadConfig(text); err == nil {
		settings.Enabled = current.Enabled
	}
	return settings
}
