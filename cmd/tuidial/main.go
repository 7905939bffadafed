// Package main provides the CLI entrypoint for tuidial.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuidial/internal/config"
	"github.com/verte-zerg/tuidial/internal/geometry"
	"github.com/verte-zerg/tuidial/internal/layout"
	"github.com/verte-zerg/tuidial/internal/model"
	"github.com/verte-zerg/tuidial/internal/report"
	"github.com/verte-zerg/tuidial/internal/tui"
)

const (
	defaultStartDeg     = 0.0
	defaultEndDeg       = 360.0
	terminalCellAspect  = 2.0
	terminalWidthBackup = 80
	terminalRowsBackup  = 24
)

var defaults = model.DefaultTerminalConfig()

var (
	dialDots         int
	dialPadding      float64
	dialTouchPadding float64
	dialMovingDiff   float64
	dialSpacing      float64
	dialSmallDot     float64
	dialBigDot       float64
	dialStrokeWidth  float64
	dialStartDeg     float64
	dialEndDeg       float64
	dialDebugLog     string

	layoutRadius float64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuidial",
		Short:         "Drag a marker around a dotted dial",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDialCmd,
	}

	addDialFlags(rootCmd)
	rootCmd.Flags().StringVar(&dialDebugLog, "debug-log", "", "write gesture debug log to this path (bare flag: state directory)")
	rootCmd.Flags().Lookup("debug-log").NoOptDefVal = config.DefaultLogPath()

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLayoutCmd())

	return rootCmd
}

func addDialFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&dialDots, "dots", defaults.Dots, "number of dots on the dial")
	cmd.Flags().Float64Var(&dialPadding, "padding", defaults.Padding, "space between the dial and the window edge")
	cmd.Flags().Float64Var(&dialTouchPadding, "touch-padding", defaults.TouchPadding, "half width of the ring that accepts drags")
	cmd.Flags().Float64Var(&dialMovingDiff, "moving-diff", defaults.MovingDiff, "max distance between pointer and marker")
	cmd.Flags().Float64Var(&dialSpacing, "spacing", defaults.SpacingBetweenDotAndLine, "gap between a dot and the stroke")
	cmd.Flags().Float64Var(&dialSmallDot, "small-dot", defaults.SmallDotSize, "small dot diameter")
	cmd.Flags().Float64Var(&dialBigDot, "big-dot", defaults.BigDotSize, "big dot diameter")
	cmd.Flags().Float64Var(&dialStrokeWidth, "stroke-width", defaults.MainStrokeWidth, "main stroke width")
	cmd.Flags().Float64Var(&dialStartDeg, "start", defaultStartDeg, "start angle in degrees")
	cmd.Flags().Float64Var(&dialEndDeg, "end", defaultEndDeg, "end angle in degrees")
}

func runDialCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveDialConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openDebugLogger(dialDebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	m := tui.NewModel(cfg, logger)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed dial layout",
		Args:  cobra.NoArgs,
		RunE:  runLayoutCmd,
	}
	addDialFlags(cmd)
	cmd.Flags().Float64Var(&layoutRadius, "radius", 0, "dial radius (default: fit the terminal)")
	return cmd
}

func runLayoutCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveDialConfig(cmd)
	if err != nil {
		return err
	}
	if layoutRadius < 0 {
		return fmt.Errorf("--radius must be >= 0")
	}

	var circle geometry.Circle
	if layoutRadius > 0 {
		circle = geometry.NewCircleAt(model.Point{}, layoutRadius)
	} else {
		cols, rows := terminalSize()
		circle = geometry.NewCircle(float64(cols), float64(rows)*terminalCellAspect, cfg.Padding)
	}
	l := layout.Compute(cfg, circle)
	if err := report.WriteLayout(cmd.OutOrStdout(), l); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return terminalWidthBackup, terminalRowsBackup
	}
	return width, height
}

func resolveDialConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "dots", &dialDots, fileCfg.Dial.Dots)
	applyFloatConfig(cmd, "padding", &dialPadding, fileCfg.Dial.Padding)
	applyFloatConfig(cmd, "touch-padding", &dialTouchPadding, fileCfg.Dial.TouchPadding)
	applyFloatConfig(cmd, "moving-diff", &dialMovingDiff, fileCfg.Dial.MovingDiff)
	applyFloatConfig(cmd, "spacing", &dialSpacing, fileCfg.Dial.Spacing)
	applyFloatConfig(cmd, "small-dot", &dialSmallDot, fileCfg.Dial.SmallDot)
	applyFloatConfig(cmd, "big-dot", &dialBigDot, fileCfg.Dial.BigDot)
	applyFloatConfig(cmd, "stroke-width", &dialStrokeWidth, fileCfg.Dial.StrokeWidth)
	applyFloatConfig(cmd, "start", &dialStartDeg, fileCfg.Dial.Start)
	applyFloatConfig(cmd, "end", &dialEndDeg, fileCfg.Dial.End)

	cfg := defaults
	cfg.Dots = dialDots
	cfg.Padding = dialPadding
	cfg.TouchPadding = dialTouchPadding
	cfg.MovingDiff = dialMovingDiff
	cfg.SpacingBetweenDotAndLine = dialSpacing
	cfg.SmallDotSize = dialSmallDot
	cfg.BigDotSize = dialBigDot
	cfg.MainStrokeWidth = dialStrokeWidth
	cfg.StartPosition = geometry.DegreesToRadians(dialStartDeg)
	cfg.EndPosition = geometry.DegreesToRadians(dialEndDeg)
	applyColors(&cfg.Colors, fileCfg.Colors)

	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func applyColors(target *model.Colors, colors config.ColorsConfig) {
	set := func(dst *string, value *string) {
		if value != nil && *value != "" {
			*dst = *value
		}
	}
	set(&target.Background, colors.Background)
	set(&target.MainStroke, colors.MainStroke)
	set(&target.MainDots, colors.MainDots)
	set(&target.UserStroke, colors.UserStroke)
	set(&target.UserStrokeShadow, colors.UserStrokeShadow)
	set(&target.UserDot, colors.UserDot)
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(cfg model.Config) error {
	if cfg.Dots < 1 {
		return fmt.Errorf("--dots must be >= 1")
	}
	if cfg.Padding < 0 {
		return fmt.Errorf("--padding must be >= 0")
	}
	if cfg.TouchPadding < 0 {
		return fmt.Errorf("--touch-padding must be >= 0")
	}
	if cfg.MovingDiff <= 0 {
		return fmt.Errorf("--moving-diff must be > 0")
	}
	if cfg.SpacingBetweenDotAndLine < 0 {
		return fmt.Errorf("--spacing must be >= 0")
	}
	if cfg.SmallDotSize < 0 || cfg.BigDotSize < 0 {
		return fmt.Errorf("--small-dot and --big-dot must be >= 0")
	}
	if cfg.MainStrokeWidth <= 0 {
		return fmt.Errorf("--stroke-width must be > 0")
	}
	if cfg.StartPosition < 0 || cfg.StartPosition >= geometry.FullTurn {
		return fmt.Errorf("--start must be in [0, 360)")
	}
	if cfg.StartPosition >= cfg.EndPosition {
		return fmt.Errorf("--start must be less than --end")
	}
	if cfg.Span() > geometry.FullTurn+1e-9 {
		return fmt.Errorf("--end - --start must not exceed 360")
	}
	return nil
}

// openDebugLogger returns a debug logger writing to path, or a discarding
// logger when path is empty.
func openDebugLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	logErrf("Writing debug log to %s\n", path)
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	closeLog := func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}
	return logger, closeLog, nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuidial configuration
# Uncomment a value to enable it. CLI flags override config values.

[dial]
# dots = %d                 # Number of dots on the dial
# padding = %.1f            # Space between the dial and the window edge
# touch-padding = %.1f      # Half width of the ring that accepts drags
# moving-diff = %.1f        # Max distance between pointer and marker
# spacing = %.1f            # Gap between a dot and the stroke
# small-dot = %.1f          # Small dot diameter
# big-dot = %.1f            # Big dot diameter
# stroke-width = %.1f       # Main stroke width
# start = %.0f              # Start angle in degrees
# end = %.0f                # End angle in degrees

[colors]
# background = %q
# main-stroke = %q
# main-dots = %q
# user-stroke = %q
# user-stroke-shadow = %q
# user-dot = %q
`,
		defaults.Dots,
		defaults.Padding,
		defaults.TouchPadding,
		defaults.MovingDiff,
		defaults.SpacingBetweenDotAndLine,
		defaults.SmallDotSize,
		defaults.BigDotSize,
		defaults.MainStrokeWidth,
		defaultStartDeg,
		defaultEndDeg,
		defaults.Colors.Background,
		defaults.Colors.MainStroke,
		defaults.Colors.MainDots,
		defaults.Colors.UserStroke,
		defaults.Colors.UserStrokeShadow,
		defaults.Colors.UserDot,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
