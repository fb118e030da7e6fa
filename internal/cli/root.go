package cli

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/catalog-editor/internal/assets"
	"github.com/ytget/catalog-editor/internal/config"
	"github.com/ytget/catalog-editor/internal/platform"
	"github.com/ytget/catalog-editor/internal/ui"
)

const (
	AppID   = "com.ytget.catalog-editor"
	AppName = "catalog-editor"
)

var version, commit, date = "dev", "none", "unknown"

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

// options holds the command line flags
type options struct {
	entries   int
	seed      uint64
	assetsDir string
	shaded    bool
	lines     bool
	fontSize  float32
	theme     string
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   AppName,
		Short: "Browse a translation catalog in a virtual list",
		Long: `catalog-editor shows a translation catalog as a virtual list ordered by
status: untranslated entries first, then invalid, fuzzy and the rest. Status
icons, bookmarks and row colours are derived from each entry.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.entries, "entries", config.DefaultSampleSize, "Number of entries in the generated sample catalog")
	flags.Uint64Var(&opts.seed, "seed", 1, "Seed of the sample catalog generator")
	flags.StringVar(&opts.assetsDir, "assets", "", "Directory with status icon PNGs (built-in icons if empty)")
	flags.BoolVar(&opts.shaded, "shaded", config.DefaultShadedRows, "Shade alternate rows")
	flags.BoolVar(&opts.lines, "lines", config.DefaultDisplayLines, "Show the line number column")
	flags.Float32Var(&opts.fontSize, "font-size", config.DefaultFontSize, "List font size (0 for the theme size)")
	flags.StringVar(&opts.theme, "theme", ui.ThemeSystem, "Theme variant: system, light or dark")

	return cmd
}

// Execute runs the root command
func Execute() error {
	cmd := newRootCmd(&options{})
	cmd.Version = version
	cmd.SetVersionTemplate(versionTemplate())
	return cmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("%s %s\n  commit: %s\n  built:  %s\n", AppName, version, commit, date)
	}
	return fmt.Sprintf("%s %s\n", AppName, version)
}

func validateTheme(name string) error {
	switch name {
	case ui.ThemeSystem, ui.ThemeLight, ui.ThemeDark:
		return nil
	}
	return fmt.Errorf("unknown theme %q", name)
}

// flagOverrides collects the flags given on the command line
func flagOverrides(cmd *cobra.Command, opts *options) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("entries") {
		o.SampleSize = &opts.entries
	}
	if flags.Changed("assets") {
		o.IconDir = &opts.assetsDir
	}
	if flags.Changed("shaded") {
		o.ShadedRows = &opts.shaded
	}
	if flags.Changed("lines") {
		o.DisplayLines = &opts.lines
	}
	if flags.Changed("font-size") {
		o.FontSize = &opts.fontSize
	}
	return o
}

// iconProvider returns the icons of dir, or the built-in set
func iconProvider(dir string) (assets.Provider, error) {
	if dir == "" {
		return assets.Builtin(), nil
	}
	resolved, err := platform.ResolveDirectory(dir)
	if err != nil {
		return nil, fmt.Errorf("icon directory %s: %w", dir, err)
	}
	return assets.FromDir(resolved), nil
}

func runEditor(cmd *cobra.Command, opts *options) error {
	if err := validateTheme(opts.theme); err != nil {
		return err
	}

	log.Printf("%s v%s starting...", AppName, version)

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewEditorTheme(opts.theme))

	settings := config.NewSettings(a)
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	settings.ApplyOverrides(env)
	settings.ApplyOverrides(flagOverrides(cmd, opts))

	w := a.NewWindow(AppName)
	w.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	icons, err := iconProvider(settings.GetIconDirectory())
	if err != nil {
		return err
	}
	if _, err := ui.NewEditorUI(w, settings, icons, opts.seed); err != nil {
		return fmt.Errorf("create editor: %w", err)
	}

	w.ShowAndRun()
	return nil
}
