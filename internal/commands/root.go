package commands

import (
	"errors"
	"fmt"

	pathiter "github.com/Ning0612/Pathiter"
	"github.com/Ning0612/Pathiter/internal/config"
	"github.com/Ning0612/Pathiter/internal/logger"
	"github.com/Ning0612/Pathiter/internal/walkstats"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the pathiter CLI
func RootCmd() *cobra.Command {
	var (
		configPath  string
		globPattern string
		rePattern   string
		showStats   bool
	)

	cmd := &cobra.Command{
		Use:   "pathiter [dir]",
		Short: "Walk a directory tree and print each path, depth-first",
		Long: `pathiter walks the tree rooted at dir (default: the current
directory) depth-first and prints one path per line. Ordering, inclusion
and error handling are controlled by flags; defaults can be kept in a
pathiter.yaml config file.

Unreadable directories are logged and skipped unless --strict is set.
--follow descends into symlinked directories and performs no cycle
detection, so a self-referential link will walk forever.`,
		Version:       pathiter.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg)

			if err := initLogger(cfg.Log); err != nil {
				return err
			}
			defer logger.Shutdown()

			root := ""
			if len(args) == 1 {
				root = args[0]
			}

			stats := walkstats.NewCollector()
			opts, err := buildOptions(cfg.Walk, stats)
			if err != nil {
				return err
			}
			if globPattern != "" {
				sel, err := pathiter.Glob(globPattern)
				if err != nil {
					return err
				}
				opts.FilterFiles = sel
			}
			if rePattern != "" {
				sel, err := pathiter.Regex(rePattern)
				if err != nil {
					return err
				}
				if opts.FilterFiles != nil {
					opts.FilterFiles = pathiter.Any(opts.FilterFiles, sel)
				} else {
					opts.FilterFiles = sel
				}
			}

			w, err := pathiter.New(root, opts)
			if err != nil {
				return err
			}
			defer w.Close()

			out := cmd.OutOrStdout()
			for w.Next() {
				fmt.Fprintln(out, w.Path())
				// a nil entry is the root itself, yielded only when
				// directories are printed at all
				if e := w.Entry(); e == nil || e.Kind() == pathiter.KindDir {
					stats.Dir()
				} else {
					stats.File()
				}
			}
			if err := w.Err(); err != nil {
				return fmt.Errorf("walk aborted: %w", err)
			}

			if showStats {
				fmt.Fprintln(cmd.ErrOrStderr(), stats.Snapshot())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to a pathiter.yaml config file")
	flags.Bool("bottom-up", false, "Yield each directory after its contents instead of before")
	flags.Bool("include-root", false, "Include the root directory itself in the output")
	flags.BoolP("files-only", "f", false, "Print only file paths, still descending into directories")
	flags.BoolP("sort", "s", false, "Sort each directory's children by name")
	flags.Bool("reverse", false, "Reverse the sort order (only meaningful with --sort)")
	flags.BoolP("follow", "L", false, "Follow symlinks to directories (no cycle detection)")
	flags.Bool("relative", false, "Print paths relative to the root")
	flags.StringArray("exclude", nil, "Glob pattern excluding files and directories alike (repeatable)")
	flags.StringArray("exclude-dirs", nil, "Glob pattern excluding directories only (repeatable)")
	flags.Bool("no-vcs", false, "Exclude version control directories and files")
	flags.Bool("no-dots", false, "Exclude dotfiles and dot-directories")
	flags.Bool("strict", false, "Abort on the first unreadable directory instead of skipping it")
	flags.StringVar(&globPattern, "glob", "", "Print only files whose name matches this glob")
	flags.StringVar(&rePattern, "regex", "", "Print only files whose name contains a match of this regexp")
	flags.BoolVar(&showStats, "stats", false, "Print a summary line to stderr when done")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")
	flags.String("log-file", "", "Also write logs to this file (rotated)")

	return cmd
}

// loadConfig reads the config file. An explicit path must exist; the
// default search locations are allowed to come up empty.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == "" && errors.Is(err, config.ErrConfigNotFound) {
		return &config.Config{}, nil
	}
	return nil, err
}

// applyFlagOverrides copies every flag the user actually set over the
// config file defaults
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	walk := &cfg.Walk
	if flags.Changed("bottom-up") {
		walk.BottomUp, _ = flags.GetBool("bottom-up")
	}
	if flags.Changed("include-root") {
		walk.IncludeRoot, _ = flags.GetBool("include-root")
	}
	if flags.Changed("files-only") {
		walk.FilesOnly, _ = flags.GetBool("files-only")
	}
	if flags.Changed("sort") {
		walk.Sort, _ = flags.GetBool("sort")
	}
	if flags.Changed("reverse") {
		walk.SortReverse, _ = flags.GetBool("reverse")
	}
	if flags.Changed("follow") {
		walk.FollowSymlinks, _ = flags.GetBool("follow")
	}
	if flags.Changed("relative") {
		walk.Relative, _ = flags.GetBool("relative")
	}
	if flags.Changed("exclude") {
		walk.Exclude, _ = flags.GetStringArray("exclude")
	}
	if flags.Changed("exclude-dirs") {
		walk.ExcludeDirs, _ = flags.GetStringArray("exclude-dirs")
	}
	if flags.Changed("no-vcs") {
		walk.NoVCS, _ = flags.GetBool("no-vcs")
	}
	if flags.Changed("no-dots") {
		walk.NoDots, _ = flags.GetBool("no-dots")
	}
	if flags.Changed("strict") {
		walk.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
}

func initLogger(cfg config.LogConfig) error {
	logCfg := logger.Config{
		Level:   logger.ParseLevel(cfg.Level),
		Format:  logger.ParseFormat(cfg.Format),
		Outputs: []logger.OutputConfig{{Type: logger.OutputStderr}},
	}
	if cfg.File != "" {
		logCfg.Outputs = append(logCfg.Outputs, logger.OutputConfig{Type: logger.OutputFile})
		logCfg.File = logger.FileConfig{
			Enabled:    true,
			Path:       cfg.File,
			MaxSizeMB:  cfg.MaxSizeMB,
			MaxAgeDays: cfg.MaxAgeDays,
			MaxBackups: cfg.MaxBackups,
		}
	}
	return logger.Init(logCfg)
}

// buildOptions turns the resolved walk config into traversal options.
// Exclude globs and the no-vcs/no-dots shorthands become selectors; the
// error hook logs and counts skipped subtrees, or aborts under strict.
func buildOptions(walk config.WalkConfig, stats *walkstats.Collector) (pathiter.Options, error) {
	opts := pathiter.Options{
		BottomUp:       walk.BottomUp,
		IncludeRoot:    walk.IncludeRoot,
		FilesOnly:      walk.FilesOnly,
		Sort:           walk.Sort,
		SortReverse:    walk.SortReverse,
		FollowSymlinks: walk.FollowSymlinks,
		Relative:       walk.Relative,
	}

	var generic, dirOnly, fileOnly []pathiter.Selector
	for _, pattern := range walk.Exclude {
		sel, err := pathiter.Glob(pattern)
		if err != nil {
			return pathiter.Options{}, err
		}
		generic = append(generic, sel)
	}
	for _, pattern := range walk.ExcludeDirs {
		sel, err := pathiter.Glob(pattern)
		if err != nil {
			return pathiter.Options{}, err
		}
		dirOnly = append(dirOnly, sel)
	}

	// The shorthands ride along with whichever exclusion form is in
	// play, since generic and specific excludes cannot be combined
	specific := len(dirOnly) > 0
	if walk.NoVCS {
		if specific {
			dirOnly = append(dirOnly, pathiter.VCSDirs)
			fileOnly = append(fileOnly, pathiter.VCSFiles)
		} else {
			generic = append(generic, pathiter.VCS)
		}
	}
	if walk.NoDots {
		if specific {
			dirOnly = append(dirOnly, pathiter.Dotfiles)
			fileOnly = append(fileOnly, pathiter.Dotfiles)
		} else {
			generic = append(generic, pathiter.Dotfiles)
		}
	}

	if len(generic) > 0 {
		opts.Exclude = pathiter.Any(generic...)
	}
	if len(dirOnly) > 0 {
		opts.ExcludeDirs = pathiter.Any(dirOnly...)
	}
	if len(fileOnly) > 0 {
		opts.ExcludeFiles = pathiter.Any(fileOnly...)
	}

	if walk.Strict {
		opts.OnError = func(err error) error { return err }
	} else {
		opts.OnError = func(err error) error {
			logger.Get().Warn("skipping unreadable directory", "error", err)
			stats.Skip()
			return nil
		}
	}

	return opts, nil
}
