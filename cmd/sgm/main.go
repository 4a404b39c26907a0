package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sprintgm/sprintgm/internal/config"
	"github.com/sprintgm/sprintgm/internal/renamer"
	"github.com/sprintgm/sprintgm/internal/reporter"
	"github.com/sprintgm/sprintgm/internal/scanner"
	"github.com/sprintgm/sprintgm/internal/ui"
)

var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath   string
	dirFlag      string
	outputFmt    string
	folderRename bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sgm",
	Short: "Sprint game asset manager",
	Long: `sgm manages per-game asset bundles for the Sprint emulator front-end:
ROMs, configs, JSON metadata and image variants sharing one basename are
discovered, grouped, and renamed or moved together as a single operation.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

var scanCmd = &cobra.Command{
	Use:   "scan [folder]",
	Short: "Scan a games folder and report its asset bundles",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		root, err := resolveRoot(cfg, args)
		if err != nil {
			return err
		}

		result := scanner.New(cfg).Scan(root)

		rptr := reporter.New(os.Stdout, reporter.OutputFormat(outputFmt))
		if err := rptr.Report(result); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <old-basename> <new-basename>",
	Short: "Rename every file of a game bundle in one atomic batch",
	Long: `Renames all files classified under the old basename, preserving each
file's suffix pattern. With --folder, the basename names a subfolder: its
companion files are renamed along with the subfolder itself, and ROM or
config files beside the folder are left alone.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldBase, newBase := args[0], args[1]
		if err := renamer.ValidateBasename(newBase); err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		dir, err := resolveRoot(cfg, nil)
		if err != nil {
			return err
		}

		r := renamer.New(scanner.New(cfg).Classifier())

		if folderRename {
			count, err := renameFolder(r, dir, oldBase, newBase)
			if err != nil {
				return err
			}
			fmt.Printf("Renamed folder %q to %q (%d companion files)\n", oldBase, newBase, count)
			return nil
		}

		moves, err := r.PlanRename(dir, oldBase, newBase)
		if err != nil {
			return err
		}
		if len(moves) == 0 {
			return fmt.Errorf("no files found for basename %q in %s", oldBase, dir)
		}
		if err := applyMoves(moves); err != nil {
			return err
		}

		fmt.Printf("Renamed %q to %q (%d files)\n", oldBase, newBase, len(moves))
		return nil
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <basename> <destination-folder>",
	Short: "Move every file of a game bundle to another folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, dst := args[0], args[1]

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		src, err := resolveRoot(cfg, nil)
		if err != nil {
			return err
		}

		info, err := os.Stat(dst)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("destination is not a directory: %s", dst)
		}

		r := renamer.New(scanner.New(cfg).Classifier())
		moves, err := r.PlanMove(src, dst, base)
		if err != nil {
			return err
		}
		if len(moves) == 0 {
			return fmt.Errorf("no files found for basename %q in %s", base, src)
		}

		if err := applyMoves(moves); err != nil {
			return err
		}

		fmt.Printf("Moved %q to %s (%d files)\n", base, dst, len(moves))
		return nil
	},
}

var swapCmd = &cobra.Command{
	Use:   "swap <file-a> <file-b>",
	Short: "Exchange the identities of two files",
	Long: `Swaps two files by name, typically to reorder snapshot or overlay
slots. Missing files make this a no-op.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := renamer.Swap(args[0], args[1]); err != nil {
			return userError(err)
		}
		fmt.Printf("Swapped %s and %s\n", args[0], args[1])
		return nil
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse [folder]",
	Short: "Browse asset bundles interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		root, err := resolveRoot(cfg, args)
		if err != nil {
			return err
		}

		s := scanner.New(cfg)
		model := ui.NewBrowseModel(root, s, s.Scan(root))
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("browser failed: %w", err)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the sgm configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file if none exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.EnsureConfigExists()
		if err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}
		fmt.Printf("Config file: %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("root_folder: %s\n", cfg.RootFolder)
		fmt.Printf("rom_extensions: %v\n", cfg.RomExtensions)
		fmt.Printf("use_hidden_attribute: %v\n", cfg.UseHiddenAttribute)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "games folder (overrides config root_folder)")

	scanCmd.Flags().StringVarP(&outputFmt, "format", "f", "summary", "output format (summary, table, json, yaml)")
	renameCmd.Flags().BoolVar(&folderRename, "folder", false, "rename a subfolder and its companion files")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(swapCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config from --config or the default location
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return nil, err
		}
	}
	return config.Load(path)
}

// resolveRoot picks the working folder: positional arg, --dir flag,
// configured root folder, then the current directory.
func resolveRoot(cfg *config.Config, args []string) (string, error) {
	switch {
	case len(args) > 0 && args[0] != "":
		return filepath.Abs(args[0])
	case dirFlag != "":
		return filepath.Abs(dirFlag)
	case cfg.RootFolder != "":
		return cfg.RootFolder, nil
	}
	return os.Getwd()
}

// renameFolder renames a subfolder along with its companion files. Both
// collision checks run before any file is touched: a rejected rename must
// leave the tree exactly as it was. The companion files move first so a
// folder-rename failure leaves them still attached to the old folder name.
func renameFolder(r *renamer.Renamer, dir, oldBase, newBase string) (int, error) {
	oldDir := filepath.Join(dir, oldBase)
	newDir := filepath.Join(dir, newBase)

	info, err := os.Stat(oldDir)
	if err != nil || !info.IsDir() {
		return 0, fmt.Errorf("no such folder: %s", oldDir)
	}
	if _, err := os.Stat(newDir); err == nil {
		return 0, fmt.Errorf("folder already exists: %s", newDir)
	}

	moves, err := r.PlanFolderRename(dir, oldBase, newBase)
	if err != nil {
		return 0, err
	}
	if err := applyMoves(moves); err != nil {
		return 0, err
	}

	if err := os.Rename(oldDir, newDir); err != nil {
		return len(moves), fmt.Errorf("companion files renamed, but renaming folder failed: %w", err)
	}
	return len(moves), nil
}

// applyMoves executes a planned batch and converts engine errors into
// user-facing messages. Failures are always printed in full: a silently
// failed rename leaves assets orphaned under temporary names.
func applyMoves(moves []renamer.Move) error {
	if err := renamer.Apply(moves); err != nil {
		return userError(err)
	}
	return nil
}

func userError(err error) error {
	var rerr *renamer.Error
	if errors.As(err, &rerr) {
		return errors.New(rerr.UserMessage())
	}
	return err
}
