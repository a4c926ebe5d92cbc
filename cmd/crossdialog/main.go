// Package main is the crossdialog command-line front end.
//
// It exposes the library through a zenity-like surface, useful from
// shell scripts:
//
//	crossdialog open --filter 'Images|*.png *.jpg'
//	crossdialog open --multiple
//	crossdialog save --title 'Export as'
//	crossdialog folder --start-dir ~/src
//
// Selected paths are printed one per line. Exit status follows zenity's
// convention: 0 on selection, 1 when the dialog was dismissed, 2 on
// failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tejashwikalptaru/crossdialog"
	"github.com/tejashwikalptaru/crossdialog/internal/logger"
)

var (
	flagTitle    string
	flagStartDir string
	flagPicker   string
	flagLogLevel string
	flagFilters  []string

	flagMultiple bool
)

var rootCmd = &cobra.Command{
	Use:           "crossdialog",
	Short:         "Show the desktop's native file and folder selection dialogs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Select an existing file (or several with --multiple)",
	Args:  cobra.NoArgs,
	RunE:  runOpen,
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Pick a target path to save to",
	Args:  cobra.NoArgs,
	RunE:  runSave,
}

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Select a directory",
	Args:  cobra.NoArgs,
	RunE:  runFolder,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagTitle, "title", "", "dialog title")
	pf.StringVar(&flagStartDir, "start-dir", "", "directory the dialog starts in")
	pf.StringVar(&flagPicker, "picker", "", "force a backend (kdialog, portal, zenity, osascript, native)")
	pf.StringVar(&flagLogLevel, "log-level", "", "log verbosity (DEBUG, INFO, WARN, ERROR)")

	openCmd.Flags().StringArrayVar(&flagFilters, "filter", nil,
		"file-type filter, 'Description|*.pat *.pat' or bare patterns; repeatable")
	openCmd.Flags().BoolVar(&flagMultiple, "multiple", false, "allow selecting several files")

	rootCmd.AddCommand(openCmd, saveCmd, folderCmd)
}

func newSession() (*crossdialog.Session, error) {
	cfg := crossdialog.Config{}

	if flagPicker != "" {
		cfg.Pickers = []string{flagPicker}
	}
	if flagLogLevel != "" {
		level, ok := logger.ParseLevel(flagLogLevel)
		if !ok {
			return nil, fmt.Errorf("invalid log level %q", flagLogLevel)
		}
		cfg.Logger = logger.NewLogger(logger.Config{Level: level, Format: "text"})
	}

	return crossdialog.New(cfg)
}

func options() crossdialog.Options {
	return crossdialog.Options{
		Title:    flagTitle,
		StartDir: flagStartDir,
		Filter:   parseFilters(flagFilters),
	}
}

func runOpen(cmd *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	if flagMultiple {
		paths, err := s.OpenMultiple(cmd.Context(), options())
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Println(path)
		}
		return nil
	}

	path, err := s.OpenFile(cmd.Context(), options())
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runSave(cmd *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	path, err := s.SaveFile(cmd.Context(), options())
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runFolder(cmd *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	path, err := s.ChooseFolder(cmd.Context(), options())
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, crossdialog.ErrCancelled):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "crossdialog:", err)
		os.Exit(2)
	}
}
