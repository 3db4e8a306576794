package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Choovyy/portfolio/internal/content"
	"github.com/Choovyy/portfolio/internal/portfolio"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site's downloadable text files",
}

var exportResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Export resume.txt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog, err := content.Load()
		if err != nil {
			return err
		}
		return writeDownload(cmd, catalog.ResumeDownload())
	},
}

var exportProjectCmd = &cobra.Command{
	Use:   "project <title>",
	Short: "Export a project's description as <title>.txt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := content.Load()
		if err != nil {
			return err
		}
		p, ok := catalog.ProjectByTitle(args[0])
		if !ok {
			return fmt.Errorf("no project titled %q", args[0])
		}
		return writeDownload(cmd, portfolio.ProjectDownload(p))
	},
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "File or directory to write to (default stdout)")
	exportCmd.AddCommand(exportResumeCmd, exportProjectCmd)
	rootCmd.AddCommand(exportCmd)
}

// writeDownload prints d to stdout, or writes it to the output path. An
// existing directory receives the file under its download name.
func writeDownload(cmd *cobra.Command, d portfolio.Download) error {
	if exportOutput == "" {
		_, err := cmd.OutOrStdout().Write(d.Content)
		return err
	}

	path := exportOutput
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, d.Filename)
	}
	if err := os.WriteFile(path, d.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}
