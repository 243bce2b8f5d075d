package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/suitectl/internal/app"
)

func newOutlineCmd(opts *globalOptions, newLoader LoaderFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "outline PATH",
		Short: "Print the document tree",
		Long: `Print every document under PATH with the settings that are set, its
imports, metadata and variables, and its tests and keywords with step counts.`,
		Args: exactlyOnePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, args[0], newLoader)
			if err != nil {
				return err
			}
			return a.Outline(cmd.Context())
		},
	}
}

// selectorFlags registers --test and --keyword on cmd.
func selectorFlags(cmd *cobra.Command, sel *app.Selector) {
	cmd.Flags().StringVar(&sel.Test, "test", "", "Name of the test case.")
	cmd.Flags().StringVar(&sel.Keyword, "keyword", "", "Name of the user keyword.")
}

func validSelector(sel app.Selector) error {
	if err := sel.Validate(); err != nil {
		return usageError("%s: use --test NAME or --keyword NAME", err)
	}
	return nil
}

func newShowCmd(opts *globalOptions, newLoader LoaderFactory) *cobra.Command {
	var sel app.Selector
	cmd := &cobra.Command{
		Use:   "show PATH (--test NAME | --keyword NAME)",
		Short: "Print the settings and steps of one test or keyword",
		Args:  exactlyOnePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validSelector(sel); err != nil {
				return err
			}
			a, err := opts.newApp(cmd, args[0], newLoader)
			if err != nil {
				return err
			}
			return a.Show(cmd.Context(), sel)
		},
	}
	selectorFlags(cmd, &sel)
	return cmd
}

func newReplaceStepsCmd(opts *globalOptions, newLoader LoaderFactory) *cobra.Command {
	var sel app.Selector
	var rowsPath string
	cmd := &cobra.Command{
		Use:   "replace-steps PATH (--test NAME | --keyword NAME) --rows FILE",
		Short: "Replace the steps of one test or keyword from TSV rows",
		Long: `Read tab-separated rows from FILE ("-" for standard input), one step per
line, and replace the steps of the selected test or keyword with them. The
new steps and the documents left with unsaved changes are printed. Nothing
is written to disk.`,
		Args: exactlyOnePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validSelector(sel); err != nil {
				return err
			}
			if rowsPath == "" {
				return usageError("replace-steps requires --rows FILE")
			}
			a, err := opts.newApp(cmd, args[0], newLoader)
			if err != nil {
				return err
			}

			rows, err := readRowsFrom(cmd, rowsPath)
			if err != nil {
				return err
			}
			return a.ReplaceSteps(cmd.Context(), sel, rows)
		},
	}
	selectorFlags(cmd, &sel)
	cmd.Flags().StringVar(&rowsPath, "rows", "", `TSV file with the new steps, or "-" for standard input.`)
	return cmd
}

func readRowsFrom(cmd *cobra.Command, path string) ([][]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return app.ReadRows(r)
}
