package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dhamidi/cfront/codebase"
	"github.com/dhamidi/cfront/diag"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Parse every .c and .h file below a directory",
		Long: `Parse every .c and .h file below a directory (default ".") and
report the files that fail. Exits non-zero if any file fails.

With --watch, keeps polling for changes and reports each file as it is
parsed again, until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			cb := codebase.New(root)
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

			if watch {
				return watchCodebase(cmd, cb, interval)
			}

			if err := cb.ScanAll(); err != nil {
				return err
			}
			files := cb.Files()
			failed := cb.Failed()
			for _, f := range failed {
				reportFile(errOut, f)
			}
			fmt.Fprintf(out, "%d files, %d failed\n", len(files), len(failed))
			if len(failed) > 0 {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "keep checking files as they change")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "polling interval for --watch")

	return cmd
}

func reportFile(w io.Writer, f *codebase.FileInfo) {
	fmt.Fprint(w, diag.Snippet(string(f.Content), f.Path, f.ParseErr))
}

func watchCodebase(cmd *cobra.Command, cb *codebase.Codebase, interval time.Duration) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	watcher := codebase.NewFileWatcher(cb,
		codebase.WithInterval(interval),
		codebase.WithOnChange(func(f *codebase.FileInfo, removed bool) {
			switch {
			case removed:
				fmt.Fprintf(out, "removed %s\n", f.Path)
			case f.Failed():
				reportFile(errOut, f)
			default:
				fmt.Fprintf(out, "ok %s\n", f.Path)
			}
		}),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	watcher.Start()
	<-ctx.Done()
	watcher.Stop()

	if failed := cb.Failed(); len(failed) > 0 {
		return errReported
	}
	return nil
}
