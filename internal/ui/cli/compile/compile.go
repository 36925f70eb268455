package compile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/isaacphi/tbprompt/internal/appState"
	"github.com/isaacphi/tbprompt/internal/clipboard"
	"github.com/isaacphi/tbprompt/internal/compiler"
	"github.com/isaacphi/tbprompt/internal/shared"
	"github.com/isaacphi/tbprompt/internal/watch"
)

var (
	copyFlag  bool
	watchFlag bool

	CompileCmd = &cobra.Command{
		Use:   "compile [files...]",
		Short: "Compile templates into prompts",
		Long: `Compile one or more template files (JSON or YAML) and print one prompt per
file. With no files the template is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appState.Get().Config
			if len(args) == 0 {
				args = []string{"-"}
			}

			prompts, err := compileFiles(cmd.Context(), args, cfg.Editor.Platform)
			if err != nil {
				return err
			}
			printPrompts(cmd.OutOrStdout(), args, prompts)

			if copyFlag || cfg.Editor.Copy {
				if err := clipboard.Copy(strings.Join(prompts, "\n")); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
			}

			if !watchFlag {
				return nil
			}
			for _, f := range args {
				if f == "-" {
					return fmt.Errorf("--watch needs template files, not stdin")
				}
			}
			return watchFiles(cmd, args, prompts, cfg.Editor.Platform)
		},
	}
)

func init() {
	CompileCmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the compiled prompt to the clipboard")
	CompileCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Recompile whenever a template file changes")
}

// compileFiles compiles every file concurrently. Results keep the order of files.
func compileFiles(ctx context.Context, files []string, platform string) ([]string, error) {
	prompts := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := shared.LoadTemplate(f)
			if err != nil {
				return err
			}
			prompts[i] = compiler.Compile(t, platform)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prompts, nil
}

func printPrompts(w io.Writer, files, prompts []string) {
	if len(files) == 1 {
		fmt.Fprintln(w, prompts[0])
		return
	}
	for i, f := range files {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "==> %s <==\n%s\n", f, prompts[i])
	}
}

func watchFiles(cmd *cobra.Command, files, prompts []string, platform string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	var mu sync.Mutex
	last := make(map[string]string, len(files))
	for i, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		last[abs] = prompts[i]
	}

	w, err := watch.New(files, watch.DefaultDebounce, func(ctx context.Context, path string) {
		t, err := shared.LoadTemplate(path)
		if err != nil {
			fmt.Fprintln(errOut, "Error:", err)
			return
		}
		prompt := compiler.Compile(t, platform)

		mu.Lock()
		defer mu.Unlock()
		if last[path] == prompt {
			slog.Debug("prompt unchanged", "path", path)
			return
		}
		last[path] = prompt
		if len(files) > 1 {
			fmt.Fprintf(out, "==> %s <==\n", path)
		}
		fmt.Fprintln(out, prompt)
	})
	if err != nil {
		return fmt.Errorf("failed to watch templates: %w", err)
	}

	fmt.Fprintln(errOut, "Watching for changes, press Ctrl+C to stop")
	w.Start(cmd.Context())
	<-cmd.Context().Done()
	w.Stop()
	return nil
}
