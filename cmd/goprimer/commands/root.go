package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goprimer/goprimer/pkg/app"
	"github.com/goprimer/goprimer/pkg/config"
	"github.com/goprimer/goprimer/pkg/logutil"
	"github.com/goprimer/goprimer/pkg/primer"
	"github.com/goprimer/goprimer/pkg/term"
	"github.com/goprimer/goprimer/pkg/tk"
	"github.com/goprimer/goprimer/pkg/ui"
)

var (
	traceFile  string
	configFile string
	maxHeight  int
	dump       bool
)

// Width used when rendering to a non-terminal output.
const dumpWidth = 80

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "goprimer",
		Short: "Interactive tour of Go language concepts",
		Long: `goprimer shows one scrollable screen of small, live demonstrations of
Go language concepts: bindings, sequences, conditionals, functions, nominal
types, value copying and generics. Buttons mutate the underlying state and
the screen re-derives itself from it.

Keys: Up/Down/PageUp/PageDown scroll, Tab and Shift-Tab move between
buttons, Enter or Space activates, q or Ctrl-D quits.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().StringVar(&traceFile, "trace", "",
		"append diagnostic traces to this file")
	root.Flags().StringVar(&configFile, "config", "",
		"path to the YAML configuration file")
	root.Flags().IntVar(&maxHeight, "max-height", 0,
		"maximum height of the screen in lines (0 means the terminal height)")
	root.Flags().BoolVar(&dump, "dump", false,
		"render the screen once to stdout and exit")
	return root
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("max-height") {
		cfg.MaxHeight = maxHeight
	}

	closer, err := logutil.SetOutputFile(traceFile)
	if err != nil {
		return fmt.Errorf("open trace file: %w", err)
	}
	defer closer.Close()

	trace := logutil.GetLogger(cfg.TracePrefix)
	screen := primer.NewScreen(primer.ScreenSpec{Theme: cfg.Theme, Trace: trace})

	if dump || !term.IsTerminal(os.Stdout) {
		// Without an explicit trace file, traces go to the same output as
		// the dump.
		if traceFile == "" {
			logutil.SetOutput(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), screen.Dump(dumpWidth))
		screen.OnAppear()
		return nil
	}

	var a app.App
	global := tk.MapBindings{
		ui.K('q'):          func(tk.Widget) { a.Quit() },
		ui.K('D', ui.Ctrl): func(tk.Widget) { a.Quit() },
	}
	a = app.NewApp(app.AppSpec{
		TTY:            term.NewTTY(os.Stdin, os.Stderr),
		MaxHeight:      func() int { return cfg.MaxHeight },
		Root:           screen.Form(),
		GlobalBindings: global,
		OnAppear:       []func(){screen.OnAppear},
	})
	return a.Run()
}
