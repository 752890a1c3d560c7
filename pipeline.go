// Package tscycle drives the Qt Linguist translation cycle for a Python
// source tree: resolve the installed toolchain generation, discover
// translatable sources, run the string extractor into i18n/<locale>.ts, open
// the interactive editor, and compile the edited catalog into
// i18n/<locale>.qm. The external tools are black boxes; tscycle owns probing,
// discovery, command-line construction, sequencing and exit-status
// propagation.
package tscycle

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Pipeline runs the translation cycle: discover -> extract -> edit (blocking)
// -> compile. Steps are strictly sequential, share the immutable toolchain
// Profile, and short-circuit on the first failure. There is no retry and no
// cleanup of partial results; whatever the failing tool left on disk persists.
type Pipeline struct {
	Config  Config
	Profile Profile
	Runner  Runner
	Log     *log.Logger
}

// NewPipeline builds a pipeline. A nil runner uses ExecRunner with inherited
// stdio; a nil logger uses the package default.
func NewPipeline(cfg Config, profile Profile, runner Runner, logger *log.Logger) *Pipeline {
	if runner == nil {
		runner = &ExecRunner{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{Config: cfg, Profile: profile, Runner: runner, Log: logger}
}

// Discover returns the eligible source files under the configured source dir.
func (p *Pipeline) Discover() ([]string, error) {
	return Discover(p.Config.SourceDir, p.Config.SourceSuffix, p.Config.Exclude)
}

// Extract runs the extractor over files, creating or updating the locale's
// translation source file. The translations dir is created first so the
// extractor always has somewhere to write. An empty file list is a valid
// no-op extraction, not an error.
func (p *Pipeline) Extract(ctx context.Context, files []string) error {
	if err := os.MkdirAll(p.Config.TranslationsDir, 0o755); err != nil {
		return err
	}
	args := append([]string{}, p.Profile.Flags...)
	args = append(args, files...)
	args = append(args, p.Profile.TSFlag, p.Config.TSPath())
	p.Log.Info("extracting strings", "tool", p.Profile.Extractor, "files", len(files), "ts", p.Config.TSPath())
	return p.run(ctx, "extract", p.Profile.Extractor, args)
}

// Edit opens the interactive editor on the translation source file and blocks
// until the editor exits. The user closing the editor without saving counts
// as normal completion; compilation then runs on whatever was last saved.
func (p *Pipeline) Edit(ctx context.Context) error {
	p.Log.Info("opening editor", "tool", p.Profile.Editor, "ts", p.Config.TSPath())
	return p.run(ctx, "edit", p.Profile.Editor, []string{p.Config.TSPath()})
}

// Compile regenerates the locale's binary catalog from the translation source
// file. The compiler writes the .qm alongside the .ts.
func (p *Pipeline) Compile(ctx context.Context) error {
	p.Log.Info("compiling catalog", "tool", p.Profile.Compiler, "ts", p.Config.TSPath(), "qm", p.Config.QMPath())
	return p.run(ctx, "compile", p.Profile.Compiler, []string{p.Config.TSPath()})
}

// CompileAll compiles every .ts under the translations dir, one compiler run
// per file. Zero files (or a missing dir) is a warning and a no-op.
func (p *Pipeline) CompileAll(ctx context.Context) error {
	matches, err := filepath.Glob(filepath.Join(p.Config.TranslationsDir, "*.ts"))
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		p.Log.Warn("no translation source files to compile", "dir", p.Config.TranslationsDir)
		return nil
	}
	sort.Strings(matches)
	for _, ts := range matches {
		p.Log.Info("compiling catalog", "tool", p.Profile.Compiler, "ts", ts)
		if err := p.run(ctx, "compile", p.Profile.Compiler, []string{ts}); err != nil {
			return err
		}
	}
	return nil
}

// Run executes the full cycle. Discovery feeds extraction, the editor blocks
// until the user is done, and compilation picks up the final saved state.
func (p *Pipeline) Run(ctx context.Context) error {
	files, err := p.Discover()
	if err != nil {
		return err
	}
	if err := p.Extract(ctx, files); err != nil {
		return err
	}
	if err := p.Edit(ctx); err != nil {
		return err
	}
	return p.Compile(ctx)
}

func (p *Pipeline) run(ctx context.Context, step string, tool string, args []string) error {
	p.Log.Debug("running command", "cmd", tool+" "+strings.Join(args, " "))
	err := p.Runner.Run(ctx, Command{
		Name: tool,
		Args: args,
		Env:  p.Profile.Environ(os.Environ()),
	})
	if err != nil {
		return newRunError(step, tool, err)
	}
	return nil
}
