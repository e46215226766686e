package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/huffdual/errors"
	"github.com/wippyai/huffdual/oracle"
)

var errDivergent = errors.New(errors.PhaseOracle, errors.KindDivergence).
	Detail("replay found divergent inputs").
	Build()

type replayFlags struct {
	impl0, impl1, tag string
	jobs              int
	allPairs, strict  bool
}

func newReplayCmd(a *app) *cobra.Command {
	var f replayFlags
	cmd := &cobra.Command{
		Use:   "replay [paths...]",
		Short: "Run corpus files through the oracle",
		Long: `Runs every file (directories are walked recursively) through the configured
implementation pair, or every ordered pair with --all-pairs, and prints a
summary. Exits with status 1 when any input diverges.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyReplayFlags(cmd, f)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			harnesses, err := a.cfg.Harnesses()
			if err != nil {
				return err
			}

			ui := startProgress(cmd.OutOrStdout())
			rep, err := replay(cmd.Context(), a.logger, harnesses, args, a.cfg.Replay.Jobs, ui.advance)
			ui.stop()
			if err != nil {
				return err
			}
			rep.print(cmd.OutOrStdout())
			if len(rep.Findings) > 0 {
				return errDivergent
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.impl0, "impl0", "", "First implementation (tree, vector, lookup)")
	cmd.Flags().StringVar(&f.impl1, "impl1", "", "Second implementation")
	cmd.Flags().StringVar(&f.tag, "tag", "", "Table tag (baseline, symbol8)")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0, "Inputs replayed concurrently")
	cmd.Flags().BoolVar(&f.allPairs, "all-pairs", false, "Run every ordered implementation pair")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Require symmetric exhaustion")
	return cmd
}

// applyReplayFlags lets explicitly set flags win over config and environment.
func (a *app) applyReplayFlags(cmd *cobra.Command, f replayFlags) {
	fl := cmd.Flags()
	if fl.Changed("impl0") {
		a.cfg.Pair.Impl0 = f.impl0
	}
	if fl.Changed("impl1") {
		a.cfg.Pair.Impl1 = f.impl1
	}
	if fl.Changed("tag") {
		a.cfg.Pair.Tag = f.tag
	}
	if fl.Changed("jobs") {
		a.cfg.Replay.Jobs = f.jobs
	}
	if fl.Changed("all-pairs") {
		a.cfg.Replay.AllPairs = f.allPairs
	}
	if fl.Changed("strict") {
		a.cfg.StrictExhaustion = f.strict
	}
}

// finding is one divergent (input, pair) combination.
type finding struct {
	Path string
	Pair oracle.Pair
	Err  error
}

// report aggregates a replay.
type report struct {
	Ends     map[errors.Kind]int
	Findings []finding
	Inputs   int
	Runs     int
}

func (r *report) add(path string, pair oracle.Pair, res oracle.Result) {
	r.Runs++
	if res.Verdict == oracle.Divergence {
		r.Findings = append(r.Findings, finding{Path: path, Pair: pair, Err: res.Err})
		return
	}
	r.Ends[res.End]++
}

// replay runs every input under paths through every harness, at most jobs
// inputs at a time. progress, if set, is called after each input.
func replay(ctx context.Context, log *zap.Logger, harnesses []*oracle.Harness, paths []string, jobs int,
	progress func(done, total int)) (*report, error) {
	files, err := collectInputs(paths)
	if err != nil {
		return nil, err
	}

	rep := &report{Ends: make(map[errors.Kind]int), Inputs: len(files)}
	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, path := range files {
		if gctx.Err() != nil {
			break
		}
		path := path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			for _, h := range harnesses {
				res := h.Run(data)
				mu.Lock()
				rep.add(path, h.Pair(), res)
				mu.Unlock()
			}
			mu.Lock()
			done++
			n := done
			mu.Unlock()
			if progress != nil {
				progress(n, len(files))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(rep.Findings, func(i, j int) bool {
		if rep.Findings[i].Path != rep.Findings[j].Path {
			return rep.Findings[i].Path < rep.Findings[j].Path
		}
		return rep.Findings[i].Pair.String() < rep.Findings[j].Pair.String()
	})
	log.Info("replay finished",
		zap.Int("inputs", rep.Inputs),
		zap.Int("runs", rep.Runs),
		zap.Int("divergences", len(rep.Findings)))
	return rep, nil
}

// collectInputs expands directories into the regular files below them.
func collectInputs(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return files, nil
}

func (r *report) print(w io.Writer) {
	p := newPainter(w)

	fmt.Fprintln(w, p.render(titleStyle, "huffdual replay"))
	fmt.Fprintf(w, "%s %d\n", p.label("inputs"), r.Inputs)
	fmt.Fprintf(w, "%s %d\n", p.label("runs"), r.Runs)

	kinds := make([]string, 0, len(r.Ends))
	for k := range r.Ends {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "%s %d\n", p.label("ended "+k), r.Ends[errors.Kind(k)])
	}

	if len(r.Findings) == 0 {
		fmt.Fprintln(w, p.render(okStyle, "no divergences"))
		return
	}
	fmt.Fprintln(w, p.render(divergenceStyle, fmt.Sprintf("%d divergence(s)", len(r.Findings))))
	for _, f := range r.Findings {
		fmt.Fprintf(w, "  %s %s\n", f.Path, p.render(dimStyle, f.Pair.String()))
		fmt.Fprintf(w, "    %v\n", f.Err)
	}
}
