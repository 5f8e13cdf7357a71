// Command dutree measures and renders disk usage as a static, sorted tree
// report, or as a live --interactive browser over the same measured tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/dutree/internal/cliargs"
	"github.com/sadopc/dutree/internal/envelope"
	"github.com/sadopc/dutree/internal/fswalk"
	"github.com/sadopc/dutree/internal/hardlink"
	"github.com/sadopc/dutree/internal/progress"
	"github.com/sadopc/dutree/internal/remote"
	"github.com/sadopc/dutree/internal/size"
	"github.com/sadopc/dutree/internal/sortcmp"
	"github.com/sadopc/dutree/internal/tree"
	"github.com/sadopc/dutree/internal/tui"
	"github.com/sadopc/dutree/internal/visualizer"
)

var version = "dev"

func main() {
	jsonOutput := flag.String("json-output", "", "write the JSON envelope to this path instead of rendering ('-' for stdout)")
	jsonInput := flag.String("json-input", "", "read a JSON envelope (as written by --json-output) from this path and only render its tree ('-' for stdin)")
	bytesFormat := flag.String("bytes-format", "binary", "size display: plain, metric or binary")
	quantityFlag := flag.String("quantity", "apparent-size", "what to measure: apparent-size, block-size or block-count")
	maxDepthFlag := flag.String("max-depth", "inf", "positive integer, or 'inf' for unbounded")
	totalWidth := flag.Int("total-width", 0, "full line width to negotiate the tree and bar columns within (0 = unconstrained)")
	columnWidth := flag.String("column-width", "", "explicit 'tree,bar' column widths, overriding --total-width")
	minRatio := flag.Float64("min-ratio", 0, "drop entries smaller than this fraction of the total size (0 <= R < 1)")
	topDown := flag.Bool("top-down", false, "emit rows top-down instead of the default bottom-up")
	alignRight := flag.Bool("align-right", false, "put each bar's heaviest segment on the right instead of the left")
	noSort := flag.Bool("no-sort", false, "disable the default sort of children by size descending")
	dedupeHardlinks := flag.Bool("deduplicate-hardlinks", false, "track inodes and correct sizes for shared hardlinks (local targets only)")
	omitSharedDetails := flag.Bool("omit-json-shared-details", false, "drop the JSON envelope's shared.details section")
	omitSharedSummary := flag.Bool("omit-json-shared-summary", false, "drop the JSON envelope's shared.summary section")
	showProgress := flag.Bool("progress", false, "print a live scan-progress line to stderr")
	noElision := flag.Bool("no-elision-summary", false, "don't fold culled children into a synthetic '(N other entries)' node")
	interactive := flag.Bool("interactive", false, "open a live, navigable browser instead of printing a static report")
	concurrency := flag.Int("j", 0, "max concurrent walk workers (0 = auto: 3x CPU cores)")
	sshPort := flag.Int("ssh-port", 22, "SSH port for remote targets")
	sshBatch := flag.Bool("ssh-batch", false, "disable SSH password prompts (key/agent auth only)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "dutree - disk usage tree analyzer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: dutree [options] [path|user@host[:remote-path]]...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	format, err := size.ParseFormat(*bytesFormat)
	if err != nil {
		argError("--bytes-format", err)
	}
	quantity, err := fswalk.ParseQuantity(*quantityFlag)
	if err != nil {
		argError("--quantity", err)
	}
	if !quantity.HostSupported() {
		argError("--quantity", fmt.Errorf("%s is not supported on %s", quantity, runtime.GOOS))
	}
	maxDepth, err := parseMaxDepth(*maxDepthFlag)
	if err != nil {
		argError("--max-depth", err)
	}
	if *minRatio < 0 || *minRatio >= 1 {
		argError("--min-ratio", fmt.Errorf("must satisfy 0 <= R < 1, got %v", *minRatio))
	}
	if *concurrency < 0 {
		argError("-j", fmt.Errorf("must be >= 0"))
	}
	if *sshPort < 1 || *sshPort > 65535 {
		argError("--ssh-port", fmt.Errorf("must be between 1 and 65535"))
	}
	treeWidth, barWidth, err := parseColumnWidth(*columnWidth)
	if err != nil {
		argError("--column-width", err)
	}

	direction := visualizer.BottomUp
	if *topDown {
		direction = visualizer.TopDown
	}
	alignment := visualizer.AlignLeft
	if *alignRight {
		alignment = visualizer.AlignRight
	}

	if *jsonInput != "" {
		if flag.NArg() > 0 {
			argError("--json-input", fmt.Errorf("cannot be combined with scan targets"))
		}
		runJSONInputMode(*jsonInput, visualizer.Options{
			MaxDepth:   maxDepth,
			Format:     format,
			Direction:  direction,
			Alignment:  alignment,
			TotalWidth: *totalWidth,
			TreeWidth:  treeWidth,
			BarWidth:   barWidth,
		})
		return
	}

	prunedArgs := cliargs.PruneOverlapping(flag.Args())
	targets, err := resolveTargets(prunedArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dedupeHardlinks {
		for _, t := range targets {
			if t.Remote {
				argError("--deduplicate-hardlinks", fmt.Errorf("is not supported for remote target %s", t.SSHDest))
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var reporter *progress.Reporter
	if *showProgress {
		reporter = progress.New(os.Stderr)
		reporter.Start()
	}

	engine := hardlink.NewEngine(hardlink.Ignorant)
	if *dedupeHardlinks {
		engine = hardlink.NewEngine(hardlink.Aware)
	}

	roots, err := walkAll(ctx, targets, quantity, maxDepth, engine, reporter, *concurrency, *sshPort, *sshBatch)
	if err != nil {
		if reporter != nil {
			reporter.Stop()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := fuseRoots(roots, quantity)

	if *dedupeHardlinks {
		summary := hardlink.Deduplicate(root, engine.List())
		if reporter != nil {
			reporter.ObserveHardlink(summary.SharedSize)
		}
	}
	if reporter != nil {
		reporter.Stop()
	}

	if !*noSort {
		root.ParSortBy(sortcmp.BySizeDesc)
	}
	if *minRatio > 0 {
		root.CullAndElide(*minRatio, !*noElision)
	}

	if *jsonOutput != "" {
		var registry *hardlink.List
		if *dedupeHardlinks {
			registry = engine.List()
		}
		env := envelope.Build(root, envelope.UnitFromZero(zeroFor(quantity)), registry, envelope.Options{
			BinaryVersion:     version,
			OmitSharedDetails: *omitSharedDetails,
			OmitSharedSummary: *omitSharedSummary,
		})
		if err := envelope.Write(env, *jsonOutput, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *interactive {
		app := tui.NewApp(root, tui.Options{Format: format, QuantityLabel: quantityLabel(quantity)})
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	lines, err := visualizer.Render(root, visualizer.Options{
		MaxDepth:   maxDepth,
		Format:     format,
		Direction:  direction,
		Alignment:  alignment,
		TotalWidth: *totalWidth,
		TreeWidth:  treeWidth,
		BarWidth:   barWidth,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

func argError(flagName string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", flagName, err)
	os.Exit(1)
}

func parseMaxDepth(s string) (uint64, error) {
	if s == "inf" {
		return math.MaxUint64, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("must be a positive integer or 'inf'")
	}
	return n, nil
}

// parseColumnWidth parses the "TREE,BAR" form of --column-width. An empty
// string means "not given"; both widths come back zero, and visualizer.Render
// falls back to --total-width negotiation.
func parseColumnWidth(s string) (treeWidth, barWidth int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected 'TREE,BAR', got %q", s)
	}
	treeWidth, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	barWidth, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || treeWidth <= 0 || barWidth <= 0 {
		return 0, 0, fmt.Errorf("expected two positive integers 'TREE,BAR', got %q", s)
	}
	return treeWidth, barWidth, nil
}

func zeroFor(q fswalk.Quantity) size.Size {
	_, zero := q.Getter()
	return zero
}

func quantityLabel(q fswalk.Quantity) string {
	return strings.ReplaceAll(q.String(), "-", " ")
}

func runJSONInputMode(path string, opts visualizer.Options) {
	env, err := envelope.Read(path, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	root, err := tree.FromReflection(env.Tree, env.Unit.ToUnitFunc(), env.Tree.Name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lines, err := visualizer.Render(root, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

// walkAll measures every target, in order, returning one tree.Node per
// target. A local target uses internal/fswalk directly; a remote target
// dials out through internal/remote. Both share the same hardlink engine
// when it is Aware, except remote targets, which never record (see
// internal/remote's package doc).
func walkAll(ctx context.Context, targets []target, quantity fswalk.Quantity, maxDepth uint64, engine *hardlink.Engine, reporter *progress.Reporter, concurrency, sshPort int, sshBatch bool) ([]*tree.Node, error) {
	getter, zero := quantity.Getter()

	roots := make([]*tree.Node, len(targets))
	for i, t := range targets {
		if t.Remote {
			cfg := remote.Config{Target: t.SSHDest, Port: sshPort, BatchMode: sshBatch}
			w := remote.NewWalker(cfg)
			w.Concurrency = concurrency
			if reporter != nil {
				w.Reporter = reporter
			}
			root, err := w.Walk(ctx, t.RemotePath)
			if err != nil {
				return nil, fmt.Errorf("scanning %s: %w", t.SSHDest, err)
			}
			roots[i] = root
			continue
		}

		w := &fswalk.Walker{
			SizeGetter:  getter,
			Recorder:    engine,
			MaxDepth:    maxDepth,
			Zero:        zero,
			Concurrency: concurrency,
		}
		if reporter != nil {
			w.Reporter = reporter
		}
		roots[i] = w.Walk(ctx, t.LocalPath)
	}
	return roots, nil
}

// fuseRoots wraps multiple scan roots under one synthetic "." root, or
// returns the sole root unchanged when there was only one target.
func fuseRoots(roots []*tree.Node, quantity fswalk.Quantity) *tree.Node {
	if len(roots) == 1 {
		return roots[0]
	}
	_, zero := quantity.Getter()
	return tree.Dir(".", zero, roots)
}
