// Package tui implements the optional --interactive browser: a live,
// navigable view of an already-measured tree.Node, reusing
// internal/visualizer's per-row bar and percentage computations instead
// of recomputing them. The tree is built once by the CLI before the
// program starts, so there is no scanning state, delete, export or
// rescan here — navigation and display options only.
package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/dutree/internal/size"
	"github.com/sadopc/dutree/internal/sortcmp"
	"github.com/sadopc/dutree/internal/tree"
	"github.com/sadopc/dutree/internal/tui/components"
	"github.com/sadopc/dutree/internal/tui/style"
	"github.com/sadopc/dutree/internal/visualizer"
)

// viewState is the browser's top-level mode.
type viewState int

const (
	stateBrowsing viewState = iota
	stateHelp
)

// Options configures a new App.
type Options struct {
	Format        size.Format
	QuantityLabel string // shown in the header, e.g. "apparent size"
}

// App is the root Bubble Tea model for the interactive browser.
type App struct {
	opts Options

	state  viewState
	width  int
	height int
	layout style.Layout
	theme  style.Theme
	keys   KeyMap

	root       *tree.Node
	currentDir *tree.Node
	navStack   []*tree.Node

	sortCmp     tree.Cmp
	sortLabel   string
	align       visualizer.Alignment
	sortedItems []*tree.Node

	cursor int
	offset int

	statusMsg string
}

// NewApp returns an App ready to browse root.
func NewApp(root *tree.Node, opts Options) *App {
	a := &App{
		opts:       opts,
		state:      stateBrowsing,
		root:       root,
		currentDir: root,
		sortCmp:    sortcmp.BySizeDesc,
		sortLabel:  "size",
		align:      visualizer.AlignLeft,
		theme:      style.DefaultTheme(),
		keys:       DefaultKeyMap(),
	}
	a.refreshSorted()
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout = style.NewLayout(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}

	if a.state == stateHelp {
		if key.Matches(msg, a.keys.Help) || msg.String() == "esc" {
			a.state = stateBrowsing
			return a, tea.ClearScreen
		}
		return a, nil
	}

	a.statusMsg = ""
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.state = stateHelp
		return a, tea.ClearScreen
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)
	case key.Matches(msg, a.keys.Enter):
		a.enterDir()
	case key.Matches(msg, a.keys.Back):
		a.goBack()
	case key.Matches(msg, a.keys.SortSize):
		a.sortCmp, a.sortLabel = sortcmp.BySizeDesc, "size"
		a.refreshSorted()
	case key.Matches(msg, a.keys.SortName):
		a.sortCmp, a.sortLabel = sortcmp.ByName, "name"
		a.refreshSorted()
	case key.Matches(msg, a.keys.Align):
		if a.align == visualizer.AlignLeft {
			a.align = visualizer.AlignRight
		} else {
			a.align = visualizer.AlignLeft
		}
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}
	if a.state == stateHelp {
		return components.RenderHelp(a.theme, a.width, a.height)
	}

	names := a.breadcrumbNames()
	header := components.RenderHeader(a.theme, a.root, a.opts.Format, a.opts.QuantityLabel, a.width)
	breadcrumb := components.RenderBreadcrumb(a.theme, names, a.width)

	tv := &components.TreeView{
		Theme:  a.theme,
		Layout: a.layout,
		Items:  a.sortedItems,
		Cursor: a.cursor,
		Offset: a.offset,
		Total:  a.currentDir.Size().Uint64(),
		Align:  a.align,
		Format: a.opts.Format,
	}
	tv.EnsureVisible()
	a.offset = tv.Offset
	content := tv.Render()

	alignLabel := "left"
	if a.align == visualizer.AlignRight {
		alignLabel = "right"
	}
	status := components.RenderStatusBar(a.theme, components.StatusInfo{
		ItemCount: len(a.sortedItems),
		SortLabel: a.sortLabel,
		Align:     alignLabel,
		ErrorMsg:  a.statusMsg,
	}, a.width)

	return header + "\n" + breadcrumb + "\n" + content + "\n" + status
}

func (a *App) breadcrumbNames() []string {
	names := make([]string, 0, len(a.navStack)+1)
	for _, n := range a.navStack {
		names = append(names, n.Name())
	}
	names = append(names, a.currentDir.Name())
	return names
}

func (a *App) moveCursor(delta int) {
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor >= len(a.sortedItems) {
		a.cursor = len(a.sortedItems) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) enterDir() {
	if a.cursor >= len(a.sortedItems) {
		return
	}
	item := a.sortedItems[a.cursor]
	if !item.IsDir() {
		return
	}
	a.navStack = append(a.navStack, a.currentDir)
	a.currentDir = item
	a.cursor, a.offset = 0, 0
	a.refreshSorted()
}

func (a *App) goBack() {
	if len(a.navStack) == 0 {
		return
	}
	leavingName := a.currentDir.Name()
	a.currentDir = a.navStack[len(a.navStack)-1]
	a.navStack = a.navStack[:len(a.navStack)-1]
	a.refreshSorted()

	a.cursor = 0
	for i, item := range a.sortedItems {
		if item.Name() == leavingName {
			a.cursor = i
			break
		}
	}
	a.offset = 0
}

func (a *App) refreshSorted() {
	children := append([]*tree.Node(nil), a.currentDir.Children()...)
	sort.SliceStable(children, func(i, j int) bool { return a.sortCmp(children[i], children[j]) < 0 })
	a.sortedItems = children
}
