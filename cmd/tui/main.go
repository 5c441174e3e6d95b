package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atcidulko/HW4-IB/internal/config"
	"github.com/atcidulko/HW4-IB/internal/fastq"
	"github.com/atcidulko/HW4-IB/internal/nucleic"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Colors for modern design
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	failColor      = lipgloss.Color("#EF4444") // Red
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	passStyle = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(failColor).Bold(true)
)

// readRow is one read with its metrics and filter verdict.
type readRow struct {
	record  fastq.Record
	gc      float64
	quality float64
	verdict fastq.Verdict
}

func newReadRow(r fastq.Record, chk fastq.Checker) readRow {
	return readRow{
		record:  r,
		gc:      fastq.GCContent(r.Sequence),
		quality: fastq.AvgQuality(r.Quality),
		verdict: chk.Check(r),
	}
}

type listItem struct {
	row readRow
}

func (i listItem) FilterValue() string {
	return i.row.record.Name
}

func (i listItem) Title() string {
	return i.row.record.Name
}

func (i listItem) Description() string {
	return fmt.Sprintf("%s    Len: %d    GC: %.1f%%    Q: %.1f",
		verdictLabel(i.row.verdict), len(i.row.record.Sequence), i.row.gc, i.row.quality)
}

func verdictLabel(v fastq.Verdict) string {
	if v == fastq.Pass {
		return passStyle.Render("pass")
	}
	return failStyle.Render("fail: " + v.String())
}

type mode int

const (
	modeSequence mode = iota
	modeQuality
	modeReverseComplement
)

func (m mode) String() string {
	switch m {
	case modeSequence:
		return "Sequence"
	case modeQuality:
		return "Quality"
	case modeReverseComplement:
		return "Reverse complement"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	rows          []readRow
	currentMode   mode
	showHelp      bool
	width         int
	height        int
	passed        int
	selectedIndex int
}

func initialModel(set *fastq.RecordSet, crit fastq.Criteria) model {
	chk := fastq.NewChecker(crit)
	rows := make([]readRow, 0, set.Len())
	items := make([]list.Item, 0, set.Len())
	passed := 0
	set.Each(func(r fastq.Record) bool {
		row := newReadRow(r, chk)
		if row.verdict == fastq.Pass {
			passed++
		}
		rows = append(rows, row)
		items = append(items, listItem{row: row})
		return true
	})

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "FASTQ reads"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:        l,
		rows:        rows,
		currentMode: modeSequence,
		passed:      passed,
	}
}

func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % 3
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// left panel takes 1/3 of width
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "h":
			m.showHelp = !m.showHelp
			return m, nil
		case "tab":
			return m.cycleMode(), nil
		case "1":
			m.currentMode = modeSequence
			return m, nil
		case "2":
			m.currentMode = modeQuality
			return m, nil
		case "3":
			m.currentMode = modeReverseComplement
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelpModal()
	}
	main := lipgloss.JoinHorizontal(lipgloss.Top, m.renderLeftPanel(), m.renderRightPanel())
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m model) renderLeftPanel() string {
	return containerStyle.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	panel := containerStyle.Width(m.width*2/3 - 2).Height(m.height - 4)
	if len(m.rows) == 0 {
		return panel.Render("No reads available")
	}
	selected := m.list.SelectedItem()
	if selected == nil {
		return panel.Render("No read selected")
	}
	return panel.Render(strings.Join(m.buildRightLines(selected.(listItem).row), "\n"))
}

// buildRightLines renders the detail view of row for the current mode.
func (m model) buildRightLines(row readRow) []string {
	label := lipgloss.NewStyle().Foreground(mutedColor)
	header := titleStyle.Render(row.record.Name)
	meta := label.Render("Verdict: ") + verdictLabel(row.verdict) +
		label.Render(fmt.Sprintf("    Len: %d    GC: %.2f%%    Avg Q: %.2f", len(row.record.Sequence), row.gc, row.quality))

	var content string
	switch m.currentMode {
	case modeSequence:
		content = m.formatSequence(row.record.Sequence, "Sequence")
	case modeQuality:
		content = m.formatSequence(row.record.Quality, "Quality")
	case modeReverseComplement:
		rc, ok := nucleic.ReverseComplement(row.record.Sequence)
		if !ok {
			rc = ""
		}
		content = m.formatSequence(rc, "Reverse complement")
	}
	return []string{header, meta, "", content}
}

func (m model) formatSequence(sequence, title string) string {
	if sequence == "" {
		return lipgloss.NewStyle().
			Foreground(mutedColor).
			Render(fmt.Sprintf("No %s available", strings.ToLower(title)))
	}
	titleStr := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true).
		Render(title + ":")
	width := m.width*2/3 - 6
	if width < 10 {
		width = 10
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStr, "", sequenceStyle.Width(width).Render(sequence))
}

func (m model) renderStatusBar() string {
	leftInfo := fmt.Sprintf("%d/%d reads, %d pass", m.selectedIndex+1, len(m.rows), m.passed)
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode)
	rightInfo := "Press 'h' for help, 'q' to quit"

	spacing := m.width - len(leftInfo) - len(centerInfo) - len(rightInfo) - 6
	var statusContent string
	if spacing > 0 {
		leftSpacing := spacing / 2
		statusContent = leftInfo + strings.Repeat(" ", leftSpacing) + centerInfo +
			strings.Repeat(" ", spacing-leftSpacing) + rightInfo
	} else {
		// narrow terminals
		statusContent = leftInfo + " | " + centerInfo
	}
	return statusBarStyle.Width(m.width).Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `FASTQ Read Browser - Help

Navigation:
  up/down, j/k  Navigate list
  /             Filter reads by name

View Modes:
  1             Show sequence
  2             Show quality string
  3             Show reverse complement
  tab           Next mode

General:
  h             Toggle this help
  q, Ctrl+C     Quit application

Current Mode: ` + m.currentMode.String() + `
Reads: ` + fmt.Sprintf("%d (%d pass)", len(m.rows), m.passed) + `
`
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Render(helpContent)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// options are the command-line settings of the browser.
type options struct {
	configPath string
	gc         string
	length     string
	quality    float64
	input      string
	// set holds the names of flags given on the command line.
	set map[string]bool
}

func parseArgs(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.configPath, "config", "", "path to config.json (optional)")
	fs.StringVar(&o.gc, "gc", "", "GC-content bounds: max or min,max (overrides config)")
	fs.StringVar(&o.length, "length", "", "length bounds: max or min,max (overrides config)")
	fs.Float64Var(&o.quality, "quality", 0, "minimum average quality (overrides config)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() != 1 {
		return o, fmt.Errorf("expected one FASTQ file, got %d arguments", fs.NArg())
	}
	o.input = fs.Arg(0)
	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// criteria applies the flags that were given on top of the config values.
func (o options) criteria(cfg *config.Config) fastq.Criteria {
	crit := cfg.Criteria()
	if o.set["gc"] {
		crit.GC = fastq.ParseBound(o.gc)
	}
	if o.set["length"] {
		crit.Length = fastq.ParseBound(o.length)
	}
	if o.set["quality"] {
		crit.QualityThreshold = o.quality
	}
	return crit
}

func main() {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: tui [flags] reads.fastq")
		fs.PrintDefaults()
	}
	opts, err := parseArgs(fs, os.Args[1:])
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fs.Usage()
		}
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		os.Exit(1)
	}

	set, err := fastq.ReadFile(opts.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(set, opts.criteria(cfg)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
