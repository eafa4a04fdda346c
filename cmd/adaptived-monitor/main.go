// Command adaptived-monitor is a small bubbletea/lipgloss dashboard over
// a running Context's loaded rules and their stats, grounded on the
// teacher's ui.Model (ui/app.go): a ticking Init/Update/View loop that
// polls on an interval and renders a styled table, generalized from
// system metrics to adaptived rule counters.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oracle/adaptived/engine"
	"github.com/oracle/adaptived/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	fireStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type ruleRow struct {
	name  string
	stats model.RuleStats
}

type dashboardModel struct {
	ctx      *engine.Context
	interval time.Duration
	rows     []ruleRow
	width    int
}

func newDashboardModel(ctx *engine.Context, interval time.Duration) dashboardModel {
	return dashboardModel{ctx: ctx, interval: interval}
}

func (m dashboardModel) Init() tea.Cmd {
	return tick(m.interval)
}

func (m dashboardModel) refresh() []ruleRow {
	names := m.ctx.RuleNames()
	rows := make([]ruleRow, 0, len(names))
	for _, name := range names {
		stats, err := m.ctx.GetRuleStats(name)
		if err != nil {
			continue
		}
		rows = append(rows, ruleRow{name: name, stats: stats})
	}
	return rows
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.rows = m.refresh()
		return m, tick(m.interval)
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("adaptived-monitor") + dimStyle.Render("  (q to quit)") + "\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-24s %8s %8s %10s %8s", "RULE", "CAUSES", "EFFECTS", "TRIGGERS", "SNOOZES")) + "\n")

	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("no rules loaded") + "\n")
		return b.String()
	}

	for _, row := range m.rows {
		style := rowStyle
		if row.stats.TriggerCount > 0 {
			style = fireStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%-24s %8d %8d %10d %8d",
			row.name, row.stats.CauseCount, row.stats.EffectCount,
			row.stats.TriggerCount, row.stats.SnoozeCount)) + "\n")
	}

	return b.String()
}

func main() {
	var configPath string
	var intervalMS int

	fs := flag.NewFlagSet("adaptived-monitor", flag.ExitOnError)
	fs.StringVar(&configPath, "config", "/etc/adaptived/adaptived.json", "adaptived configuration file to load and watch")
	fs.IntVar(&intervalMS, "interval", 5000, "polling interval in milliseconds")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	ctx := engine.New(configPath)
	defer ctx.Release()
	_ = ctx.SetAttr(engine.AttrInterval, uint32(intervalMS))
	_ = ctx.SetAttr(engine.AttrSkipSleep, 0)

	data, err := os.ReadFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "adaptived-monitor: failed to read %s: %v\n", configPath, err)
		os.Exit(1)
	}
	if err := ctx.LoadConfig(data); err != nil {
		fmt.Fprintf(os.Stderr, "adaptived-monitor: failed to load rules: %v\n", err)
		os.Exit(1)
	}

	go func() {
		_ = ctx.Run()
	}()

	p := tea.NewProgram(newDashboardModel(ctx, time.Duration(intervalMS)*time.Millisecond))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "adaptived-monitor: %v\n", err)
		os.Exit(1)
	}
}
