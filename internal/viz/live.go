package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/optctl/internal/rollout"
)

type TickMsg time.Time

// Live replays a completed evaluation run node by node, plotting the
// cost accumulated so far.
type Live struct {
	system    string
	result    *rollout.Result
	frameRate int
	cursor    int
	running   float64
	paused    bool
}

func NewLive(system string, result *rollout.Result, frameRate int) *Live {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &Live{
		system:    system,
		result:    result,
		frameRate: frameRate,
	}
}

func (m *Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Live) Init() tea.Cmd {
	return m.tick()
}

func (m *Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.cursor = 0
			m.running = 0
		}
	case TickMsg:
		if !m.paused && m.cursor < len(m.result.Costs)-1 {
			m.running += m.result.Costs[m.cursor]
			m.cursor++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Live) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("optctl live: %s", m.system)))
	b.WriteString("\n")

	end := m.cursor + 1
	if end > len(m.result.Costs) {
		end = len(m.result.Costs)
	}
	if end >= 2 {
		graph := asciigraph.Plot(m.result.Costs[:end],
			asciigraph.Width(plotWidth),
			asciigraph.Height(plotHeight),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("node"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d / %d", m.cursor, len(m.result.Costs)-1)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("time"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.3f s", m.result.Times[m.cursor])))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("node cost"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.6f", m.result.Costs[m.cursor])))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("running"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.6f", m.running)))
	b.WriteString("\n")
	if len(m.result.States) > m.cursor {
		b.WriteString(labelStyle.Render("state"))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.4v", m.result.States[m.cursor])))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause | r restart | q quit"))
	return b.String()
}
