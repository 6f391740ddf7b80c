package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marin-t/aura/internal/audio"
	"github.com/marin-t/aura/internal/engine"
	"github.com/marin-t/aura/internal/params"
	"github.com/marin-t/aura/internal/vis"
)

const footerLines = 5

// Model is the Bubbletea model mounting the visual surface: every tick it
// steps the engine and rasterizes the active renderer's frame into the
// window.
type Model struct {
	cell      *params.Cell
	engine    *engine.Engine
	audio     *audio.Engine
	source    audio.Source
	projector *vis.Projector

	keys keyMap
	help help.Model

	start     time.Time
	width     int
	height    int
	frameView string
	displayed params.VisualParams
	audioErr  string
	presetIdx int
	quitting  bool
}

// New mounts the engine and audio controls. The source is also handed to the
// audio engine by the caller; it is kept here only to surface a file source's
// track title.
func New(cell *params.Cell, eng *engine.Engine, aud *audio.Engine, source audio.Source) Model {
	return Model{
		cell:      cell,
		engine:    eng,
		audio:     aud,
		source:    source,
		projector: vis.NewProjector(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		start:     time.Now(),
		displayed: cell.Target(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle("aura"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		elapsed := time.Since(m.start).Seconds()
		frame, displayed := m.engine.Step(elapsed)
		m.displayed = displayed
		if h := m.height - footerLines; h > 0 && m.width > 0 {
			m.frameView = m.projector.Render(frame, m.width, h)
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	switch {
	case s >= "1" && s <= "7":
		idx := int(s[0] - '1')
		m.cell.SetMode(params.Modes()[idx])
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.audio.Stop()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.NextMode):
		_, mode := m.cell.Snapshot()
		m.cell.SetMode(mode.Next())

	case key.Matches(msg, m.keys.Audio):
		m = m.toggleAudio()

	case key.Matches(msg, m.keys.Preset):
		m.presetIdx = (m.presetIdx + 1) % len(presets)
		m.cell.Apply(params.Replace{Params: presets[m.presetIdx].params})

	case key.Matches(msg, m.keys.SpeedUp):
		m.nudge(0.1, 0)
	case key.Matches(msg, m.keys.SpeedDown):
		m.nudge(-0.1, 0)
	case key.Matches(msg, m.keys.DistortUp):
		m.nudge(0, 0.1)
	case key.Matches(msg, m.keys.DistortDown):
		m.nudge(0, -0.1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// nudge adjusts the target scalars from the keyboard. Color and text are
// left to whoever owns them.
func (m Model) nudge(dSpeed, dDistort float64) {
	target := m.cell.Target()
	patch := params.Patch{}
	if dSpeed != 0 {
		v := max(target.Speed+dSpeed, 0)
		patch.Speed = &v
	}
	if dDistort != 0 {
		v := max(target.Distort+dDistort, 0)
		patch.Distort = &v
	}
	m.cell.Apply(patch)
}

func (m Model) toggleAudio() Model {
	m.audioErr = ""
	if m.audio.State() == audio.Active {
		m.audio.Stop()
		return m
	}
	if err := m.audio.Start(); err != nil {
		m.audioErr = err.Error()
		return m
	}
	// A file source knows its track title once playing; surface it as the
	// phrase so the display names what drives the motion.
	if t, ok := m.source.(interface{ Title() string }); ok {
		target := m.cell.Target()
		target.Phrase = t.Title()
		target.Explanation = "audio reactive"
		target.Advice = ""
		m.cell.Apply(params.Replace{Params: target})
	}
	return m
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height <= footerLines {
		return "\n  loading..."
	}

	var b strings.Builder
	surface := m.frameView
	if surface == "" {
		surface = strings.Repeat("\n", m.height-footerLines-1)
	}
	b.WriteString(surface)
	b.WriteByte('\n')

	phrase := m.displayed.Phrase
	if phrase == "" {
		phrase = "aura"
	}
	b.WriteString("  " + phraseStyle.Render(phrase) + "\n")

	desc := m.displayed.Explanation
	if m.displayed.Advice != "" {
		if desc != "" {
			desc += "  "
		}
		desc += adviceStyle.Render(m.displayed.Advice)
	}
	b.WriteString("  " + explanationStyle.Render(desc) + "\n")

	b.WriteString("  " + m.statusLine() + "\n")
	b.WriteString("  " + helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("%s  •  speed %.2f  distort %.2f  %s",
		m.engine.ModeName(), m.displayed.Speed, m.displayed.Distort, m.displayed.Color)

	switch {
	case m.audioErr != "":
		status += "  •  " + errorStyle.Render("audio: "+m.audioErr)
	case m.audio.State() == audio.Active:
		status += "  •  audio " + levelBars(m.audio.Levels())
	default:
		status += "  •  audio off"
	}
	return statusStyle.Render(status)
}

var levelRunes = []rune(" ▁▂▃▄▅▆▇█")

func levelBars(l audio.Levels) string {
	bar := func(v float64) rune {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return levelRunes[int(v*float64(len(levelRunes)-1))]
	}
	return string([]rune{bar(l.Bass), bar(l.Mid), bar(l.Treble)})
}
