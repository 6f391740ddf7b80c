package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Mode        key.Binding
	NextMode    key.Binding
	Audio       key.Binding
	Preset      key.Binding
	SpeedUp     key.Binding
	SpeedDown   key.Binding
	DistortUp   key.Binding
	DistortDown key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Mode: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "mode"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next mode"),
		),
		Audio: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "audio reactive"),
		),
		Preset: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "next emotion"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "speed"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-"),
		),
		DistortUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("[/]", "distort"),
		),
		DistortDown: key.NewBinding(
			key.WithKeys("["),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.NextMode, k.Audio, k.Preset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mode, k.NextMode, k.Preset},
		{k.Audio, k.SpeedUp, k.DistortUp},
		{k.Help, k.Quit},
	}
}
