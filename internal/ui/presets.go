package ui

import "github.com/marin-t/aura/internal/params"

// Built-in emotion presets. The real parameter producer is an external
// interpretation service; these stand in for it so the full-replace path can
// be driven from the keyboard.
type preset struct {
	name   string
	params params.VisualParams
}

var presets = []preset{
	{
		name: "calm",
		params: params.VisualParams{
			Color: "#6fa8dc", Speed: 0.4, Distort: 0.1,
			Phrase:      "still water",
			Explanation: "A slow, settled state with little tension.",
			Advice:      "Nothing to fix. Stay a while.",
		},
	},
	{
		name: "joy",
		params: params.VisualParams{
			Color: "#ffd166", Speed: 1.8, Distort: 0.5,
			Phrase:      "sunlit rush",
			Explanation: "High energy with an open, bright tone.",
			Advice:      "Share it with someone.",
		},
	},
	{
		name: "anger",
		params: params.VisualParams{
			Color: "#ef476f", Speed: 2.6, Distort: 1.2,
			Phrase:      "red static",
			Explanation: "Sharp spikes of arousal looking for an edge.",
			Advice:      "Slow breaths before sharp words.",
		},
	},
	{
		name: "melancholy",
		params: params.VisualParams{
			Color: "#577590", Speed: 0.6, Distort: 0.35,
			Phrase:      "long shadow",
			Explanation: "Low, heavy, and turned inward.",
			Advice:      "Be gentle with yourself today.",
		},
	},
	{
		name: "awe",
		params: params.VisualParams{
			Color: "#9b5de5", Speed: 1.1, Distort: 0.8,
			Phrase:      "wide sky",
			Explanation: "Something larger than the day-to-day.",
		},
	},
	{
		name: "focus",
		params: params.VisualParams{
			Color: "#06d6a0", Speed: 1.3, Distort: 0.15,
			Phrase:      "narrow beam",
			Explanation: "Steady drive with the noise filtered out.",
			Advice:      "Guard the next hour.",
		},
	},
}
