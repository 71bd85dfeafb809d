package domain

import "strings"

// Classify maps a window title and process name to a category. The rules
// are a fixed keyword policy over the lowercased title+process pair;
// anything unmatched lands in Other.
func Classify(title, process string) string {
	lowered := strings.ToLower(title + " " + process)

	switch {
	case strings.Contains(lowered, "spotify"):
		return "Music"
	case strings.Contains(lowered, "vscode"), strings.Contains(lowered, "code"):
		return "Work"
	case strings.Contains(lowered, "chrome"), strings.Contains(lowered, "brave"):
		return classifyBrowser(lowered)
	case strings.Contains(lowered, "game"):
		return "Gaming"
	case strings.Contains(lowered, "whatsapp"),
		strings.Contains(lowered, "discord"),
		strings.Contains(lowered, "teams"),
		strings.Contains(lowered, "telegram"):
		return "Chatting"
	default:
		return OtherCategory
	}
}

func classifyBrowser(lowered string) string {
	switch {
	case strings.Contains(lowered, "youtube"), strings.Contains(lowered, "netflix"):
		return "Entertainment"
	case strings.Contains(lowered, "docs"),
		strings.Contains(lowered, "chatgpt"),
		strings.Contains(lowered, "slack"):
		return "Work"
	case strings.Contains(lowered, "github"),
		strings.Contains(lowered, "gitlab"),
		strings.Contains(lowered, "bitbucket"):
		return "Work"
	case strings.Contains(lowered, "research"),
		strings.Contains(lowered, "papers"),
		strings.Contains(lowered, "arxiv"):
		return "Research"
	case strings.Contains(lowered, "education"),
		strings.Contains(lowered, "learning"),
		strings.Contains(lowered, "courses"):
		return "Education"
	default:
		return "Browsing"
	}
}

// CategoryColors is the fixed display color per category, keyed by the
// names Classify can produce plus the scoring allow-list.
var CategoryColors = map[string]string{
	"Work":          "#A855F7",
	"Development":   "#C084FC",
	"Research":      "#3B82F6",
	"Education":     "#06B6D4",
	"Writing":       "#22C55E",
	"Tools":         "#9CA3AF",
	"Design":        "#F97316",
	"Music":         "#EC4899",
	"Entertainment": "#EF4444",
	"Browsing":      "#F59E0B",
	"Gaming":        "#8B5CF6",
	"Chatting":      "#14B8A6",
	OtherCategory:   "#6B7280",
}

// ColorFor returns the display color for a category, with a neutral
// fallback for categories outside the fixed table.
func ColorFor(category string) string {
	if c, ok := CategoryColors[category]; ok {
		return c
	}
	return CategoryColors[OtherCategory]
}
