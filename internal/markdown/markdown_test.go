package markdown

import (
	"strings"
	"testing"
)

func TestRenderEmpty(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want \"\"", got)
	}
}

func TestRenderBasicMarkdown(t *testing.T) {
	html := Render("**heavy squats** and *light accessories*")
	if !strings.Contains(html, "<strong>heavy squats</strong>") {
		t.Errorf("Expected <strong>, got: %s", html)
	}
	if !strings.Contains(html, "<em>light accessories</em>") {
		t.Errorf("Expected <em>, got: %s", html)
	}
}

func TestRenderWorkoutTable(t *testing.T) {
	md := "| Day | Focus |\n|---|---|\n| Mon | Push |\n| Wed | Pull |"
	html := Render(md)
	if !strings.Contains(html, "<table>") {
		t.Errorf("Expected table HTML, got: %s", html)
	}
}

func TestRenderTaskList(t *testing.T) {
	html := Render("- [x] warm up\n- [ ] squats 3x5")
	if !strings.Contains(html, "checked") {
		t.Errorf("Expected checked checkbox, got: %s", html)
	}
}

func TestRenderHardWraps(t *testing.T) {
	html := Render("Squats 3x5\nBench 3x5")
	if !strings.Contains(html, "<br") {
		t.Errorf("Expected line break between plan lines, got: %s", html)
	}
}

func TestRenderExternalLinks(t *testing.T) {
	html := Render("[form guide](https://example.com/squat)")
	if !strings.Contains(html, `target="_blank"`) {
		t.Errorf("Expected target=_blank on external link, got: %s", html)
	}
	if !strings.Contains(html, `rel="noopener noreferrer"`) {
		t.Errorf("Expected rel=noopener on external link, got: %s", html)
	}
}

func TestRenderYouTubeEmbed(t *testing.T) {
	html := Render("Watch this demo:\n\nhttps://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if !strings.Contains(html, "youtube.com/embed/dQw4w9WgXcQ") {
		t.Errorf("Expected inline video embed, got: %s", html)
	}
}

func TestRenderInlineLinkNotEmbedded(t *testing.T) {
	html := Render("[demo](https://www.youtube.com/watch?v=dQw4w9WgXcQ) is worth a look")
	if strings.Contains(html, "<iframe") {
		t.Errorf("Inline links must stay links, got: %s", html)
	}
}
