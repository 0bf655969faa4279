// Package markdown renders assistant replies to HTML for the chat
// page: GFM so workout tables come out as tables, hard wraps so plan
// lines keep their line breaks, and safe external links.
package markdown

import (
	"bytes"
	"regexp"
	"strings"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var md goldmark.Markdown

func init() {
	md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // keep plan lines on their own rows
		),
	)
}

// Render converts markdown content to HTML. On a conversion failure
// the raw text is not leaked as HTML; the caller gets "".
func Render(content string) string {
	if content == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return ""
	}

	result := buf.String()
	result = processVideoEmbeds(result)
	return processExternalLinks(result)
}

var (
	youtubeRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([a-zA-Z0-9_-]{11})(?:[?&]\S*)?`)

	// Matches <p><a href="URL">URL</a></p> where href == text, i.e. a
	// standalone autolinked URL on its own line.
	autolinkedParagraphRe = regexp.MustCompile(`<p><a href="(https?://[^"]+)"[^>]*>\s*(https?://[^<]+)\s*</a></p>`)
)

// processVideoEmbeds turns standalone exercise-demo video links into
// inline players.
func processVideoEmbeds(s string) string {
	return autolinkedParagraphRe.ReplaceAllStringFunc(s, func(match string) string {
		sub := autolinkedParagraphRe.FindStringSubmatch(match)
		if len(sub) < 3 {
			return match
		}
		href := strings.TrimSpace(sub[1])
		if href != strings.TrimSpace(sub[2]) {
			return match
		}
		if m := youtubeRe.FindStringSubmatch(href); len(m) >= 2 {
			return youtubeEmbed(m[1])
		}
		return match
	})
}

func youtubeEmbed(videoID string) string {
	return `<div class="embed-video"><iframe src="https://www.youtube.com/embed/` + videoID + `" frameborder="0" allow="encrypted-media; picture-in-picture" allowfullscreen loading="lazy"></iframe></div>`
}

var linkRe = regexp.MustCompile(`<a href="(https?://[^"]*)"`)

// processExternalLinks adds target="_blank" rel="noopener noreferrer"
// to external links so the chat page stays open.
func processExternalLinks(s string) string {
	return linkRe.ReplaceAllStringFunc(s, func(match string) string {
		return match + ` target="_blank" rel="noopener noreferrer"`
	})
}
