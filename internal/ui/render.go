package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/wordsearch/internal/dictionary"
	"github.com/atomicstack/wordsearch/internal/format/table"
	"github.com/atomicstack/wordsearch/internal/search"
	"github.com/atomicstack/wordsearch/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultTitle     = "WORD SEARCH"
	idleText         = "Start by typing a word in Search"
	noEntriesText    = "No definitions found. Try another word."
	defaultWrapWidth = 80
	bodyIndent       = 2
	minWrapWidth     = 20
)

// renderEntries draws entries in the order received. It is a pure function of
// its inputs.
func renderEntries(entries []dictionary.Entry, s *theme.Styles, width int) string {
	if len(entries) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultWrapWidth
	}
	inner := max(width-bodyIndent*2, minWrapWidth)

	var out []string
	out = append(out, renderPronunciation(entries, s, width)...)

	for i, entry := range entries {
		if i > 0 || len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, s.Word.Render(entry.Word))
		for _, meaning := range entry.Meanings {
			out = append(out, "")
			out = append(out, renderMeaning(meaning, s, inner)...)
		}
		out = append(out, renderAttribution(entry, s, width)...)
	}
	return strings.Join(out, "\n")
}

func renderPronunciation(entries []dictionary.Entry, s *theme.Styles, width int) []string {
	var out []string
	if phonetic := entries[0].Phonetic; phonetic != "" {
		out = append(out, s.Phonetic.Render(phonetic))
	}
	limit := uint(max(width-bodyIndent, 1))
	rows := make([][]string, 0, len(entries[0].Phonetics))
	for _, ph := range entries[0].Phonetics {
		if strings.TrimSpace(ph.Text) == "" {
			continue
		}
		rows = append(rows, []string{ph.Text, ph.Region()})
	}
	for _, line := range table.Format(rows, nil) {
		line = truncate.StringWithTail(line, limit, "…")
		out = append(out, indent.String(s.Label.Render(line), bodyIndent))
	}
	if ph, ok := entries[0].AudioPhonetic(); ok {
		text := ph.Audio
		if region := ph.Region(); region != "" {
			text += " (" + region + ")"
		}
		line := truncate.StringWithTail("Pronunciation: "+text, limit, "…")
		styled := s.Label.Render(line)
		if label, rest, ok := strings.Cut(line, ":"); ok {
			styled = s.Label.Render(label+":") + s.Related.Render(rest)
		}
		out = append(out, indent.String(styled, bodyIndent))
	}
	return out
}

func renderMeaning(meaning dictionary.Meaning, s *theme.Styles, width int) []string {
	out := []string{s.PartOfSpeech.Render(strings.ToUpper(meaning.PartOfSpeech))}
	numWidth := len(fmt.Sprintf("%d.", len(meaning.Definitions)))
	for i, def := range meaning.Definitions {
		num := fmt.Sprintf("%*s", numWidth, fmt.Sprintf("%d.", i+1))
		textWidth := max(width-numWidth-1, minWrapWidth)
		body := strings.Split(wordwrap.String(def.Definition, textWidth), "\n")
		for j, line := range body {
			prefix := strings.Repeat(" ", numWidth)
			if j == 0 {
				prefix = s.Number.Render(num)
			}
			out = append(out, indent.String(prefix+" "+s.Definition.Render(line), bodyIndent))
		}
		hang := bodyIndent + numWidth + 1
		if def.Example != "" {
			quoted := wordwrap.String("“"+def.Example+"”", textWidth)
			out = append(out, indentLines(quoted, s.Example, hang)...)
		}
		out = append(out, relatedLines("Synonyms", def.Synonyms, s, textWidth, hang)...)
		out = append(out, relatedLines("Antonyms", def.Antonyms, s, textWidth, hang)...)
	}
	if meaning.HasRelated() {
		out = append(out, "")
		out = append(out, relatedLines("Synonyms", meaning.Synonyms, s, width, bodyIndent)...)
		out = append(out, relatedLines("Antonyms", meaning.Antonyms, s, width, bodyIndent)...)
	}
	return out
}

func relatedLines(label string, words []string, s *theme.Styles, width, hang int) []string {
	if len(words) == 0 {
		return nil
	}
	text := wordwrap.String(label+": "+strings.Join(words, ", "), width)
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 && strings.HasPrefix(line, label+":") {
			line = s.Label.Render(label+":") + s.Related.Render(strings.TrimPrefix(line, label+":"))
		} else {
			line = s.Related.Render(line)
		}
		out[i] = indent.String(line, uint(hang))
	}
	return out
}

func renderAttribution(entry dictionary.Entry, s *theme.Styles, width int) []string {
	var out []string
	if len(entry.SourceURLs) > 0 {
		out = append(out, "")
		limit := uint(max(width-bodyIndent-len("Source: "), 1))
		for i, url := range entry.SourceURLs {
			label := "Source: "
			if i > 0 {
				label = strings.Repeat(" ", len(label))
			}
			out = append(out, indent.String(s.Label.Render(label)+s.Source.Render(truncate.StringWithTail(url, limit, "…")), bodyIndent))
		}
	}
	if lic := entry.License; lic != nil && lic.Name != "" {
		text := "Licensed under " + lic.Name
		if lic.URL != "" {
			text += " (" + lic.URL + ")"
		}
		out = append(out, indentLines(wordwrap.String(text, max(width-bodyIndent, minWrapWidth)), s.Label, bodyIndent)...)
	}
	return out
}

func indentLines(text string, style *lipgloss.Style, n int) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = indent.String(style.Render(line), uint(n))
	}
	return lines
}

// bodyText is what the results pane shows for state.
func bodyText(state search.ResultState, s *theme.Styles, width int) string {
	switch {
	case state.Status == search.StatusError:
		return s.Error.Render(state.Message)
	case len(state.Entries) > 0:
		return renderEntries(state.Entries, s, width)
	case state.Status == search.StatusSuccess:
		return s.Info.Render(noEntriesText)
	case state.Status == search.StatusIdle:
		return s.Info.Render(idleText)
	default:
		return ""
	}
}

func loadingText(query string) string {
	return fmt.Sprintf("Looking up %q…", query)
}

func titleText(query string) string {
	if query == "" {
		return defaultTitle
	}
	return query
}
