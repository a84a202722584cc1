package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var instructionChains = []listHeuristic{
	instructionsFromMetaDescription,
	instructionsFromBodyAfterMarker,
	instructionsFromStructuredContainer,
	instructionsFromOrderedList,
}

// stepPrefix is a numeric step marker at the head of a line ("1.", "2)").
var stepPrefix = regexp.MustCompile(`^\d+[.)]\s*`)

// stepBoundary splits a single-line description at embedded step numbers.
var stepBoundary = regexp.MustCompile(`\s*\d+[.)]\s+`)

// videoLinkMarkers exclude lines that just point at the creator's video.
var videoLinkMarkers = []string{"youtube.com", "youtu.be", "tiktok.com"}

// instructionsFromMetaDescription reads the preparation half of the
// social-preview description.
func instructionsFromMetaDescription(ctx *pageContext) ([]string, bool) {
	description, ok := ctx.doc.MetaProperty("og:description")
	if !ok {
		description, ok = ctx.doc.MetaName("description")
	}
	if !ok {
		return nil, false
	}

	_, after, found := splitAtMarker(description, ctx.vocab.InstructionMarkers)
	if !found {
		return nil, false
	}
	after = strings.TrimLeft(after, ": -\t\n")

	lines := splitLines(after, "\n")
	if len(lines) <= 1 {
		// Single-line captions pack their steps behind step numbers.
		lines = stepBoundary.Split(after, -1)
	}

	steps := cleanSteps(lines)
	return steps, len(steps) > 0
}

// instructionsFromBodyAfterMarker collects paragraph and list-item text
// appearing after the preparation marker in the main content body.
func instructionsFromBodyAfterMarker(ctx *pageContext) ([]string, bool) {
	body := ctx.doc.Find(".entry-content, article, .post-content").First()
	if body.Length() == 0 {
		return nil, false
	}

	var lines []string
	afterMarker := false

	body.Children().Each(func(_ int, child *goquery.Selection) {
		text := strings.TrimSpace(child.Text())
		if !afterMarker {
			if strings.Contains(strings.ToLower(text), ctx.vocab.PrepMarker) ||
				containsAny(text, ctx.vocab.InstructionMarkers) {
				afterMarker = true
			}
			return
		}

		appendLine := func(itemText string) {
			itemText = strings.TrimSpace(itemText)
			if itemText != "" && !containsAny(itemText, videoLinkMarkers) {
				lines = append(lines, itemText)
			}
		}

		items := child.Find("li, p")
		if items.Length() == 0 {
			if name := goquery.NodeName(child); name == "p" || name == "li" {
				appendLine(text)
			}
			return
		}
		items.Each(func(_ int, item *goquery.Selection) {
			appendLine(item.Text())
		})
	})

	steps := cleanSteps(lines)
	return steps, len(steps) > 0
}

// instructionsFromStructuredContainer reads dedicated instruction
// wrappers the way recipe plugins emit them; the first wrapper with
// plausible items wins.
func instructionsFromStructuredContainer(ctx *pageContext) ([]string, bool) {
	wrappers := ctx.doc.Find(`.preparation, .instructions, [itemprop="recipeInstructions"], .recipe-instructions, .method, .steps`)

	var steps []string
	wrappers.EachWithBreak(func(_ int, wrapper *goquery.Selection) bool {
		var lines []string
		wrapper.Find("li, p").Each(func(_ int, item *goquery.Selection) {
			text := strings.TrimSpace(item.Text())
			if len([]rune(text)) > 5 && !containsAny(text, ctx.vocab.Boilerplate) {
				lines = append(lines, text)
			}
		})
		steps = cleanSteps(lines)
		return len(steps) == 0
	})

	return steps, len(steps) > 0
}

// instructionsFromOrderedList is the last resort: an <ol> directly
// preceded by the preparation marker.
func instructionsFromOrderedList(ctx *pageContext) ([]string, bool) {
	var steps []string
	ctx.doc.Find("ol").EachWithBreak(func(_ int, list *goquery.Selection) bool {
		prevText := strings.ToLower(strings.TrimSpace(list.Prev().Text()))
		if !strings.Contains(prevText, ctx.vocab.PrepMarker) && !containsAny(prevText, ctx.vocab.InstructionMarkers) {
			return true
		}
		var lines []string
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				lines = append(lines, text)
			}
		})
		steps = cleanSteps(lines)
		return len(steps) == 0
	})

	return steps, len(steps) > 0
}

// cleanSteps strips numeric step prefixes, drops empties and exact
// duplicates, and keeps encounter order.
func cleanSteps(lines []string) []string {
	var steps []string
	seen := make(map[string]struct{})
	for _, line := range lines {
		step := strings.TrimSpace(stepPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
		if step == "" {
			continue
		}
		if _, dup := seen[step]; dup {
			continue
		}
		seen[step] = struct{}{}
		steps = append(steps, step)
	}
	return steps
}
