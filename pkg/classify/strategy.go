// Package classify decides which parsing strategy applies to a fetched
// payload and assigns recipe categories. Both classifiers are pure
// functions over the data they are given.
package classify

import (
	"regexp"
	"strings"

	"github.com/test01203/hebrew-cookbook-extractor/models"
)

// Strategy selects the extraction path for a payload.
type Strategy string

const (
	// StrategyGenericHTML runs the selector-based field extractor chains.
	StrategyGenericHTML Strategy = "generic-html"
	// StrategyShortVideo extracts from an embedded video state blob and
	// parses the creator caption instead of page structure.
	StrategyShortVideo Strategy = "short-video"
)

// shortVideoURLPattern matches the canonical watch-URL shape of
// short-video platforms: a numeric video id path segment.
var shortVideoURLPattern = regexp.MustCompile(`/video/\d+`)

// stateBlobMarkers identify the embedded state objects short-video pages
// ship even when served under a non-canonical URL.
var stateBlobMarkers = []string{"SIGI_STATE", `"itemStruct"`}

// DetectStrategy picks the extraction strategy for a payload. Ambiguous
// inputs default to generic HTML: partial extraction beats total failure.
func DetectStrategy(sourceURL string, payload *models.RawPayload) Strategy {
	if shortVideoURLPattern.MatchString(sourceURL) {
		return StrategyShortVideo
	}
	if payload != nil {
		for _, marker := range stateBlobMarkers {
			if strings.Contains(payload.HTML, marker) {
				return StrategyShortVideo
			}
		}
	}
	return StrategyGenericHTML
}
