// Package scrape turns a fetched board listing page into typed rows.
//
// A container missing a required field is skipped, an unparseable comment
// count becomes zero, and only a document that cannot be parsed at all
// fails the call. No network, no side effects.
package scrape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"parkview/internal/models"
)

// Selectors for the clien.net listing structure. Each row of the board is a
// .symph_row container; every field is resolved with queries scoped to that
// container so one malformed row cannot bleed into its neighbors.
const (
	rowSelector       = ".symph_row"
	titleSelector     = ".subject_fixed"
	linkSelector      = ".list_subject"
	commentSelector   = ".rSymph05"
	nicknameSelector  = ".list_author .nickname"
	authorImgSelector = ".list_author img"
	hitSelector       = ".list_hit .hit"
	timeSelector      = ".list_time .timestamp"
)

// Rows extracts every listing row from markup in document order.
// It returns the rows, the number of containers dropped for missing
// required fields, and an error only when the document itself is unparseable.
func Rows(markup string) ([]models.Row, int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, 0, fmt.Errorf("parse listing markup: %w", err)
	}

	var rows []models.Row
	skipped := 0
	doc.Find(rowSelector).Each(func(_ int, container *goquery.Selection) {
		row, ok := extractRow(container)
		if !ok {
			skipped++
			return
		}
		rows = append(rows, row)
	})
	return rows, skipped, nil
}

// extractRow resolves the five fields of one container. ok is false when a
// required field is empty after fallbacks; such rows are dropped upstream.
func extractRow(container *goquery.Selection) (models.Row, bool) {
	title := strings.TrimSpace(container.Find(titleSelector).First().Text())

	url, hasURL := container.Find(linkSelector).First().Attr("href")
	url = strings.TrimSpace(url)

	author := strings.TrimSpace(container.Find(nicknameSelector).First().Text())
	if author == "" {
		// Avatar-only authors carry their name in the image alt.
		author = strings.TrimSpace(container.Find(authorImgSelector).First().AttrOr("alt", ""))
	}

	viewCount := strings.TrimSpace(container.Find(hitSelector).First().Text())
	timestamp := strings.TrimSpace(container.Find(timeSelector).First().Text())

	if title == "" || !hasURL || url == "" || author == "" || viewCount == "" || timestamp == "" {
		return models.Row{}, false
	}

	return models.Row{
		Title:        title,
		URL:          url,
		CommentCount: commentCount(container),
		Author:       author,
		ViewCount:    viewCount,
		Timestamp:    timestamp,
	}, true
}

// commentCount reads the comment marker. An absent marker means the post has
// no comments yet, and a value that does not parse as an unsigned integer
// (locale separators, stray glyphs, empty text) also counts as zero rather
// than failing the row.
func commentCount(container *goquery.Selection) int {
	marker := container.Find(commentSelector).First()
	if marker.Length() == 0 {
		return 0
	}
	n, err := strconv.ParseUint(strings.TrimSpace(marker.Text()), 10, 32)
	if err != nil {
		return 0
	}
	return int(n)
}
