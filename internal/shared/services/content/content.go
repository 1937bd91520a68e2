// Package content sanitizes and renders ticket comment bodies. Comments
// are stored as sanitized markdown and rendered to HTML on read.
package content

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

type Service struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewService() *Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre")

	return &Service{
		md:     md,
		policy: policy,
		strict: bluemonday.StrictPolicy(),
	}
}

// Sanitize strips all markup from raw comment input before storage. The
// stored form is plain markdown text.
func (s *Service) Sanitize(content string) string {
	return s.strict.Sanitize(content)
}

// Render converts stored markdown to sanitized HTML for display.
func (s *Service) Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to render comment: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}
