package helpers

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown     = goldmark.New()
	noticePolicy = newNoticePolicy()
)

// Markdown renders operator-supplied markdown (e.g. the affiliate disclosure)
// into sanitised HTML. Links are forced to open in a new context without a
// referrer.
func Markdown(source string) (template.HTML, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(noticePolicy.SanitizeBytes(buf.Bytes())), nil
}

func newNoticePolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span")
	policy.RequireNoFollowOnLinks(true)
	policy.RequireNoReferrerOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}
