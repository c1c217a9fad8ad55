package html

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-awsform/pkg/content"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// TopicHTML converts a help topic's body and footer into a sanitized HTML
// fragment. The header is left to the surrounding template.
func TopicHTML(topic content.Topic) string {
	var b strings.Builder
	for _, paragraph := range topic.Body {
		b.WriteString("<p>")
		for _, span := range paragraph {
			writeSpan(&b, span)
		}
		b.WriteString("</p>")
	}
	if len(topic.Footer) > 0 {
		b.WriteString(`<ul class="help-links">`)
		for _, link := range topic.Footer {
			b.WriteString(`<li><a href="`)
			b.WriteString(html.EscapeString(link.URL))
			b.WriteString(`" target="_blank" rel="noreferrer">`)
			b.WriteString(html.EscapeString(link.Label))
			b.WriteString("</a></li>")
		}
		b.WriteString("</ul>")
	}
	return helpSanitizer().Sanitize(b.String())
}

func writeSpan(b *strings.Builder, span content.Span) {
	switch span.Kind {
	case content.SpanEmphasis:
		b.WriteString("<em>")
		b.WriteString(html.EscapeString(span.Text))
		b.WriteString("</em>")
	case content.SpanTopicRef:
		b.WriteString(`<em class="help-topic-ref" data-topic="`)
		b.WriteString(html.EscapeString(span.Topic))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(span.Text))
		b.WriteString("</em>")
	default:
		b.WriteString(html.EscapeString(span.Text))
	}
}

func helpSanitizer() *bluemonday.Policy {
	helpPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("p", "em", "ul", "li")
		policy.AllowAttrs("class", "data-topic").OnElements("em", "ul")
		policy.AllowAttrs("href", "target", "rel").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(false)
		helpPolicy = policy
	})
	return helpPolicy
}
