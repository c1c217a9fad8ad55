package content

import "strings"

// Topic identifiers for the four help records.
const (
	TopicCredentials = "credentials"
	TopicRegions     = "regions"
	TopicBucket      = "bucket"
	TopicSubnet      = "subnet"
)

// SpanKind enumerates the inline markup kinds a paragraph can carry.
type SpanKind string

const (
	SpanText     SpanKind = "text"
	SpanEmphasis SpanKind = "emphasis"
	// SpanTopicRef marks an emphasised reference to another help topic; the
	// Topic field holds the target topic id.
	SpanTopicRef SpanKind = "topicRef"
)

// Span is a run of inline content within a paragraph.
type Span struct {
	Kind  SpanKind
	Text  string
	Topic string
}

// Paragraph is an ordered list of spans rendered as a single block.
type Paragraph []Span

// Link is a labelled external hyperlink shown in a topic footer.
type Link struct {
	Label string
	URL   string
}

// Topic is one read-only help record: a header label, one or more body
// paragraphs, and an optional footer of reference links.
type Topic struct {
	ID     string
	Header string
	Body   []Paragraph
	Footer []Link
}

func text(s string) Span     { return Span{Kind: SpanText, Text: s} }
func emphasis(s string) Span { return Span{Kind: SpanEmphasis, Text: s} }

func topicRef(id, label string) Span {
	return Span{Kind: SpanTopicRef, Text: label, Topic: id}
}

var topics = []Topic{
	{
		ID:     TopicCredentials,
		Header: "Credentials",
		Body: []Paragraph{
			{
				text("The credentials of an IAM user with programmatic access. "),
				text("The IAM user must be allowed to use the "),
				emphasis("S3"), text(", "),
				emphasis("CloudWatch Logs"), text(", "),
				emphasis("Secrets Manager"), text(", "),
				emphasis("EC2"), text(", and "),
				emphasis("IAM"), text(" services."),
			},
			{
				text("Choose the "), emphasis("Default"),
				text(" type to pick up credentials from the environment instead of entering an access key pair."),
			},
		},
		Footer: []Link{
			{
				Label: "Learn more about configuring IAM user credentials",
				URL:   "https://docs.aws.amazon.com/cli/latest/userguide/cli-authentication-user.html",
			},
		},
	},
	{
		ID:     TopicRegions,
		Header: "Regions",
		Body: []Paragraph{
			{
				text("The regions where compute resources may be provisioned and artifacts may be stored. "),
				text("Select at least one region; the first selected region is treated as the primary one."),
			},
			{
				text("The bucket configured under "),
				topicRef(TopicBucket, "Bucket"),
				text(" must belong to one of the selected regions."),
			},
		},
	},
	{
		ID:     TopicBucket,
		Header: "Bucket",
		Body: []Paragraph{
			{
				text("The name of the S3 bucket where state and artifacts are stored. "),
				text("The bucket must belong to one of the regions selected under "),
				topicRef(TopicRegions, "Regions"),
				text("."),
			},
		},
	},
	{
		ID:     TopicSubnet,
		Header: "Subnet",
		Body: []Paragraph{
			{
				text("The EC2 subnet in which instances are launched. "),
				text("Leave it empty to use the default subnet of the selected region; "),
				text("instances get a public IP unless the subnet is configured otherwise."),
			},
		},
	},
}

// Topics returns the four help records in display order. The slice and its
// nested content are copies.
func Topics() []Topic {
	out := make([]Topic, len(topics))
	for i, topic := range topics {
		out[i] = cloneTopic(topic)
	}
	return out
}

// TopicByID returns the help record for the given topic id.
func TopicByID(id string) (Topic, bool) {
	for _, topic := range topics {
		if topic.ID == id {
			return cloneTopic(topic), true
		}
	}
	return Topic{}, false
}

// TopicIDs returns the topic identifiers in display order.
func TopicIDs() []string {
	ids := make([]string, len(topics))
	for i, topic := range topics {
		ids[i] = topic.ID
	}
	return ids
}

// PlainBody flattens the body paragraphs to plain text, one paragraph per
// line. Useful for terminal help output and tests.
func (t Topic) PlainBody() string {
	lines := make([]string, 0, len(t.Body))
	for _, paragraph := range t.Body {
		var b strings.Builder
		for _, span := range paragraph {
			b.WriteString(span.Text)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func cloneTopic(t Topic) Topic {
	cloned := t
	if len(t.Body) > 0 {
		cloned.Body = make([]Paragraph, len(t.Body))
		for i, paragraph := range t.Body {
			cloned.Body[i] = append(Paragraph(nil), paragraph...)
		}
	}
	if len(t.Footer) > 0 {
		cloned.Footer = append([]Link(nil), t.Footer...)
	}
	return cloned
}
