package content

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTopics_AllFourPresentAndComplete(t *testing.T) {
	all := Topics()
	if len(all) != 4 {
		t.Fatalf("expected 4 topics, got %d", len(all))
	}

	wantIDs := []string{TopicCredentials, TopicRegions, TopicBucket, TopicSubnet}
	if diff := cmp.Diff(wantIDs, TopicIDs()); diff != "" {
		t.Fatalf("unexpected topic ids (-want +got):\n%s", diff)
	}

	for _, topic := range all {
		if topic.Header == "" {
			t.Fatalf("topic %q has empty header", topic.ID)
		}
		if len(topic.Body) == 0 {
			t.Fatalf("topic %q has empty body", topic.ID)
		}
		for _, paragraph := range topic.Body {
			if len(paragraph) == 0 {
				t.Fatalf("topic %q has an empty paragraph", topic.ID)
			}
		}
		for _, link := range topic.Footer {
			if link.Label == "" {
				t.Fatalf("topic %q footer link has empty label", topic.ID)
			}
			parsed, err := url.Parse(link.URL)
			if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
				t.Fatalf("topic %q footer link URL invalid: %q", topic.ID, link.URL)
			}
		}
	}
}

func TestTopicByID_Credentials(t *testing.T) {
	topic, ok := TopicByID(TopicCredentials)
	if !ok {
		t.Fatalf("credentials topic missing")
	}
	if topic.Header != "Credentials" {
		t.Fatalf("unexpected header %q", topic.Header)
	}

	body := topic.PlainBody()
	for _, service := range []string{"IAM user", "S3", "CloudWatch Logs", "Secrets Manager", "EC2", "IAM"} {
		if !strings.Contains(body, service) {
			t.Fatalf("credentials body does not mention %q:\n%s", service, body)
		}
	}

	if len(topic.Footer) == 0 {
		t.Fatalf("credentials topic has no footer links")
	}
	if !strings.Contains(topic.Footer[0].URL, "docs.aws.amazon.com/cli") {
		t.Fatalf("expected a link to the AWS CLI authentication docs, got %q", topic.Footer[0].URL)
	}
}

func TestTopicByID_UnknownID(t *testing.T) {
	if _, ok := TopicByID("gcp"); ok {
		t.Fatalf("expected lookup miss for unknown topic")
	}
}

func TestTopics_TopicRefsResolve(t *testing.T) {
	for _, topic := range Topics() {
		for _, paragraph := range topic.Body {
			for _, span := range paragraph {
				if span.Kind != SpanTopicRef {
					continue
				}
				if _, ok := TopicByID(span.Topic); !ok {
					t.Fatalf("topic %q references unknown topic %q", topic.ID, span.Topic)
				}
				if span.Text == "" {
					t.Fatalf("topic %q has a topic reference without a label", topic.ID)
				}
			}
		}
	}
}

func TestTopics_ReadTwiceYieldsIdenticalValues(t *testing.T) {
	first := Topics()
	second := Topics()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("topic reads differ (-first +second):\n%s", diff)
	}

	// Mutations on the returned copies must not leak into the registry.
	first[0].Body[0][0].Text = "mutated"
	first[0].Footer[0].URL = "https://example.com"
	fresh, _ := TopicByID(TopicCredentials)
	if fresh.Body[0][0].Text == "mutated" {
		t.Fatalf("body mutated through a returned copy")
	}
	if fresh.Footer[0].URL == "https://example.com" {
		t.Fatalf("footer mutated through a returned copy")
	}
}
