package model

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// Words kept uppercase when deriving labels from snake_case field names.
var acronyms = map[string]string{
	"aws": "AWS",
	"s3":  "S3",
	"ec2": "EC2",
	"iam": "IAM",
	"id":  "ID",
	"ip":  "IP",
}

// DefaultLabeler converts a field name into a human-friendly label, keeping
// AWS service acronyms intact: "s3_bucket_name" becomes "S3 Bucket Name".
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}

	words := splitWordsPattern.Split(name, -1)
	segments := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		lower := strings.ToLower(word)
		if acronym, ok := acronyms[lower]; ok {
			segments = append(segments, acronym)
			continue
		}
		segments = append(segments, strings.ToUpper(lower[:1])+lower[1:])
	}
	return strings.Join(segments, " ")
}
