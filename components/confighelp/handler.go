package confighelp

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-awsform/pkg/content"
	"github.com/goliatone/go-awsform/pkg/renderers/html"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type topicSummary struct {
	ID     string `json:"id"`
	Header string `json:"header"`
}

type topicLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type topicDetail struct {
	ID         string      `json:"id"`
	Header     string      `json:"header"`
	Paragraphs []string    `json:"paragraphs"`
	Links      []topicLink `json:"links,omitempty"`
}

type indexResponse struct {
	Data []topicSummary `json:"data"`
}

type detailResponse struct {
	Data topicDetail `json:"data"`
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value. Callers are expected to pass an Options value produced by NewOptions
// so defaults are applied.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		topicID := r.URL.Query().Get(opts.TopicParam)
		if topicID == "" {
			writeIndex(w, r)
			return
		}

		topic, ok := content.TopicByID(topicID)
		if !ok {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		if r.URL.Query().Get(opts.FormatParam) == "html" {
			writeTopicHTML(w, r, topic)
			return
		}
		writeTopicJSON(w, r, topic)
	})
}

func writeIndex(w http.ResponseWriter, r *http.Request) {
	summaries := make([]topicSummary, 0, 4)
	for _, topic := range content.Topics() {
		summaries = append(summaries, topicSummary{ID: topic.ID, Header: topic.Header})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(indexResponse{Data: summaries})
}

func writeTopicJSON(w http.ResponseWriter, r *http.Request, topic content.Topic) {
	detail := topicDetail{
		ID:         topic.ID,
		Header:     topic.Header,
		Paragraphs: paragraphTexts(topic),
	}
	for _, link := range topic.Footer {
		detail.Links = append(detail.Links, topicLink{Label: link.Label, URL: link.URL})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(detailResponse{Data: detail})
}

func writeTopicHTML(w http.ResponseWriter, r *http.Request, topic content.Topic) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte(html.TopicHTML(topic)))
}

func paragraphTexts(topic content.Topic) []string {
	out := make([]string, 0, len(topic.Body))
	for _, paragraph := range topic.Body {
		var text string
		for _, span := range paragraph {
			text += span.Text
		}
		out = append(out, text)
	}
	return out
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
