package confighelp

import "net/http"

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath   string
	TopicParam  string
	FormatParam string
	Guard       GuardFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:   "/api/help",
		TopicParam:  "topic",
		FormatParam: "format",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/help"
	}
	if opts.TopicParam == "" {
		opts.TopicParam = "topic"
	}
	if opts.FormatParam == "" {
		opts.FormatParam = "format"
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithTopicParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.TopicParam = name
	}
}

func WithFormatParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FormatParam = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}
