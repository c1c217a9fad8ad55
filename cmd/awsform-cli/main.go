package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	awsform "github.com/goliatone/go-awsform"
	"github.com/goliatone/go-awsform/pkg/content"
	pkgopenapi "github.com/goliatone/go-awsform/pkg/openapi"
)

func main() {
	opID := flag.String("operation", awsform.DefaultOperationID, "operation ID to render")
	renderer := flag.String("renderer", "html", "renderer to use (html or tui)")
	output := flag.String("output", "", "output file (stdout if empty)")
	source := flag.String("source", "", "OpenAPI document path (embedded schema if empty)")
	topic := flag.String("topic", "", "print a help topic instead of rendering the form")
	listTopics := flag.Bool("list-topics", false, "list the available help topic ids")
	interactive := flag.Bool("interactive", false, "walk the form as terminal prompts (shorthand for -renderer tui)")
	flag.Parse()

	if *interactive {
		*renderer = "tui"
	}

	if *listTopics {
		for _, id := range content.TopicIDs() {
			fmt.Println(id)
		}
		return
	}

	if *topic != "" {
		printTopic(*topic)
		return
	}

	ctx := context.Background()

	gen := awsform.New()

	req := awsform.Request{
		Source:      parseSource(*source),
		OperationID: *opID,
		Renderer:    *renderer,
	}

	rendered, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func printTopic(id string) {
	record, ok := content.TopicByID(id)
	if !ok {
		log.Fatalf("Unknown help topic %q (known: %s)", id, strings.Join(content.TopicIDs(), ", "))
	}
	fmt.Println(record.Header)
	fmt.Println()
	fmt.Println(record.PlainBody())
	for _, link := range record.Footer {
		fmt.Printf("\n%s: %s\n", link.Label, link.URL)
	}
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	return pkgopenapi.SourceFromFile(path)
}
