package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"

	adminview "github.com/goliatone/go-adminview"
	"github.com/goliatone/go-adminview/pkg/renderers/bootstrap"
	"github.com/goliatone/go-adminview/pkg/schema"
)

func main() {
	source := flag.String("source", "openapi.yaml", "OpenAPI document path")
	opID := flag.String("operation", "", "operation ID to render (interactive picker if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	pages := flag.Int("pages", 0, "render a pager preview with this many pages")
	page := flag.Int("page", 0, "current page for the pager preview")
	styles := flag.Bool("styles", true, "inline the default stylesheet")
	flag.Parse()

	ctx := context.Background()

	adapter, err := schema.LoadFile(ctx, *source)
	if err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}

	operation := *opID
	if operation == "" {
		operation, err = pickOperation(adapter)
		if err != nil {
			log.Fatalf("Failed to pick operation: %v", err)
		}
	}

	form, err := adapter.Form(operation)
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}

	view := adminview.Page{Title: form.Name, Form: &form}
	if *pages > 0 {
		nav, err := adminview.NewPager(*page, *pages, func(p int) string {
			return "?page=" + strconv.Itoa(p)
		})
		if err != nil {
			log.Fatalf("Failed to build pager: %v", err)
		}
		view.List = &adminview.List{Nav: nav}
	}

	var options []bootstrap.Option
	if *styles {
		options = append(options, bootstrap.WithDefaultStyles())
	}

	outputHTML, err := adminview.RenderHTML(ctx, view, adminview.Options{}, options...)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, outputHTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Preview written to %s\n", *output)
	} else {
		fmt.Println(string(outputHTML))
	}
}

func pickOperation(adapter *schema.Adapter) (string, error) {
	operations := adapter.Operations()
	if len(operations) == 0 {
		return "", fmt.Errorf("document defines no operations with a request body")
	}
	if len(operations) == 1 {
		return operations[0], nil
	}

	var picked string
	prompt := &survey.Select{
		Message: "Operation to render:",
		Options: operations,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return "", err
	}
	return picked, nil
}
