package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/archivekit/formset/pkg/manager"
	"github.com/archivekit/formset/pkg/prompt"
	"github.com/archivekit/formset/pkg/render"
	"github.com/archivekit/formset/pkg/viewdef"
	"github.com/archivekit/formset/pkg/widgets"
)

func main() {
	view := flag.String("view", "views/record.yaml", "view definition file")
	group := flag.String("group", "", "group to add rows to")
	formType := flag.String("form", "", "form type to clone (defaults to the group's only type)")
	rows := flag.Int("rows", 1, "number of rows to add")
	interactive := flag.Bool("interactive", false, "prompt for field values after adding rows")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	dir, file := filepath.Split(*view)
	if dir == "" {
		dir = "."
	}
	groups, err := viewdef.NewLoader(os.DirFS(dir)).LoadGroups(file)
	if err != nil {
		log.Fatalf("Failed to load view definition: %v", err)
	}

	target, ok := groups[*group]
	if !ok {
		log.Fatalf("No group %q in %s (have %v)", *group, *view, groupNames(groups))
	}

	form := *formType
	if form == "" {
		if len(target.Blueprints) != 1 {
			log.Fatalf("Group %q has multiple form types; pass -form", *group)
		}
		for name := range target.Blueprints {
			form = name
		}
	}

	mgr := manager.New(manager.WithWidgets(widgets.NewRegistry()))
	filler := prompt.NewFiller()
	fragments, err := render.NewFragments()
	if err != nil {
		log.Fatalf("Failed to initialise renderer: %v", err)
	}

	var rendered []byte
	for i := 0; i < *rows; i++ {
		row, err := mgr.AddRow(target, form)
		if err != nil {
			log.Fatalf("Failed to add row: %v", err)
		}
		if *interactive {
			if err := filler.Fill(ctx, row); err != nil {
				log.Fatalf("Failed to fill row: %v", err)
			}
		}
		html, err := fragments.Row(row)
		if err != nil {
			log.Fatalf("Failed to render row: %v", err)
		}
		rendered = append(rendered, html...)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Fragments written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func groupNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}
