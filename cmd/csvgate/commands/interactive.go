package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/csvgate/internal/errors"
	"github.com/thoreinstein/csvgate/internal/schema"
)

// pickSchema lets the user choose a schema document from the search
// directories. Returns an empty path if the selection was aborted.
func pickSchema(dirs []string) (string, error) {
	found := schema.Discover(dirs)
	if len(found) == 0 {
		return "", errors.NewUserError(errors.ErrSchemaNotFound,
			"Put schema documents in: "+strings.Join(dirs, ", "))
	}

	idx, err := fuzzyfinder.Find(
		found,
		func(i int) string {
			return found[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return previewSchema(found[i])
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive schema selection failed")
	}

	return found[idx], nil
}

// previewSchema summarizes a schema document for the finder's preview pane.
func previewSchema(path string) string {
	def, err := schema.Load(path)
	if err != nil {
		return fmt.Sprintf("unreadable schema: %v", err)
	}

	fields := make([]string, 0, len(def.Fields))
	for field := range def.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Schema: %s\nFields: %d\n\n", path, len(fields))
	for _, field := range fields {
		rules := def.Fields[field]
		if len(rules) == 0 {
			fmt.Fprintf(&sb, "  %s: (accept all)\n", field)
			continue
		}
		names := make([]string, len(rules))
		for i, r := range rules {
			names[i] = r.Rule
		}
		fmt.Fprintf(&sb, "  %s: %s\n", field, strings.Join(names, ", "))
	}
	return sb.String()
}
