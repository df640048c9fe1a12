// Package docs renders the command reference section of README.md from the
// live command registry, so the docs cannot drift from the code.
package docs

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"text/template"

	"remoji/internal/command"
)

// categoryWeights orders the README sections; unknown categories sort last.
var categoryWeights = map[string]int{
	"Emotes":    1,
	"General":   2,
	"Developer": 3,
}

type categorizer interface {
	Category() string
}

func categoryOf(c command.Command) string {
	if cat, ok := c.(categorizer); ok && cat.Category() != "" {
		return cat.Category()
	}
	return "Other"
}

// CommandSections renders the per-category command listing as markdown.
func CommandSections(registry *command.Registry) string {
	commands := registry.All()
	sort.SliceStable(commands, func(i, j int) bool {
		wi, wj := weight(categoryOf(commands[i])), weight(categoryOf(commands[j]))
		if wi == wj {
			return commands[i].Name() < commands[j].Name()
		}
		return wi < wj
	})

	var buf bytes.Buffer
	current := ""
	for _, c := range commands {
		cat := categoryOf(c)
		if cat != current {
			if current != "" {
				buf.WriteString("\n")
			}
			current = cat
			fmt.Fprintf(&buf, "### %s\n\n", current)
		}

		suffix := ""
		if c.DeveloperOnly() {
			suffix = " *(developer only)*"
		}
		fmt.Fprintf(&buf, "- **`/%s`** — %s%s\n", c.Name(), c.Description(), suffix)
	}
	return buf.String()
}

func weight(category string) int {
	if w, ok := categoryWeights[category]; ok {
		return w
	}
	return len(categoryWeights) + 1
}

// UpdateReadme regenerates README.md from README.md.tmpl and the registry.
func UpdateReadme(registry *command.Registry, tmplPath, outPath string) error {
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return err
	}

	data := struct {
		CommandSections string
	}{
		CommandSections: CommandSections(registry),
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}
