package cmd

import (
	"fmt"
	"log"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	title    string
	parent   string
	navOrder int
}

// map from the base Markdown file name to its page meta
var metaMap = map[string]meta{
	"blastgraph":        {title: "blastgraph"},
	"blastgraph_build":  {title: "build", parent: "blastgraph", navOrder: 0},
	"blastgraph_format": {title: "format", parent: "blastgraph", navOrder: 1},
}

// docsCmd generates the Markdown documentation pages for the command tree
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for the blastgraph commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			log.Fatalf("%v", err)
		}
		if err := doc.GenMarkdownTreeCustom(rootCmd, dir, filePrepender, linkHandler); err != nil {
			log.Fatalf("%v", err)
		}
	},
}

func init() {
	docsCmd.Flags().StringP("dir", "d", "./docs", "directory to write the Markdown files to")

	rootCmd.AddCommand(docsCmd)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	m, ok := metaMap[base]
	if !ok {
		return ""
	}
	if m.parent == "" {
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	}
	return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "blastgraph" {
		return "/"
	}
	return base
}
