// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapters

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	nameColor   = color.New(color.FgGreen, color.Bold)
	headerColor = color.New(color.Bold)
	detailColor = color.New(color.FgHiBlack)
)

// List writes the adapter listing printed by --rga-list-adapters: enabled
// adapters first, then the ones disabled by default.
func List(w io.Writer, all []Adapter) error {
	var enabled, disabled []Adapter
	for _, a := range all {
		if a.DisabledByDefault {
			disabled = append(disabled, a)
		} else {
			enabled = append(enabled, a)
		}
	}

	var b strings.Builder
	headerColor.Fprintln(&b, "Adapters:")
	for _, a := range enabled {
		writeAdapter(&b, a)
	}

	if len(disabled) > 0 {
		b.WriteString("\n")
		headerColor.Fprintln(&b, "The following adapters are disabled by default, and can be enabled using '--rga-adapters=+foo,bar':")
		for _, a := range disabled {
			writeAdapter(&b, a)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeAdapter(b *strings.Builder, a Adapter) {
	fmt.Fprintf(b, " - %s\n", nameColor.Sprint(a.Name))
	fmt.Fprintf(b, "     %s\n", a.Description)

	extensions := make([]string, len(a.Extensions))
	for i, ext := range a.Extensions {
		extensions[i] = "." + ext
	}
	fmt.Fprintf(b, "     %s %s\n", detailColor.Sprint("Extensions:"), strings.Join(extensions, ", "))

	if len(a.Mimetypes) > 0 {
		fmt.Fprintf(b, "     %s %s\n", detailColor.Sprint("Mime Types:"), strings.Join(a.Mimetypes, ", "))
	}
	if a.Custom {
		fmt.Fprintf(b, "     %s %s\n", detailColor.Sprint("Binary:"), a.Binary)
	}
	b.WriteString("\n")
}
