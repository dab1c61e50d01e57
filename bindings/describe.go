// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bindings

import (
	"strings"

	"cogentcore.org/interact/events"
	"cogentcore.org/interact/shortcuts"
)

// describeKinds is the order in which shortcut kinds are described.
var describeKinds = []shortcuts.Kinds{shortcuts.KindKey, shortcuts.KindClick, shortcuts.KindMotion}

// Describe returns one line per binding, "<shortcut> -> <operation>",
// grouped by shortcut kind (key, click, motion) and in insertion order
// within a group, followed by one line per staged handler,
// "<stage> <category> -> <operation>". It is documentation only.
func (tb *Table) Describe() string {
	var b strings.Builder
	for _, kind := range describeKinds {
		for _, kv := range tb.flat.Order {
			if kv.Key.Kind != kind {
				continue
			}
			b.WriteString(kv.Key.String() + " -> " + kv.Value.Name + "\n")
		}
	}
	for st := Init; st < StagesN; st++ {
		for _, kv := range tb.staged[st].Order {
			b.WriteString(st.String() + " " + kv.Key.String() + " -> " + kv.Value.Name + "\n")
		}
	}
	return b.String()
}

// MarkdownDoc generates markdown tables of the bindings by shortcut
// kind, and of the staged handlers by category.
func (tb *Table) MarkdownDoc() string {
	var b strings.Builder

	for _, kind := range describeKinds {
		var rows []string
		for _, kv := range tb.flat.Order {
			if kv.Key.Kind == kind {
				rows = append(rows, "| `"+kv.Key.String()+"` | "+kv.Value.Name+" |\n")
			}
		}
		if len(rows) == 0 {
			continue
		}
		b.WriteString("### " + kind.String() + "\n\n")
		b.WriteString("| Shortcut | Action |\n")
		b.WriteString("| -------- | ------ |\n")
		for _, r := range rows {
			b.WriteString(r)
		}
		b.WriteString("\n")
	}

	var cats []events.Categories
	for _, cat := range events.CategoriesValues() {
		if tb.IsStaged(cat) {
			cats = append(cats, cat)
		}
	}
	if len(cats) == 0 {
		return b.String()
	}
	b.WriteString("### Stages\n\n")
	b.WriteString("| Category ")
	for st := Init; st < StagesN; st++ {
		b.WriteString("| " + st.String() + " ")
	}
	b.WriteString("|\n")
	b.WriteString("| -------- ")
	for st := Init; st < StagesN; st++ {
		b.WriteString("| " + strings.Repeat("-", len(st.String())) + " ")
	}
	b.WriteString("|\n")
	for _, cat := range cats {
		b.WriteString("| " + cat.String() + " ")
		for st := Init; st < StagesN; st++ {
			ref, ok := tb.StageHandler(st, cat)
			if ok {
				b.WriteString("| " + ref.Name + " ")
			} else {
				b.WriteString("|   ")
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("\n")
	return b.String()
}
