package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/metamock/internal/fixture"
)

// itemView is the JSON and text shape of one built fixture.
type itemView struct {
	Name        string         `json:"name"`
	Material    string         `json:"material"`
	DisplayName *string        `json:"display_name"`
	Lore        []string       `json:"lore"`
	Damage      int            `json:"damage"`
	HasDamage   bool           `json:"has_damage"`
	Enchants    map[string]int `json:"enchants"`
	Hash        int32          `json:"hash"`
}

func newItemView(item *fixture.Item) itemView {
	m := item.Meta
	v := itemView{
		Name:      item.Name,
		Material:  item.Material.String(),
		Damage:    m.GetDamage(),
		HasDamage: m.HasDamage(),
		Enchants:  make(map[string]int),
		Hash:      m.Hash(),
	}
	if m.HasDisplayName() {
		name := m.GetDisplayName()
		v.DisplayName = &name
	}
	if lore, err := m.GetLore(); err == nil {
		v.Lore = lore
	}
	for e, lvl := range m.GetEnchants() {
		v.Enchants[e.String()] = lvl
	}
	return v
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// writeItem prints one item as indented key/value lines.
func writeItem(w io.Writer, v itemView) {
	fmt.Fprintf(w, "Name:          %s\n", v.Name)
	fmt.Fprintf(w, "Material:      %s\n", v.Material)
	if v.DisplayName != nil {
		fmt.Fprintf(w, "Display name:  %q\n", *v.DisplayName)
	} else {
		fmt.Fprintln(w, "Display name:  (unset)")
	}
	switch {
	case v.Lore == nil:
		fmt.Fprintln(w, "Lore:          (unset)")
	case len(v.Lore) == 0:
		fmt.Fprintln(w, "Lore:          (empty)")
	default:
		fmt.Fprintln(w, "Lore:")
		for i, line := range v.Lore {
			fmt.Fprintf(w, "  %d: %s\n", i, line)
		}
	}
	fmt.Fprintf(w, "Damage:        %d\n", v.Damage)
	if len(v.Enchants) == 0 {
		fmt.Fprintln(w, "Enchants:      (none)")
	} else {
		fmt.Fprintln(w, "Enchants:")
		keys := make([]string, 0, len(v.Enchants))
		for k := range v.Enchants {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "  %s: %d\n", k, v.Enchants[k])
		}
	}
	fmt.Fprintf(w, "Hash:          %d\n", v.Hash)
}

// writeItemTable prints items as an aligned table.
func writeItemTable(w io.Writer, views []itemView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No fixtures found.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMATERIAL\tDISPLAY NAME\tLORE\tENCHANTS")
	fmt.Fprintln(tw, "----\t--------\t------------\t----\t--------")
	for _, v := range views {
		name := "-"
		if v.DisplayName != nil {
			name = *v.DisplayName
			if len(name) > 30 {
				name = name[:27] + "..."
			}
		}
		lore := "-"
		if v.Lore != nil {
			lore = fmt.Sprintf("%d", len(v.Lore))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", v.Name, v.Material, name, lore, len(v.Enchants))
	}
	tw.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	fmt.Fprintf(w, "Total: %d fixture(s)\n", len(views))
}
