package content

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	if len(c.Places) != 5 || len(c.Items) != 5 {
		t.Fatalf("got %d places and %d items, expected 5 each", len(c.Places), len(c.Items))
	}

	p, ok := c.Place("eat_shawarma")
	if !ok {
		t.Fatal("eat_shawarma missing")
	}
	if p.Reward != "heart_big" {
		t.Errorf("eat_shawarma reward = %q, expected heart_big", p.Reward)
	}

	it, ok := c.Item(p.Reward)
	if !ok || it.Label != "Big Heart" {
		t.Errorf("Item(%q) = %+v, %v", p.Reward, it, ok)
	}

	if _, ok := c.Place("nowhere"); ok {
		t.Error("unknown place should not be found")
	}
}

func TestNPCLineWraps(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	n := len(c.NPC.Lines)
	if c.NPCLine(n+1) != c.NPCLine(1) {
		t.Error("NPCLine should wrap around the line list")
	}
	if c.NPCLine(-1) != c.NPCLine(1) {
		t.Error("NPCLine should accept negative picks")
	}
}

func TestParseRejectsInconsistentContent(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{
			name: "unknown reward",
			yaml: `
items: [{id: a, label: A}]
places: [{id: p, title: P, reward: b}]
npc: {lines: [hi]}`,
			code: "UNKNOWN_REWARD",
		},
		{
			name: "duplicate item",
			yaml: `
items: [{id: a}, {id: a}]
npc: {lines: [hi]}`,
			code: "DUPLICATE_ITEM",
		},
		{
			name: "duplicate place",
			yaml: `
items: [{id: a}]
places: [{id: p, reward: a}, {id: p, reward: a}]
npc: {lines: [hi]}`,
			code: "DUPLICATE_PLACE",
		},
		{
			name: "silent npc",
			yaml: `
items: [{id: a}]
places: [{id: p, reward: a}]`,
			code: "NO_NPC_LINES",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, expected *ValidationError", err)
			}
			if ve.Code != tc.code {
				t.Errorf("Code = %q, expected %q", ve.Code, tc.code)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("items: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
