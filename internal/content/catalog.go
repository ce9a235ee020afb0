// Package content holds the narrative catalog: the places the journey
// visits, the keepsakes they grant, Mom's phone lines and the ending.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/journey.yaml
var journeyYAML []byte

// ItemID identifies an inventory keepsake.
type ItemID string

// PlaceID identifies a story place. Trigger zones carry the same ids.
type PlaceID string

// Item is a keepsake granted when a place is discovered.
type Item struct {
	ID    ItemID `yaml:"id"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

// Place is the story shown when its trigger zone fires.
type Place struct {
	ID       PlaceID `yaml:"id"`
	Title    string  `yaml:"title"`
	Date     string  `yaml:"date"`
	Location string  `yaml:"location"`
	Body     string  `yaml:"body"`
	Reward   ItemID  `yaml:"reward"`
	Sfx      string  `yaml:"sfx"`
}

// NPC is the caller behind the phone dialog.
type NPC struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Lines []string `yaml:"lines"`
	Sfx   string   `yaml:"sfx"`
}

// Ending is the text shown after the final place.
type Ending struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Catalog is the validated, indexed content set.
type Catalog struct {
	Items  []Item  `yaml:"items"`
	Places []Place `yaml:"places"`
	NPC    NPC     `yaml:"npc"`
	Ending Ending  `yaml:"ending"`

	items  map[ItemID]int
	places map[PlaceID]int
}

// ValidationError describes inconsistent content.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Default returns the embedded journey catalog.
func Default() (*Catalog, error) {
	return Parse(journeyYAML)
}

// Parse decodes and validates a catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("content: yaml unmarshal: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) index() error {
	c.items = make(map[ItemID]int, len(c.Items))
	for i, it := range c.Items {
		if it.ID == "" {
			return &ValidationError{Code: "EMPTY_ID", Message: fmt.Sprintf("item #%d has no id", i)}
		}
		if _, dup := c.items[it.ID]; dup {
			return &ValidationError{Code: "DUPLICATE_ITEM", Message: fmt.Sprintf("item %q defined twice", it.ID)}
		}
		c.items[it.ID] = i
	}

	c.places = make(map[PlaceID]int, len(c.Places))
	for i, p := range c.Places {
		if p.ID == "" {
			return &ValidationError{Code: "EMPTY_ID", Message: fmt.Sprintf("place #%d has no id", i)}
		}
		if _, dup := c.places[p.ID]; dup {
			return &ValidationError{Code: "DUPLICATE_PLACE", Message: fmt.Sprintf("place %q defined twice", p.ID)}
		}
		if _, ok := c.items[p.Reward]; !ok {
			return &ValidationError{
				Code:    "UNKNOWN_REWARD",
				Message: fmt.Sprintf("place %q rewards unknown item %q", p.ID, p.Reward),
			}
		}
		c.places[p.ID] = i
	}

	if len(c.NPC.Lines) == 0 {
		return &ValidationError{Code: "NO_NPC_LINES", Message: fmt.Sprintf("npc %q has no lines", c.NPC.ID)}
	}
	return nil
}

// Item looks up an item by id.
func (c *Catalog) Item(id ItemID) (Item, bool) {
	i, ok := c.items[id]
	if !ok {
		return Item{}, false
	}
	return c.Items[i], true
}

// Place looks up a place by id.
func (c *Catalog) Place(id PlaceID) (Place, bool) {
	i, ok := c.places[id]
	if !ok {
		return Place{}, false
	}
	return c.Places[i], true
}

// NPCLine returns the line picked by n, wrapping around.
func (c *Catalog) NPCLine(n int) string {
	lines := c.NPC.Lines
	if n < 0 {
		n = -n
	}
	return lines[n%len(lines)]
}
