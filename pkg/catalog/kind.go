package catalog

import "encoding/json"

// Kind is the closed set of item kinds the external mod understands.
type Kind int

const (
	KindObject Kind = iota
	KindBigCraftable
	KindTool
	KindWeapon
	KindBoots
	KindHat
	KindTrinket
)

// kindNames is the wire form used by the item dump and both export layouts.
var kindNames = map[Kind]string{
	KindObject:       "Object",
	KindBigCraftable: "BigCraftable",
	KindTool:         "Tool",
	KindWeapon:       "Weapon",
	KindBoots:        "Boots",
	KindHat:          "Hat",
	KindTrinket:      "Trinket",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Object"
}

var kindByName = map[string]Kind{
	"Object":       KindObject,
	"BigCraftable": KindBigCraftable,
	"Tool":         KindTool,
	"Weapon":       KindWeapon,
	"Boots":        KindBoots,
	"Hat":          KindHat,
	"Trinket":      KindTrinket,
}

// ParseKind maps a wire string back to a Kind. The second return is false
// for unrecognized strings, which callers treat as Object.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindByName[s]
	return k, ok
}

// ContentPatcherType translates a Kind to the type tag the Content Patcher
// entry schema expects. Trinkets have no dedicated type downstream and ride
// along as plain objects.
func ContentPatcherType(k Kind) string {
	switch k {
	case KindObject:
		return "Object"
	case KindBigCraftable:
		return "BigCraftable"
	case KindTool:
		return "Tool"
	case KindWeapon:
		return "MeleeWeapon"
	case KindBoots:
		return "Boots"
	case KindHat:
		return "Hat"
	case KindTrinket:
		return "Object"
	}
	return "Object"
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, _ := ParseKind(s)
	*k = parsed
	return nil
}
