package catalog

// builtinItems is the fallback catalog used when no item dump can be
// read. A handful of representative items per kind, enough to drive the
// whole selection/export flow.
func builtinItems() []Item {
	return []Item{
		{Id: "390", Name: "Stone", Type: KindObject, QualifiedItemId: "(O)390", NameOrIndex: "390", Category: "Resources", MaxStack: 999, Description: "A common material with many uses in crafting and building."},
		{Id: "388", Name: "Wood", Type: KindObject, QualifiedItemId: "(O)388", NameOrIndex: "388", Category: "Resources", MaxStack: 999, Description: "A sturdy, yet flexible plant material with a wide variety of uses."},
		{Id: "74", Name: "Prismatic Shard", Type: KindObject, QualifiedItemId: "(O)74", NameOrIndex: "74", Category: "Minerals", MaxStack: 999, Description: "A very rare and powerful substance with unknown origins."},
		{Id: "336", Name: "Gold Bar", Type: KindObject, QualifiedItemId: "(O)336", NameOrIndex: "336", Category: "Metals", MaxStack: 999, Description: "A bar of pure gold."},
		{Id: "337", Name: "Iridium Bar", Type: KindObject, QualifiedItemId: "(O)337", NameOrIndex: "337", Category: "Metals", MaxStack: 999, Description: "A bar of pure iridium."},
		{Id: "24", Name: "Parsnip", Type: KindObject, QualifiedItemId: "(O)24", NameOrIndex: "24", Category: "Crops", MaxStack: 999, Description: "A spring tuber closely related to the carrot."},
		{Id: "13", Name: "Furnace", Type: KindBigCraftable, QualifiedItemId: "(BC)13", NameOrIndex: "13", Category: "Crafting", MaxStack: 1, Description: "Turns ore and coal into metal bars."},
		{Id: "8", Name: "Scarecrow", Type: KindBigCraftable, QualifiedItemId: "(BC)8", NameOrIndex: "8", Category: "Crafting", MaxStack: 1, Description: "Prevents crows from attacking your crops."},
		{Id: "IridiumAxe", Name: "Iridium Axe", Type: KindTool, QualifiedItemId: "(T)IridiumAxe", NameOrIndex: "Iridium Axe", Category: "Tools", MaxStack: 1, Description: "The most powerful axe."},
		{Id: "4", Name: "Galaxy Sword", Type: KindWeapon, QualifiedItemId: "(W)4", NameOrIndex: "Galaxy Sword", Category: "Weapons", MaxStack: 1, Description: "It's unlike anything you've ever seen."},
		{Id: "12", Name: "Wooden Blade", Type: KindWeapon, QualifiedItemId: "(W)12", NameOrIndex: "Wooden Blade", Category: "Weapons", MaxStack: 1, Description: "Not bad for a piece of carved wood."},
		{Id: "514", Name: "Space Boots", Type: KindBoots, QualifiedItemId: "(B)514", NameOrIndex: "Space Boots", Category: "Footwear", MaxStack: 1, Description: "As flexible as it is protective."},
		{Id: "3", Name: "Sombrero", Type: KindHat, QualifiedItemId: "(H)3", NameOrIndex: "Sombrero", Category: "Hats", MaxStack: 1, Description: "A festive hat."},
		{Id: "ParrotEgg", Name: "Parrot Egg", Type: KindTrinket, QualifiedItemId: "(TR)ParrotEgg", NameOrIndex: "Parrot Egg", Category: "Trinkets", MaxStack: 1, Description: "An exotic egg. Something is moving inside..."},
	}
}
