package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/items.yaml
var defaultItemsYAML []byte

var (
	ErrUnknownItem   = errors.New("unknown item")
	ErrDuplicateItem = errors.New("duplicate item")
)

// ItemKind is the variant tag of an item definition.
type ItemKind int

const (
	ItemWeapon ItemKind = iota
	ItemConsumable
	ItemEquipment
)

var itemKindNames = map[string]ItemKind{
	"weapon":     ItemWeapon,
	"consumable": ItemConsumable,
	"equipment":  ItemEquipment,
}

func (k ItemKind) String() string {
	for name, kind := range itemKindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

func (k *ItemKind) UnmarshalYAML(value *yaml.Node) error {
	kind, ok := itemKindNames[value.Value]
	if !ok {
		return fmt.Errorf("line %d: unknown item kind %q", value.Line, value.Value)
	}
	*k = kind
	return nil
}

// WeaponType decides the hurtbox a weapon attack spawns.
type WeaponType int

const (
	LightMelee WeaponType = iota
	HeavyMelee
	Ranged
)

var weaponTypeNames = map[string]WeaponType{
	"light_melee": LightMelee,
	"heavy_melee": HeavyMelee,
	"ranged":      Ranged,
}

func (t *WeaponType) UnmarshalYAML(value *yaml.Node) error {
	wt, ok := weaponTypeNames[value.Value]
	if !ok {
		return fmt.Errorf("line %d: unknown weapon type %q", value.Line, value.Value)
	}
	*t = wt
	return nil
}

// WeaponDef holds a weapon's combat stats. Cooldowns are in seconds.
type WeaponDef struct {
	Type              WeaponType `yaml:"type"`
	Damage            int        `yaml:"damage"`
	SecondaryDamage   int        `yaml:"secondary_damage"`
	SwingSpeed        float64    `yaml:"swing_speed"`
	Cooldown          float64    `yaml:"cooldown"`
	SecondaryCooldown float64    `yaml:"secondary_cooldown"`
	ProjectileSpeed   float64    `yaml:"projectile_speed"`
	MaxDurability     int        `yaml:"max_durability"`
}

// CooldownFrames returns the attack cooldown in ticks.
func (w *WeaponDef) CooldownFrames(secondary bool) int {
	if secondary {
		return Frames(w.SecondaryCooldown)
	}
	return Frames(w.Cooldown)
}

// AttackDamage returns the damage of the primary or secondary attack.
func (w *WeaponDef) AttackDamage(secondary bool) int {
	if secondary && w.SecondaryDamage > 0 {
		return w.SecondaryDamage
	}
	return w.Damage
}

type ConsumableDef struct {
	HealthGain int `yaml:"health_gain"`
}

// ItemDef is one entry of the item catalog.
type ItemDef struct {
	Name       string         `yaml:"name"`
	Kind       ItemKind       `yaml:"kind"`
	Weapon     *WeaponDef     `yaml:"weapon,omitempty"`
	Consumable *ConsumableDef `yaml:"consumable,omitempty"`
}

func (d *ItemDef) HasDurability() bool {
	return d.Kind == ItemWeapon && d.Weapon != nil && d.Weapon.MaxDurability > 0
}

func (d *ItemDef) DealsDamageOnUse() bool {
	return d.Kind == ItemWeapon
}

func (d *ItemDef) RestoresHealth() bool {
	return d.Kind == ItemConsumable && d.Consumable != nil && d.Consumable.HealthGain > 0
}

func (d *ItemDef) IsEquipment() bool {
	return d.Kind == ItemEquipment
}

// LevelLoot lists the item names a level's loot table draws from.
type LevelLoot struct {
	Level int      `yaml:"level"`
	Items []string `yaml:"items"`
}

// ItemCatalog is the parsed item definitions file.
type ItemCatalog struct {
	Items  []*ItemDef  `yaml:"items"`
	Levels []LevelLoot `yaml:"levels"`

	byName map[string]*ItemDef
}

// Items is the active catalog. It is replaced on the game loop when the
// definitions file is reloaded.
var Items *ItemCatalog

func init() {
	catalog, err := ParseItemCatalog(defaultItemsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded item catalog: %v", err))
	}
	Items = catalog
}

// ParseItemCatalog decodes and validates a YAML item catalog.
func ParseItemCatalog(data []byte) (*ItemCatalog, error) {
	var catalog ItemCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse item catalog: %w", err)
	}

	catalog.byName = make(map[string]*ItemDef, len(catalog.Items))
	for _, def := range catalog.Items {
		if def.Name == "" {
			return nil, fmt.Errorf("item catalog: item without name")
		}
		if _, dup := catalog.byName[def.Name]; dup {
			return nil, fmt.Errorf("item catalog: %w: %s", ErrDuplicateItem, def.Name)
		}
		catalog.byName[def.Name] = def
	}

	for _, lvl := range catalog.Levels {
		for _, name := range lvl.Items {
			if _, ok := catalog.byName[name]; !ok {
				return nil, fmt.Errorf("item catalog level %d: %w: %s", lvl.Level, ErrUnknownItem, name)
			}
		}
	}
	return &catalog, nil
}

// LoadItemCatalog reads a catalog from disk.
func LoadItemCatalog(path string) (*ItemCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item catalog %s: %w", path, err)
	}
	catalog, err := ParseItemCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// Lookup returns the definition with the given name.
func (c *ItemCatalog) Lookup(name string) (*ItemDef, bool) {
	def, ok := c.byName[name]
	return def, ok
}
