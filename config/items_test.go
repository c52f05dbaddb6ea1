package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	require.NotNil(t, Items)

	dagger, ok := Items.Lookup("Rusty Dagger")
	require.True(t, ok)
	assert.Equal(t, ItemWeapon, dagger.Kind)
	assert.True(t, dagger.HasDurability())
	assert.True(t, dagger.DealsDamageOnUse())
	assert.False(t, dagger.RestoresHealth())

	heart, ok := Items.Lookup("Heart")
	require.True(t, ok)
	assert.True(t, heart.RestoresHealth())
	assert.False(t, heart.HasDurability())

	helm, ok := Items.Lookup("Iron Helm")
	require.True(t, ok)
	assert.True(t, helm.IsEquipment())
}

func TestParseItemCatalogRejectsUnknownLevelItem(t *testing.T) {
	_, err := ParseItemCatalog([]byte(`
items:
  - name: Stick
    kind: weapon
    weapon: {type: light_melee, damage: 1}
levels:
  - level: 1
    items: [Stick, Sword]
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestParseItemCatalogRejectsDuplicates(t *testing.T) {
	_, err := ParseItemCatalog([]byte(`
items:
  - {name: Heart, kind: consumable}
  - {name: Heart, kind: consumable}
`))
	assert.ErrorIs(t, err, ErrDuplicateItem)
}

func TestParseItemCatalogRejectsUnknownKind(t *testing.T) {
	_, err := ParseItemCatalog([]byte(`
items:
  - {name: Rock, kind: pebble}
`))
	assert.Error(t, err)
}

func TestWeaponCooldownFrames(t *testing.T) {
	w := &WeaponDef{Cooldown: 0.5, SecondaryCooldown: 1, Damage: 2, SecondaryDamage: 5}
	assert.Equal(t, Sim.TPS/2, w.CooldownFrames(false))
	assert.Equal(t, Sim.TPS, w.CooldownFrames(true))
	assert.Equal(t, 2, w.AttackDamage(false))
	assert.Equal(t, 5, w.AttackDamage(true))

	noSecondary := &WeaponDef{Damage: 3}
	assert.Equal(t, 3, noSecondary.AttackDamage(true))
}

func TestWatchItemsReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - {name: Heart, kind: consumable}\n"), 0o644))

	w, err := WatchItems(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("items:\n  - {name: Helm, kind: equipment}\n"), 0o644))

	select {
	case catalog := <-w.Catalogs:
		require.NotNil(t, catalog)
		_, ok := catalog.Lookup("Helm")
		assert.True(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("no catalog reload observed")
	}
}
