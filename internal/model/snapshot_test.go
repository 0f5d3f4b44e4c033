package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindgren/locman/internal/culture"
)

func snapshotFixture() []*Entity {
	appKey := EntityKey{Project: "App", BaseName: "Strings", Directory: "res"}
	app := NewEntity(appKey, []*Language{
		{Culture: culture.Neutral, Table: tableOf("Greeting", "Hello", "Farewell", "Goodbye")},
		{Culture: "de", Table: tableOf("Greeting", "Hallo")},
	})

	libKey := EntityKey{Project: "Lib", BaseName: "Errors", Directory: "lib"}
	lib := NewEntity(libKey, []*Language{
		{Culture: culture.Neutral, Table: tableOf("NotFound", "not found")},
	})

	return []*Entity{app, lib}
}

func TestSnapshotRoundTrip(t *testing.T) {
	entities := snapshotFixture()

	blob, err := TakeSnapshot(entities).Encode()
	require.NoError(t, err)

	snap, err := DecodeSnapshot(blob)
	require.NoError(t, err)

	// Applying a fresh capture back onto the same set changes nothing.
	snap.Apply(entities)
	for _, e := range entities {
		assert.False(t, e.HasChanges(), "entity %s", FormatEntityRef(e.Key))
	}

	v, _ := entities[0].Entry("Greeting").Value("de")
	assert.Equal(t, "Hallo", v)
}

func TestSnapshotRestoresEditedValues(t *testing.T) {
	entities := snapshotFixture()
	snap := TakeSnapshot(entities)

	de := entities[0].Language("de")
	de.Table.Set("Greeting", "Servus")

	snap.Apply(entities)

	v, _ := de.Table.Get("Greeting")
	assert.Equal(t, "Hallo", v)
	assert.True(t, de.Dirty, "restored value differs from disk, language must be dirty")
}

func TestSnapshotApplySkipsMismatches(t *testing.T) {
	entities := snapshotFixture()
	blob, err := TakeSnapshot(entities).Encode()
	require.NoError(t, err)

	// Rebuild a shrunken set: one entity gone, one key gone, one language gone.
	appKey := EntityKey{Project: "App", BaseName: "Strings", Directory: "res"}
	rebuilt := []*Entity{NewEntity(appKey, []*Language{
		{Culture: culture.Neutral, Table: tableOf("Greeting", "stale")},
	})}

	snap, err := DecodeSnapshot(blob)
	require.NoError(t, err)
	snap.Apply(rebuilt)

	// The surviving key was restored.
	v, _ := rebuilt[0].Entry("Greeting").Value(culture.Neutral)
	assert.Equal(t, "Hello", v)

	// The vanished key and language were ignored without error.
	assert.Nil(t, rebuilt[0].Entry("Farewell"))
	assert.Nil(t, rebuilt[0].Language("de"))
}

func TestSnapshotApplyIsValueExact(t *testing.T) {
	entities := snapshotFixture()

	multiline := "line one\nline two\n"
	entities[0].Language(culture.Neutral).Table.Set("Greeting", multiline)

	blob, err := TakeSnapshot(entities).Encode()
	require.NoError(t, err)

	entities[0].Language(culture.Neutral).Table.Set("Greeting", "overwritten")

	snap, err := DecodeSnapshot(blob)
	require.NoError(t, err)
	snap.Apply(entities)

	v, _ := entities[0].Entry("Greeting").Value(culture.Neutral)
	assert.Equal(t, multiline, v)
}

func TestDecodeSnapshotMalformed(t *testing.T) {
	_, err := DecodeSnapshot("entities: [unclosed")
	assert.Error(t, err)
}

func TestSnapshotCapturesMissingValuesAsAbsent(t *testing.T) {
	entities := snapshotFixture()
	snap := TakeSnapshot(entities)

	// "Farewell" has no de value; the capture must not invent one.
	var appEntity *SnapshotEntity
	for i := range snap.Entities {
		if snap.Entities[i].BaseName == "Strings" {
			appEntity = &snap.Entities[i]
		}
	}
	require.NotNil(t, appEntity)

	for _, entry := range appEntity.Entries {
		if entry.Key != "Farewell" {
			continue
		}
		for _, v := range entry.Values {
			assert.NotEqual(t, "de", v.Culture)
		}
	}
}
