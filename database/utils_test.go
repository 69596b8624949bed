package database

import (
	"errors"
	"testing"

	"itemserver/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseItemID(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, err := ParseItemID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	for _, bad := range []string{"", "sword", "zzzzzzzzzzzzzzzzzzzzzzzz", id.Hex()[:10]} {
		_, err := ParseItemID(bad)
		if assert.Error(t, err, "expected %q to be rejected", bad) {
			assert.True(t, errors.Is(err, ErrInvalidID))
			assert.Equal(t, "Error: Invalid item id", err.Error())
		}
	}
}

func TestToItem(t *testing.T) {
	id := primitive.NewObjectID()
	stored := models.ItemBson{
		ID:            id,
		Name:          "Axe",
		Description:   "Heavy",
		Damage:        25,
		LevelRequired: 7,
		Price:         450,
	}

	item, err := toItem(stored)
	require.NoError(t, err)
	assert.Equal(t, models.Item{
		ID:            id.Hex(),
		Name:          "Axe",
		Description:   "Heavy",
		Damage:        25,
		LevelRequired: 7,
		Price:         450,
	}, item)
}

func TestDecodeItemRequiresEveryField(t *testing.T) {
	id := primitive.NewObjectID()

	for _, missing := range models.ItemBsonKeys {
		doc := bson.M{
			"_id":            id,
			"name":           "Bow",
			"description":    "Long",
			"damage":         int32(8),
			"level_required": int32(3),
			"price":          int32(60),
		}
		delete(doc, missing)

		raw, err := bson.Marshal(doc)
		require.NoError(t, err)

		_, err = decodeItem(raw)
		assert.Error(t, err, "expected a document without %q to fail", missing)
	}
}

func TestDecodeItemRejectsNullFields(t *testing.T) {
	id := primitive.NewObjectID()

	for _, nulled := range models.ItemBsonKeys {
		doc := bson.M{
			"_id":            id,
			"name":           "Bow",
			"description":    "Long",
			"damage":         int32(8),
			"level_required": int32(3),
			"price":          int32(60),
		}
		doc[nulled] = nil

		raw, err := bson.Marshal(doc)
		require.NoError(t, err)

		item, err := decodeItem(raw)
		if assert.Error(t, err, "expected a document with a null %q to fail", nulled) {
			assert.Contains(t, err.Error(), nulled)
		}
		assert.Equal(t, models.Item{}, item)
	}

	raw, err := bson.Marshal(bson.M{
		"_id":            id,
		"name":           nil,
		"description":    nil,
		"damage":         nil,
		"level_required": nil,
		"price":          nil,
	})
	require.NoError(t, err)

	item, err := decodeItem(raw)
	assert.Error(t, err)
	assert.Equal(t, models.Item{}, item)
}
