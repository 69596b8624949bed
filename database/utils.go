package database

import (
	"errors"
	"fmt"

	"itemserver/models"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Convenience functions for moving items between their stored and caller-facing shapes

const invalidIDMsg = "Error: Invalid item id"

var objectIDToHex = copier.TypeConverter{
	SrcType: primitive.ObjectID{},
	DstType: copier.String,
	Fn: func(src interface{}) (interface{}, error) {
		id, ok := src.(primitive.ObjectID)
		if !ok {
			return nil, errors.New("source is not an ObjectID")
		}
		return id.Hex(), nil
	},
}

// parses the hex form of an item id, as found in Item.ID
func ParseItemID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, &ItemError{Op: "parse", Kind: ErrInvalidID, Msg: invalidIDMsg, Err: err}
	}
	return id, nil
}

// decodes a stored item document, every field in models.ItemBsonKeys has to be present and not null
func decodeItem(raw bson.Raw) (models.Item, error) {
	for _, key := range models.ItemBsonKeys {
		value, err := raw.LookupErr(key)
		if err != nil {
			return models.Item{}, fmt.Errorf("missing field %q in item document", key)
		}
		if value.Type == bson.TypeNull || value.Type == bson.TypeUndefined {
			return models.Item{}, fmt.Errorf("missing field %q in item document: value is %s", key, value.Type)
		}
	}

	var stored models.ItemBson
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return models.Item{}, err
	}

	return toItem(stored)
}

// copies the stored item into the caller-facing shape, the ObjectID becomes its hex string
func toItem(stored models.ItemBson) (models.Item, error) {
	var item models.Item
	if err := copier.CopyWithOption(&item, &stored, copier.Option{Converters: []copier.TypeConverter{objectIDToHex}}); err != nil {
		return models.Item{}, err
	}
	return item, nil
}
