package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item is what callers see. ID is the hex form of the ObjectID the store assigned on insert.
type Item struct {
	ID            string `json:"_id" bson:"_id"`
	Name          string `json:"name" bson:"name"`
	Description   string `json:"description" bson:"description"`
	Damage        int32  `json:"damage" bson:"damage"`
	LevelRequired int32  `json:"level_required" bson:"level_required"`
	Price         int32  `json:"price" bson:"price"`
}

type InsertItemRequest struct {
	Name          string `json:"name" bson:"name"`
	Description   string `json:"description" bson:"description"`
	Damage        int32  `json:"damage" bson:"damage"`
	LevelRequired int32  `json:"level_required" bson:"level_required"`
	Price         int32  `json:"price" bson:"price"`
}

// ItemBson is the stored shape of an item, only used while reading from the items collection
type ItemBson struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	Damage        int32              `json:"damage" bson:"damage"`
	LevelRequired int32              `json:"level_required" bson:"level_required"`
	Price         int32              `json:"price" bson:"price"`
}

// ItemBsonKeys lists the fields a stored item document must carry to be decoded
var ItemBsonKeys = []string{"_id", "name", "description", "damage", "level_required", "price"}
