package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"itemserver/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const itemsCollection = "items"

const (
	connectFailedMsg  = "Error: Connection to database failed"
	insertFailedMsg   = "Error: Insert one item failed"
	insertedIDTypeMsg = "Error: Inserted id is not ObjectId"
	findFailedMsg     = "Error: Find one item failed"
)

// ItemRepository reads and writes the items collection.
// It keeps no state between calls, a handle is fetched from connect for every operation.
type ItemRepository struct {
	connect ConnectFunc
	logger  *log.Logger
}

// NewItemRepository falls back to DBConnect and the standard logger when given nil.
func NewItemRepository(connect ConnectFunc, logger *log.Logger) *ItemRepository {
	if connect == nil {
		connect = DBConnect
	}
	if logger == nil {
		logger = log.Default()
	}
	return &ItemRepository{
		connect: connect,
		logger:  logger,
	}
}

func (r *ItemRepository) collection(ctx context.Context, op string) (*mongo.Collection, error) {
	db, err := r.connect(ctx)
	if err != nil {
		r.logger.Printf("Error: %v", err)
		return nil, &ItemError{Op: op, Kind: ErrStoreUnavailable, Msg: connectFailedMsg, Err: err}
	}
	return db.Collection(itemsCollection), nil
}

// InsertOneItem stores req as a new item and returns the id the store assigned to it.
func (r *ItemRepository) InsertOneItem(ctx context.Context, req models.InsertItemRequest) (primitive.ObjectID, error) {
	items, err := r.collection(ctx, "insert")
	if err != nil {
		return primitive.NilObjectID, err
	}

	result, err := items.InsertOne(ctx, bson.D{
		{Key: "name", Value: req.Name},
		{Key: "description", Value: req.Description},
		{Key: "damage", Value: req.Damage},
		{Key: "level_required", Value: req.LevelRequired},
		{Key: "price", Value: req.Price},
	})
	if err != nil {
		r.logger.Printf("Error: %v", err)
		return primitive.NilObjectID, &ItemError{Op: "insert", Kind: ErrWriteFailed, Msg: insertFailedMsg, Err: err}
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, &ItemError{
			Op:   "insert",
			Kind: ErrDecode,
			Msg:  insertedIDTypeMsg,
			Err:  fmt.Errorf("inserted id has type %T", result.InsertedID),
		}
	}

	r.logger.Printf("Inserted id: %s", id.Hex())

	return id, nil
}

// FindOneItem looks up the item stored under id.
// A missing document, a failed query and an undecodable document all come back as an *ItemError.
func (r *ItemRepository) FindOneItem(ctx context.Context, id primitive.ObjectID) (models.Item, error) {
	items, err := r.collection(ctx, "find")
	if err != nil {
		return models.Item{}, err
	}

	var raw bson.Raw
	if err := items.FindOne(ctx, bson.M{"_id": id}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Item{}, &ItemError{Op: "find", Kind: ErrNotFound, Msg: findFailedMsg, Err: err}
		}
		r.logger.Printf("Error: %v", err)
		return models.Item{}, &ItemError{Op: "find", Kind: ErrStoreFailed, Msg: findFailedMsg, Err: err}
	}

	item, err := decodeItem(raw)
	if err != nil {
		r.logger.Printf("Error: %v", err)
		return models.Item{}, &ItemError{Op: "find", Kind: ErrDecode, Msg: findFailedMsg, Err: err}
	}

	return item, nil
}
