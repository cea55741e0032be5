package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"voyago/models"
	"voyago/rdx"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserStore implements UserStore over a users collection. Each user
// document embeds all three booking sequences, so Save is a whole-document
// replace: the store's single-document write atomicity is what keeps one
// user's batch of sweep updates consistent.
type MongoUserStore struct {
	Coll *mongo.Collection
}

func NewMongoUserStore(coll *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{Coll: coll}
}

func (s *MongoUserStore) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.Coll.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.Coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.Coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	_, err := s.Coll.InsertOne(ctx, user)
	return err
}

func (s *MongoUserStore) Save(ctx context.Context, user *models.User) error {
	res, err := s.Coll.ReplaceOne(ctx, bson.M{"userid": user.UserID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

const destinationCacheTTL = 5 * time.Minute

// MongoCatalog implements CatalogStore over the catalog collections, with
// a Redis read-through cache on the destination list.
type MongoCatalog struct {
	DestColl  *mongo.Collection
	HotelColl *mongo.Collection
	PkgColl   *mongo.Collection
}

func NewMongoCatalog(dest, hotel, pkg *mongo.Collection) *MongoCatalog {
	return &MongoCatalog{DestColl: dest, HotelColl: hotel, PkgColl: pkg}
}

func (c *MongoCatalog) Destinations(ctx context.Context) ([]models.Destination, error) {
	if cached, err := rdx.RdxGet("catalog:destinations"); err == nil && cached != "" {
		var destinations []models.Destination
		if err := json.Unmarshal([]byte(cached), &destinations); err == nil {
			return destinations, nil
		}
	}

	cursor, err := c.DestColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var destinations []models.Destination
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(destinations); err == nil {
		if err := rdx.RdxSetWithTTL("catalog:destinations", string(data), destinationCacheTTL); err != nil {
			log.Printf("Failed to cache destinations: %v", err)
		}
	}
	return destinations, nil
}

func (c *MongoCatalog) DestinationByReference(ctx context.Context, ref string) (*models.Destination, error) {
	var dest models.Destination
	err := c.DestColl.FindOne(ctx, bson.M{"reference": ref}).Decode(&dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

func (c *MongoCatalog) DestinationsByReferences(ctx context.Context, refs []string) ([]models.Destination, error) {
	if len(refs) == 0 {
		return []models.Destination{}, nil
	}

	cursor, err := c.DestColl.Find(ctx, bson.M{"reference": bson.M{"$in": refs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var destinations []models.Destination
	if err := cursor.All(ctx, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (c *MongoCatalog) Hotels(ctx context.Context) ([]models.Hotel, error) {
	cursor, err := c.HotelColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err := cursor.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (c *MongoCatalog) HotelByReference(ctx context.Context, ref string) (*models.Hotel, error) {
	var hotel models.Hotel
	err := c.HotelColl.FindOne(ctx, bson.M{"reference": ref}).Decode(&hotel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (c *MongoCatalog) Packages(ctx context.Context) ([]models.TravelPackage, error) {
	cursor, err := c.PkgColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packages []models.TravelPackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *MongoCatalog) PackageByReference(ctx context.Context, ref string) (*models.TravelPackage, error) {
	var pkg models.TravelPackage
	err := c.PkgColl.FindOne(ctx, bson.M{"reference": ref}).Decode(&pkg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}
