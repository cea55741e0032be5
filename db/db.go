package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	UserCollection         *mongo.Collection
	DestinationsCollection *mongo.Collection
	HotelsCollection       *mongo.Collection
	PackagesCollection     *mongo.Collection
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "traveldb"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database(dbName).Collection("users")
	DestinationsCollection = Client.Database(dbName).Collection("destinations")
	HotelsCollection = Client.Database(dbName).Collection("hotels")
	PackagesCollection = Client.Database(dbName).Collection("packages")
}
