package helpers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Ctx = context.TODO()

var Timeout = 10 * time.Second

func MongoHelper(URI string, databaseName string) *mongo.Database {
	clientOptions := options.Client().ApplyURI(URI)
	client, err := mongo.Connect(Ctx, clientOptions)
	if err != nil {
		log.Fatal(TranslateConnectionError(err))
	}

	ctx, cancel := context.WithTimeout(Ctx, Timeout)
	defer cancel()

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(TranslateConnectionError(err))
	}

	log.Println("MongoDB connection established with database", databaseName)

	return client.Database(databaseName)
}

// TranslateConnectionError turns raw driver failures into actionable
// messages instead of leaking driver internals: SRV/DNS resolution, bad
// credentials and plain unreachability each read differently.
func TranslateConnectionError(err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "SRV") || strings.Contains(msg, "no such host") || strings.Contains(msg, "lookup"):
		return fmt.Errorf("could not resolve the MongoDB host; check the cluster address in MONGODB_URI: %w", err)
	case strings.Contains(msg, "auth error") || strings.Contains(msg, "AuthenticationFailed") || strings.Contains(msg, "SCRAM"):
		return fmt.Errorf("MongoDB rejected the credentials; check the username and password in MONGODB_URI: %w", err)
	default:
		return fmt.Errorf("could not reach MongoDB; check that the server is running and accessible: %w", err)
	}
}
