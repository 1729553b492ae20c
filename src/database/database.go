package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ชื่อ collection ทั้งหมดที่ใช้ใน portfolio
const (
	CongratulationsCollection = "congratulations"
	FormsCollection           = "forms"
	SubmissionsCollection     = "submissions"
	PageViewsCollection       = "pageViews"
	InteractionsCollection    = "interactions"
	VisitorProfilesCollection = "visitorProfiles"
	AnalyticsEventsCollection = "analyticsEvents"
)

var ErrMongoURIMissing = errors.New("MONGO_URI environment variable not set")

// ConnectMongoDB เชื่อมต่อกับ MongoDB แล้ว ping เช็คว่าใช้งานได้จริง
func ConnectMongoDB(ctx context.Context, uri, dbName string, log *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	if uri == "" {
		return nil, nil, ErrMongoURIMissing
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}

	// ตรวจสอบการเชื่อมต่อ
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Info("mongodb connected", zap.String("db", dbName))
	return client, client.Database(dbName), nil
}

// EnsureIndexes สร้าง index ที่ service ต้องพึ่ง (unique shareId / slug ฯลฯ)
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		CongratulationsCollection: {
			{Keys: bson.D{{Key: "shareId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		FormsCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		SubmissionsCollection: {
			{Keys: bson.D{{Key: "formId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		PageViewsCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "path", Value: 1}}},
		},
		InteractionsCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		AnalyticsEventsCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
