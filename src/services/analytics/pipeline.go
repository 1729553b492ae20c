package analytics

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func sinceStage(since time.Time) bson.D {
	return bson.D{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}}
}

func UniqueVisitorsPipeline(since time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		sinceStage(since),
		{{Key: "$group", Value: bson.M{"_id": "$fingerprint"}}},
		{{Key: "$count", Value: "count"}},
	}
}

func TopPathsPipeline(since time.Time, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		sinceStage(since),
		{{Key: "$group", Value: bson.M{"_id": "$path", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}
}

func InteractionTypesPipeline(since time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		sinceStage(since),
		{{Key: "$group", Value: bson.M{"_id": "$type", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
}
