package tracking

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// sync inserted id (เผื่อไดรเวอร์คืนค่า id ใหม่)
func insertedID(res *mongo.InsertOneResult, fallback primitive.ObjectID) primitive.ObjectID {
	if res == nil {
		return fallback
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid
	}
	return fallback
}
