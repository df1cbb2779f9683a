package internal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"
)

const (
	deliveriesCollection = "deliveries"
	ridersCollection     = "riders"
)

type mongoPoint struct {
	Latitude  float64 `bson:"latitude"`
	Longitude float64 `bson:"longitude"`
}

type mongoDelivery struct {
	OrderID         string      `bson:"_id"`
	PickupCode      string      `bson:"pickupCode"`
	PickupLocation  *mongoPoint `bson:"pickupLocation,omitempty"`
	DropOffLocation *mongoPoint `bson:"dropOffLocation,omitempty"`
	RiderID         string      `bson:"riderId,omitempty"`
	Status          string      `bson:"status"`
	CreateTime      time.Time   `bson:"createTime"`
	AcceptTime      time.Time   `bson:"acceptTime,omitempty"`
	DeliverTime     time.Time   `bson:"deliverTime,omitempty"`
}

type mongoRider struct {
	RiderID     string    `bson:"_id"`
	Username    string    `bson:"username"`
	PhoneNumber string    `bson:"phoneNumber"`
	CreateTime  time.Time `bson:"createTime"`
}

// MongoStorage implements DeliveryStorage on the MongoDB driver. The order
// id doubles as the document id so duplicate-key errors give the same
// ErrAlreadyExists semantics the Postgres store gets from its primary key.
type MongoStorage struct {
	db *mongo.Database
}

func NewMongoStorage(client *mongo.Client, database string) *MongoStorage {
	return &MongoStorage{db: client.Database(database)}
}

func (s *MongoStorage) CreateDelivery(ctx context.Context, d *NewDelivery) error {
	doc := mongoDelivery{
		OrderID:         d.OrderID,
		PickupCode:      d.PickupCode,
		PickupLocation:  toMongoPoint(d.PickupLocation),
		DropOffLocation: toMongoPoint(d.DropOffLocation),
		Status:          pb.DeliveryStatus_RIDER_UNACCEPT.String(),
		CreateTime:      time.Now(),
	}

	_, err := s.db.Collection(deliveriesCollection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("delivery %s: %w", d.OrderID, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("insert delivery %s: %w", d.OrderID, err)
	}
	return nil
}

func (s *MongoStorage) Delivery(ctx context.Context, orderID string) (*DbDelivery, error) {
	var doc mongoDelivery
	err := s.db.Collection(deliveriesCollection).
		FindOne(ctx, bson.M{"_id": orderID}).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("delivery %s: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query delivery %s: %w", orderID, err)
	}

	d := &DbDelivery{
		OrderID:         doc.OrderID,
		PickupCode:      doc.PickupCode,
		PickupLocation:  fromMongoPoint(doc.PickupLocation),
		DropOffLocation: fromMongoPoint(doc.DropOffLocation),
		Status:          doc.Status,
		CreateTime:      doc.CreateTime,
		AcceptTime:      doc.AcceptTime,
		DeliverTime:     doc.DeliverTime,
	}

	if doc.RiderID != "" {
		rider, err := s.Rider(ctx, doc.RiderID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		d.Rider = rider
	}
	return d, nil
}

func (s *MongoStorage) CreateRider(ctx context.Context, r *NewRider) error {
	doc := mongoRider{
		RiderID:     r.RiderID,
		Username:    r.Username,
		PhoneNumber: r.PhoneNumber,
		CreateTime:  time.Now(),
	}

	_, err := s.db.Collection(ridersCollection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("rider %s: %w", r.RiderID, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("insert rider %s: %w", r.RiderID, err)
	}
	return nil
}

func (s *MongoStorage) Rider(ctx context.Context, riderID string) (*DbRider, error) {
	var doc mongoRider
	err := s.db.Collection(ridersCollection).
		FindOne(ctx, bson.M{"_id": riderID}).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("rider %s: %w", riderID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query rider %s: %w", riderID, err)
	}

	return &DbRider{
		RiderID:     doc.RiderID,
		Username:    doc.Username,
		PhoneNumber: doc.PhoneNumber,
		CreateTime:  doc.CreateTime,
	}, nil
}

func (s *MongoStorage) UpdateDeliveryRider(ctx context.Context, orderID, riderID string) error {
	update := bson.M{"$set": bson.M{
		"riderId":    riderID,
		"acceptTime": time.Now(),
	}}

	_, err := s.db.Collection(deliveriesCollection).
		UpdateOne(ctx, bson.M{"_id": orderID}, update)
	if err != nil {
		return fmt.Errorf("update delivery %s rider: %w", orderID, err)
	}
	return nil
}

func (s *MongoStorage) UpdateDeliveryStatus(ctx context.Context, orderID string, status pb.DeliveryStatus) error {
	set := bson.M{"status": status.String()}
	if status == pb.DeliveryStatus_RIDER_DELIVERED {
		set["deliverTime"] = time.Now()
	}

	_, err := s.db.Collection(deliveriesCollection).
		UpdateOne(ctx, bson.M{"_id": orderID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update delivery %s status: %w", orderID, err)
	}
	return nil
}

func toMongoPoint(p *DbPoint) *mongoPoint {
	if p == nil {
		return nil
	}
	return &mongoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}

func fromMongoPoint(p *mongoPoint) *DbPoint {
	if p == nil {
		return nil
	}
	return &DbPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}

var _ DeliveryStorage = (*MongoStorage)(nil)
