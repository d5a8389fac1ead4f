// Package store owns the MongoDB connection and every persistence operation
// of the reservation backend. All relational invariants (reference existence,
// uniqueness, seat accounting) are enforced here, on top of the database's
// own unique-index semantics.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/config"
	"github.com/matahj/autobus-api/models"
)

// Collection names follow the original deployment.
const (
	collTerminals      = "terminales"
	collBuses          = "autobuses"
	collDrivers        = "conductores"
	collAdministrators = "administradores"
	collCustomers      = "clientes"
	collTrips          = "viajes"
	collTickets        = "boletos"
)

// Store is the explicitly owned connection to the document database. It is
// opened once at process start and closed on shutdown.
type Store struct {
	client  *mongo.Client
	db      *mongo.Database
	log     *zap.Logger
	timeout time.Duration
}

// Connect dials MongoDB with bounded retries, verifies the connection and
// creates the unique indexes the data model relies on.
func Connect(ctx context.Context, cfg config.Config, log *zap.Logger) (*Store, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true)

	var client *mongo.Client
	var err error
	for attempt := 1; attempt <= cfg.ConnectRetries; attempt++ {
		client, err = connectOnce(ctx, clientOptions)
		if err == nil {
			break
		}
		log.Warn("mongodb connection failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", cfg.ConnectRetries),
			zap.Error(err))
		select {
		case <-ctx.Done():
			return nil, &models.StorageError{Op: "connect", Err: ctx.Err()}
		case <-time.After(2 * time.Second):
		}
	}
	if client == nil {
		return nil, &models.StorageError{Op: "connect", Err: err}
	}

	s := &Store{
		client:  client,
		db:      client.Database(cfg.MongoDBName),
		log:     log,
		timeout: cfg.RequestTimeout,
	}

	if err := s.ensureIndexes(ctx); err != nil {
		s.Close(ctx)
		return nil, err
	}

	log.Info("connected to mongodb", zap.String("database", cfg.MongoDBName))
	return s, nil
}

func connectOnce(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// Close releases the connection pool.
func (s *Store) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	if err := s.client.Ping(ctx, nil); err != nil {
		return &models.StorageError{Op: "ping", Err: err}
	}
	return nil
}

// ensureIndexes creates the unique indexes behind every uniqueness invariant:
// terminal name, bus plate, the three email fields, and one seat per trip.
func (s *Store) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := func(keys bson.D, name string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    keys,
			Options: options.Index().SetUnique(true).SetName(name),
		}
	}

	indexes := map[string][]mongo.IndexModel{
		collTerminals: {
			unique(bson.D{{Key: "name", Value: 1}}, "terminal_name_idx"),
		},
		collBuses: {
			unique(bson.D{{Key: "plate_number", Value: 1}}, "plate_number_idx"),
		},
		collDrivers: {
			unique(bson.D{{Key: "email", Value: 1}}, "driver_email_idx"),
		},
		collAdministrators: {
			unique(bson.D{{Key: "email", Value: 1}}, "administrator_email_idx"),
		},
		collCustomers: {
			unique(bson.D{{Key: "email", Value: 1}}, "customer_email_idx"),
		},
		collTickets: {
			unique(bson.D{{Key: "trip", Value: 1}, {Key: "seat_number", Value: 1}}, "trip_seat_idx"),
		},
	}

	for coll, ims := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, ims); err != nil {
			return &models.StorageError{Op: "create indexes for " + coll, Err: err}
		}
	}
	return nil
}

// opCtx bounds a single storage call.
func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) storageErr(op string, err error) error {
	s.log.Error("storage operation failed", zap.String("op", op), zap.Error(err))
	return &models.StorageError{Op: op, Err: err}
}

// resolveRef turns the request's hex id for a reference field into an
// ObjectID, checking that the referenced document exists. A malformed id
// cannot name an existing document and gets the same answer as an absent one.
func (s *Store) resolveRef(ctx context.Context, field string, entity models.Entity, coll, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &models.ReferenceNotFoundError{Field: field, Entity: entity, ID: id}
	}

	n, err := s.db.Collection(coll).CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return primitive.NilObjectID, s.storageErr("resolve "+field, err)
	}
	if n == 0 {
		return primitive.NilObjectID, &models.ReferenceNotFoundError{Field: field, Entity: entity, ID: id}
	}
	return oid, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &models.ValidationError{
			Field:   "id",
			Rule:    "format",
			Message: "el identificador no es válido",
		}
	}
	return oid, nil
}

// findByID decodes the document with the given id into out.
func (s *Store) findByID(ctx context.Context, entity models.Entity, coll, id string, out any) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	err = s.db.Collection(coll).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return &models.NotFoundError{Entity: entity, ID: id}
	}
	if err != nil {
		return s.storageErr("find "+string(entity), err)
	}
	return nil
}

// summaryByID decodes a projected subset of the referenced document into out.
// The projection always drops the referenced document's own id.
func (s *Store) summaryByID(ctx context.Context, field string, entity models.Entity, coll string, oid primitive.ObjectID, projection bson.M, out any) error {
	proj := bson.M{"_id": 0}
	for k, v := range projection {
		proj[k] = v
	}
	err := s.db.Collection(coll).FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(proj)).Decode(out)
	if err == mongo.ErrNoDocuments {
		return &models.ReferenceNotFoundError{Field: field, Entity: entity, ID: oid.Hex()}
	}
	if err != nil {
		return s.storageErr("expand "+field, err)
	}
	return nil
}

func nowUTC() time.Time {
	return bsonTime(time.Now())
}

// bsonTime normalizes a timestamp to what BSON can store, so a created
// document reads back equal to what the caller was handed.
func bsonTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
