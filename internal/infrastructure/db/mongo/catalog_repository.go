package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/promontazh/landing-api/internal/core/domain"
)

const (
	collectionServices = "services"
	collectionCounters = "counters"

	counterServices = "services"
)

// CatalogRepository persists the service catalog. Service ids come from a
// counter document so they stay small, sequential and stable across restarts.
type CatalogRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		col:      db.Collection(collectionServices),
		counters: db.Collection(collectionCounters),
	}
}

// EnsureSeed inserts the default catalog when the collection is empty, and
// advances the id counter past the highest seeded id.
func (r *CatalogRepository) EnsureSeed(ctx context.Context, seed []domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 || len(seed) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(seed))
	var maxID int64
	for _, s := range seed {
		if s.ID > maxID {
			maxID = s.ID
		}
		docs = append(docs, s)
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return err
	}

	_, err = r.counters.UpdateOne(ctx,
		bson.M{"_id": counterServices},
		bson.M{"$max": bson.M{"seq": maxID}},
		options.Update().SetUpsert(true),
	)
	return err
}

// List returns the catalog ordered by id, oldest first.
func (r *CatalogRepository) List(ctx context.Context) ([]domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var services []domain.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id int64) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Service
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Insert assigns the next id from the counter and stores the service.
func (r *CatalogRepository) Insert(ctx context.Context, s *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	s.ID = id

	_, err = r.col.InsertOne(ctx, s)
	return err
}

func (r *CatalogRepository) Update(ctx context.Context, s *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *CatalogRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": counterServices},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
