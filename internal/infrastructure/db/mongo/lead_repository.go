package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/promontazh/landing-api/internal/core/domain"
)

const collectionLeads = "leads"

// LeadRepository persists incoming installation requests. Leads carry
// timestamp-derived ids, so a duplicate key means two submissions landed in
// the same millisecond; the later one is bumped until it fits.
type LeadRepository struct {
	col *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{col: db.Collection(collectionLeads)}
}

func (r *LeadRepository) Insert(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	for {
		_, err := r.col.InsertOne(ctx, c)
		if err == nil {
			return nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return err
		}
		c.ID++
	}
}

// List returns leads in submission order, oldest first.
func (r *LeadRepository) List(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var leads []domain.Client
	if err := cur.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}
