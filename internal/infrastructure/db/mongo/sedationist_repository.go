package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/ports"
)

const sedationistsCollection = "sedationists"

// SedationistRepository persists sedationists in MongoDB.
type SedationistRepository struct {
	coll *mongo.Collection
}

func NewSedationistRepository(db *mongo.Database) *SedationistRepository {
	return &SedationistRepository{coll: db.Collection(sedationistsCollection)}
}

func (r *SedationistRepository) Create(ctx context.Context, s *domain.Sedationist) (*domain.Sedationist, error) {
	s.ID = ""
	doc := bson.M{
		"first_name":     s.FirstName,
		"last_name":      s.LastName,
		"email":          s.Email,
		"phone":          s.Phone,
		"license_number": s.LicenseNumber,
		"specialty":      s.Specialty,
		"active":         s.Active,
		"created_at":     s.CreatedAt,
		"updated_at":     s.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSedationistExists
		}
		return nil, fmt.Errorf("insert sedationist: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *SedationistRepository) FindByID(ctx context.Context, id string) (*domain.Sedationist, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSedationistNotFound
	}
	return r.findByFilter(ctx, bson.M{"_id": oid})
}

func (r *SedationistRepository) FindByLicense(ctx context.Context, licenseNumber string) (*domain.Sedationist, error) {
	return r.findByFilter(ctx, bson.M{"license_number": licenseNumber})
}

func (r *SedationistRepository) findByFilter(ctx context.Context, filter bson.M) (*domain.Sedationist, error) {
	var s domain.Sedationist
	if err := r.coll.FindOne(ctx, filter).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSedationistNotFound
		}
		return nil, fmt.Errorf("find sedationist: %w", err)
	}
	return &s, nil
}

func (r *SedationistRepository) Update(ctx context.Context, s *domain.Sedationist) (*domain.Sedationist, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrSedationistNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"first_name": s.FirstName,
		"last_name":  s.LastName,
		"email":      s.Email,
		"phone":      s.Phone,
		"specialty":  s.Specialty,
		"updated_at": s.UpdatedAt,
	}})
	if err != nil {
		return nil, fmt.Errorf("update sedationist: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSedationistNotFound
	}
	return r.FindByID(ctx, s.ID)
}

func (r *SedationistRepository) List(ctx context.Context, filter ports.ListSedationistsFilter) ([]*domain.Sedationist, int64, error) {
	query := bson.M{}
	if filter.Specialty != "" {
		query["specialty"] = filter.Specialty
	}
	if filter.Active != nil {
		query["active"] = *filter.Active
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = []bson.M{
			{"first_name": regex},
			{"last_name": regex},
			{"email": regex},
			{"license_number": regex},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count sedationists: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list sedationists: %w", err)
	}
	defer cursor.Close(ctx)

	var sedationists []*domain.Sedationist
	for cursor.Next(ctx) {
		var s domain.Sedationist
		if err := cursor.Decode(&s); err != nil {
			return nil, 0, fmt.Errorf("decode sedationist: %w", err)
		}
		sedationists = append(sedationists, &s)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list sedationists: %w", err)
	}

	return sedationists, total, nil
}

func (r *SedationistRepository) SetActive(ctx context.Context, id string, active bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSedationistNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"active":     active,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("set sedationist active: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSedationistNotFound
	}
	return nil
}

// EnsureIndexes creates the unique license index plus the search-supporting indexes.
func (r *SedationistRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "license_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialty", Value: 1}}},
		{Keys: bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
