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

const patientsCollection = "patients"

// PatientRepository persists patients in MongoDB.
type PatientRepository struct {
	coll *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{coll: db.Collection(patientsCollection)}
}

func (r *PatientRepository) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	p.ID = ""
	doc := bson.M{
		"first_name":            p.FirstName,
		"last_name":             p.LastName,
		"email":                 p.Email,
		"phone":                 p.Phone,
		"date_of_birth":         p.DateOfBirth,
		"medical_record_number": p.MedicalRecordNumber,
		"clinic_name":           p.ClinicName,
		"active":                p.Active,
		"created_at":            p.CreatedAt,
		"updated_at":            p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPatientExists
		}
		return nil, fmt.Errorf("insert patient: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return r.FindByID(ctx, id.Hex())
}

func (r *PatientRepository) FindByID(ctx context.Context, id string) (*domain.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPatientNotFound
	}
	return r.findByFilter(ctx, bson.M{"_id": oid})
}

func (r *PatientRepository) FindByMRN(ctx context.Context, mrn string) (*domain.Patient, error) {
	return r.findByFilter(ctx, bson.M{"medical_record_number": mrn})
}

func (r *PatientRepository) findByFilter(ctx context.Context, filter bson.M) (*domain.Patient, error) {
	var p domain.Patient
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return &p, nil
}

func (r *PatientRepository) Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrPatientNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"first_name":  p.FirstName,
		"last_name":   p.LastName,
		"email":       p.Email,
		"phone":       p.Phone,
		"clinic_name": p.ClinicName,
		"updated_at":  p.UpdatedAt,
	}})
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPatientNotFound
	}
	return r.FindByID(ctx, p.ID)
}

func (r *PatientRepository) List(ctx context.Context, filter ports.ListPatientsFilter) ([]*domain.Patient, int64, error) {
	query := bson.M{}
	if filter.ClinicName != "" {
		query["clinic_name"] = filter.ClinicName
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
			{"medical_record_number": regex},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []*domain.Patient
	for cursor.Next(ctx) {
		var p domain.Patient
		if err := cursor.Decode(&p); err != nil {
			return nil, 0, fmt.Errorf("decode patient: %w", err)
		}
		patients = append(patients, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}

	return patients, total, nil
}

func (r *PatientRepository) SetActive(ctx context.Context, id string, active bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPatientNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"active":     active,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("set patient active: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

// EnsureIndexes creates the unique MRN index plus the search-supporting indexes.
func (r *PatientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "medical_record_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "clinic_name", Value: 1}}},
		{Keys: bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
