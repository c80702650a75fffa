package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
)

const entriesCollection = "entries"

// EntryRepository is the Mongo-backed entry store. Dates are stored as
// YYYY-MM-DD strings, so lexical order is chronological and the empty string
// (missing date) sorts last under a descending sort.
type EntryRepository struct {
	coll *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{coll: db.Collection(entriesCollection)}
}

type mongoEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	ProjectID string             `bson:"project_id"`
	Date      string             `bson:"date"`
	Amount    float64            `bson:"amount"`
	Unit      string             `bson:"unit"`
	Note      string             `bson:"note,omitempty"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (me mongoEntry) toDomain() domain.WorkEntry {
	return domain.WorkEntry{
		ID:        me.ID.Hex(),
		UserID:    me.UserID,
		ProjectID: me.ProjectID,
		Date:      me.Date,
		Amount:    me.Amount,
		Unit:      domain.UnitKind(me.Unit),
		Note:      me.Note,
		CreatedAt: unixToTime(me.CreatedAt),
		UpdatedAt: unixToTime(me.UpdatedAt),
	}
}

func (r *EntryRepository) Create(ctx context.Context, e *domain.WorkEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEntry{
		ID:        primitive.NewObjectID(),
		UserID:    e.UserID,
		ProjectID: e.ProjectID,
		Date:      e.Date,
		Amount:    e.Amount,
		Unit:      string(e.Unit),
		Note:      e.Note,
		CreatedAt: e.CreatedAt.Unix(),
		UpdatedAt: e.UpdatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	e.ID = doc.ID.Hex()
	return nil
}

func (r *EntryRepository) Update(ctx context.Context, e *domain.WorkEntry) error {
	oid, ok := objectID(e.ID)
	if !ok {
		return domain.ErrEntryNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"project_id": e.ProjectID,
		"date":       e.Date,
		"amount":     e.Amount,
		"unit":       string(e.Unit),
		"note":       e.Note,
		"updated_at": e.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrEntryNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id string) (*domain.WorkEntry, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var me mongoEntry
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	e := me.toDomain()
	return &e, nil
}

// Find returns the entries matching f, newest date first.
func (r *EntryRepository) Find(ctx context.Context, f ports.EntryFilter) ([]domain.WorkEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, entryQuery(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	var docs []mongoEntry
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	out := make([]domain.WorkEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func entryQuery(f ports.EntryFilter) bson.M {
	q := bson.M{}
	if f.UserID != "" {
		q["user_id"] = f.UserID
	}
	if f.ProjectID != "" {
		q["project_id"] = f.ProjectID
	}
	if f.Unit != "" {
		q["unit"] = string(f.Unit)
	}
	if from, to, ok := f.DateBounds(); ok {
		q["date"] = bson.M{"$gte": from, "$lte": to}
	}
	return q
}

func (r *EntryRepository) DeleteByProject(ctx context.Context, projectID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return 0, fmt.Errorf("delete project entries: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *EntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "project_id", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	})
	return err
}
