package forms

import (
	"context"
	"errors"
	"strings"
	"time"

	"racetrack-licensing-api/src/models"
	"racetrack-licensing-api/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service owns the forms collection and enforces the form lifecycle:
// creation defaults, update shapes, submission gating and delete gating.
type Service struct {
	collection *mongo.Collection
}

func NewService(db *mongo.Database) *Service {
	return &Service{collection: db.Collection("forms")}
}

// Create builds a form from the default template, overlays the supplied
// name, assigns a reference number and persists it.
func (s *Service) Create(ctx context.Context, formName string) (*models.Form, error) {
	now := time.Now()

	form := models.DefaultForm()
	form.FormName = formName
	form.ReferenceNumber = utils.GenerateReferenceNumber()
	form.CreatedAt = now
	form.UpdatedAt = now

	result, err := s.collection.InsertOne(ctx, form)
	if err != nil {
		return nil, err
	}

	form.ID = result.InsertedID.(primitive.ObjectID)
	return &form, nil
}

// FindByID fetches one form. A malformed identifier and a missing document
// both come back as ErrFormNotFound.
func (s *Service) FindByID(ctx context.Context, id string) (*models.Form, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrFormNotFound
	}

	var form models.Form
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	return &form, nil
}

// FindAll lists forms, optionally filtered by status, most recently updated
// first. No matches is an empty slice, never an error.
func (s *Service) FindAll(ctx context.Context, status string) ([]models.Form, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	forms := []models.Form{}
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	return forms, nil
}

// Update applies exactly one of a top-level rename or a typed page patch.
// The existence check runs first so an absent form surfaces as NotFound
// before any payload problems. Updates are allowed after submission; only
// delete and re-submit are gated on status.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateFormRequest) (*models.Form, error) {
	hasName := req.FormName != nil
	hasPage := req.Page != ""

	if hasName == hasPage {
		return nil, &ValidationError{Message: "provide either formName or page with data, not both"}
	}
	if hasPage && len(req.Data) == 0 {
		return nil, &ValidationError{Message: "data is required when page is set"}
	}

	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}

	var set bson.M
	if hasName {
		set = bson.M{"formName": *req.FormName}
	} else {
		fields, err := updateFieldsForPage(req.Page, req.Data)
		if err != nil {
			return nil, err
		}
		set = fields
	}
	set["updatedAt"] = time.Now()

	return s.findOneAndSet(ctx, id, set)
}

// Submit transitions a form to submitted. Fails with ErrAlreadySubmitted on
// a second submit and with a ValidationError naming every missing required
// field when applicant details are incomplete.
func (s *Service) Submit(ctx context.Context, id string) (*models.Form, error) {
	form, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if form.Status == models.StatusSubmitted {
		return nil, ErrAlreadySubmitted
	}

	if missing := missingRequiredFields(form); len(missing) > 0 {
		return nil, newMissingFieldsError(missing)
	}

	return s.findOneAndSet(ctx, id, bson.M{
		"status":    models.StatusSubmitted,
		"updatedAt": time.Now(),
	})
}

// Delete removes an in-progress form. Submitted forms cannot be deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	form, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if form.Status == models.StatusSubmitted {
		return ErrAlreadySubmitted
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": form.ID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrFormNotFound
	}

	return nil
}

// findOneAndSet applies a $set and returns the post-update document. The
// preceding existence check and this write are not atomic together; a
// concurrent delete in between surfaces here as ErrFormNotFound.
func (s *Service) findOneAndSet(ctx context.Context, id string, set bson.M) (*models.Form, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrFormNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var form models.Form
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	return &form, nil
}

// missingRequiredFields collects every incomplete applicant-details field
// required for submission, so one failure reports them all.
func missingRequiredFields(form *models.Form) []string {
	details := form.Pages.ApplicantDetails

	required := []struct {
		name  string
		value string
	}{
		{"applicantName", details.ApplicantName},
		{"applicantAddress", details.ApplicantAddress},
		{"applicantPostcode", details.ApplicantPostcode},
		{"racetrackAddress", details.RacetrackAddress},
		{"racetrackPostcode", details.RacetrackPostcode},
		{"telephone", details.Telephone},
		{"email", details.Email},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if details.Disqualified && strings.TrimSpace(details.DisqualificationDetails) == "" {
		missing = append(missing, "disqualificationDetails")
	}

	return missing
}
