package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shellasitanaya/backend-cv-analyzer/config"
	"github.com/shellasitanaya/backend-cv-analyzer/models"
)

const (
	usersCollection      = "users"
	jobsCollection       = "jobs"
	candidatesCollection = "candidates"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// ---- Jobs ----

// CreateJob stores a new job opening and returns its generated ID.
func (f *FirestoreClient) CreateJob(ctx context.Context, job *models.Job) (string, error) {
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now()

	_, err := f.client.Collection(jobsCollection).Doc(job.ID).Set(ctx, job)
	if err != nil {
		return "", fmt.Errorf("failed to create job: %w", err)
	}
	return job.ID, nil
}

// GetJob retrieves a job by ID.
func (f *FirestoreClient) GetJob(ctx context.Context, id string) (*models.Job, error) {
	doc, err := f.client.Collection(jobsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job models.Job
	if err := doc.DataTo(&job); err != nil {
		return nil, fmt.Errorf("failed to parse job data: %w", err)
	}
	job.ID = doc.Ref.ID
	return &job, nil
}

// ListJobs returns the jobs owned by an HR user, newest first.
func (f *FirestoreClient) ListJobs(ctx context.Context, hrUserID string) ([]*models.Job, error) {
	iter := f.client.Collection(jobsCollection).
		Where("hrUserId", "==", hrUserID).
		Documents(ctx)
	defer iter.Stop()

	var jobs []*models.Job
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list jobs: %w", err)
		}

		var job models.Job
		if err := doc.DataTo(&job); err != nil {
			return nil, fmt.Errorf("failed to parse job data: %w", err)
		}
		job.ID = doc.Ref.ID
		jobs = append(jobs, &job)
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

// ---- Candidates ----

// SaveCandidate persists one evaluated candidate as an independent
// write and returns the generated document ID.
func (f *FirestoreClient) SaveCandidate(ctx context.Context, candidate *models.Candidate) (string, error) {
	id := uuid.NewString()
	_, err := f.client.Collection(candidatesCollection).Doc(id).Set(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("failed to save candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID.
func (f *FirestoreClient) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	doc, err := f.client.Collection(candidatesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	var c models.Candidate
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to parse candidate data: %w", err)
	}
	c.ID = doc.Ref.ID
	return &c, nil
}

// DeleteCandidate removes a candidate record.
func (f *FirestoreClient) DeleteCandidate(ctx context.Context, id string) error {
	_, err := f.client.Collection(candidatesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}

// CandidateFilter narrows a candidate listing. Zero values mean the
// filter is not applied.
type CandidateFilter struct {
	Status        string
	MinGPA        *float64
	MinExperience *int
	Skills        []string
}

// ListCandidatesForJob returns a job's candidates matching the filter,
// sorted by match score descending. GPA/experience/skill filtering is
// applied in memory to avoid composite index requirements.
func (f *FirestoreClient) ListCandidatesForJob(ctx context.Context, jobID string, filter CandidateFilter) ([]*models.Candidate, error) {
	iter := f.client.Collection(candidatesCollection).
		Where("jobId", "==", jobID).
		Documents(ctx)
	defer iter.Stop()

	candidates, err := collectCandidates(iter)
	if err != nil {
		return nil, err
	}

	filtered := candidates[:0]
	for _, c := range candidates {
		if matchesFilter(c, filter) {
			filtered = append(filtered, c)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Score() > filtered[j].Score()
	})
	return filtered, nil
}

// ListAllCandidates returns every stored candidate, for talent search.
func (f *FirestoreClient) ListAllCandidates(ctx context.Context) ([]*models.Candidate, error) {
	iter := f.client.Collection(candidatesCollection).Documents(ctx)
	defer iter.Stop()
	return collectCandidates(iter)
}

func collectCandidates(iter *firestore.DocumentIterator) ([]*models.Candidate, error) {
	var candidates []*models.Candidate
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list candidates: %w", err)
		}

		var c models.Candidate
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("failed to parse candidate data: %w", err)
		}
		c.ID = doc.Ref.ID
		candidates = append(candidates, &c)
	}
	return candidates, nil
}

func matchesFilter(c *models.Candidate, filter CandidateFilter) bool {
	if filter.Status != "" && c.Status != filter.Status {
		return false
	}
	if filter.MinGPA != nil && (c.GPA == nil || *c.GPA < *filter.MinGPA) {
		return false
	}
	if filter.MinExperience != nil && (c.TotalExperience == nil || *c.TotalExperience < *filter.MinExperience) {
		return false
	}
	for _, required := range filter.Skills {
		found := false
		for _, s := range c.Skills {
			if strings.EqualFold(s, required) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ---- Users ----

// CreateUser creates a new user in Firestore
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	// Use email as document ID for uniqueness
	docRef := f.client.Collection(usersCollection).Doc(user.Email)

	// Check if user already exists
	_, err := docRef.Get(ctx)
	if err == nil {
		return errors.New("user with this email already exists")
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	// Create user
	_, err = docRef.Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	docRef := f.client.Collection(usersCollection).Doc(email)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByGoogleID retrieves a user by Google ID
func (f *FirestoreClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.New("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser updates user data
func (f *FirestoreClient) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateUserProfile updates user's profile (nama)
func (f *FirestoreClient) UpdateUserProfile(ctx context.Context, email string, nama string) error {
	updates := map[string]interface{}{}
	if nama != "" {
		updates["nama"] = nama
	}

	if len(updates) == 0 {
		return nil
	}

	return f.UpdateUser(ctx, email, updates)
}

// DeleteUser deletes a user
func (f *FirestoreClient) DeleteUser(ctx context.Context, email string) error {
	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
