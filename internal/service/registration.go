package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jitendrapal/pathology-v1/internal/models"
)

// RegisterInput carries the complete patient form.
type RegisterInput struct {
	Title            string
	FirstName        string
	LastName         string
	Age              int
	Gender           string
	Phone            string
	Email            *string
	Address          string
	MedicalHistory   *string
	EmergencyContact *string
	HospitalName     *string
	CollectedBy      *string
}

// DraftInput carries a partial fill of the registration form; fields
// arrive across steps (identity, contact, clinical) and nil means
// untouched.
type DraftInput struct {
	Title            *string
	FirstName        *string
	LastName         *string
	Age              *int
	Gender           *string
	Phone            *string
	Email            *string
	Address          *string
	MedicalHistory   *string
	EmergencyContact *string
	HospitalName     *string
	CollectedBy      *string
}

// RegistrationService registers patients, either in one shot or through
// a persisted draft that replaces the old session-backed wizard: partial
// fields accumulate on the draft row and only CommitDraft touches the
// patient table.
type RegistrationService struct {
	patients PatientStore
	drafts   DraftStore
}

func NewRegistrationService(patients PatientStore, drafts DraftStore) *RegistrationService {
	return &RegistrationService{
		patients: patients,
		drafts:   drafts,
	}
}

// Register creates a patient directly from a complete form.
func (s *RegistrationService) Register(ctx context.Context, input RegisterInput) (*models.Patient, error) {
	patient := patientFromInput(input)

	existing, err := s.patients.GetByPhone(ctx, patient.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicatePhone
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Get returns one patient.
func (s *RegistrationService) Get(ctx context.Context, id string) (*models.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

// Search returns patients matching the term against name or phone.
func (s *RegistrationService) Search(ctx context.Context, term string) ([]models.Patient, error) {
	return s.patients.Search(ctx, strings.TrimSpace(term))
}

// Update edits a registered patient's details.
func (s *RegistrationService) Update(ctx context.Context, id string, input RegisterInput) (*models.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	updated := patientFromInput(input)
	if updated.Phone != patient.Phone {
		existing, err := s.patients.GetByPhone(ctx, updated.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicatePhone
		}
	}

	updated.ID = patient.ID
	updated.RegisteredAt = patient.RegisteredAt
	if err := s.patients.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// StartDraft opens an empty registration draft.
func (s *RegistrationService) StartDraft(ctx context.Context) (*models.RegistrationDraft, error) {
	draft := &models.RegistrationDraft{ID: uuid.NewString(), CreatedAt: time.Now()}
	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// UpdateDraft merges the provided fields into the draft.
func (s *RegistrationService) UpdateDraft(ctx context.Context, id string, input DraftInput) (*models.RegistrationDraft, error) {
	draft, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	mergeDraft(draft, input)
	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// CommitDraft turns a complete draft into a patient and removes the
// draft. A draft left behind by a failed delete is inert; nothing reads
// drafts except the registration steps themselves.
func (s *RegistrationService) CommitDraft(ctx context.Context, id string) (*models.Patient, error) {
	draft, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}

	input, err := draftToInput(draft)
	if err != nil {
		return nil, err
	}
	patient := patientFromInput(*input)

	existing, err := s.patients.GetByPhone(ctx, patient.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicatePhone
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}
	if err := s.drafts.Delete(ctx, draft.ID); err != nil {
		return nil, err
	}
	return patient, nil
}

func patientFromInput(input RegisterInput) *models.Patient {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Mr."
	}
	return &models.Patient{
		ID:               uuid.NewString(),
		Title:            title,
		FirstName:        titleCase(input.FirstName),
		LastName:         titleCase(input.LastName),
		Age:              input.Age,
		Gender:           input.Gender,
		Phone:            strings.TrimSpace(input.Phone),
		Email:            normalizeEmail(input.Email),
		Address:          strings.TrimSpace(input.Address),
		MedicalHistory:   trimOptional(input.MedicalHistory),
		EmergencyContact: trimOptional(input.EmergencyContact),
		HospitalName:     trimOptional(input.HospitalName),
		CollectedBy:      trimOptional(input.CollectedBy),
		RegisteredAt:     time.Now(),
	}
}

func mergeDraft(draft *models.RegistrationDraft, input DraftInput) {
	if input.Title != nil {
		draft.Title = input.Title
	}
	if input.FirstName != nil {
		draft.FirstName = input.FirstName
	}
	if input.LastName != nil {
		draft.LastName = input.LastName
	}
	if input.Age != nil {
		draft.Age = input.Age
	}
	if input.Gender != nil {
		draft.Gender = input.Gender
	}
	if input.Phone != nil {
		draft.Phone = input.Phone
	}
	if input.Email != nil {
		draft.Email = input.Email
	}
	if input.Address != nil {
		draft.Address = input.Address
	}
	if input.MedicalHistory != nil {
		draft.MedicalHistory = input.MedicalHistory
	}
	if input.EmergencyContact != nil {
		draft.EmergencyContact = input.EmergencyContact
	}
	if input.HospitalName != nil {
		draft.HospitalName = input.HospitalName
	}
	if input.CollectedBy != nil {
		draft.CollectedBy = input.CollectedBy
	}
}

// draftToInput checks the draft carries every required field before it
// may become a patient.
func draftToInput(draft *models.RegistrationDraft) (*RegisterInput, error) {
	if draft.FirstName == nil || draft.LastName == nil || draft.Age == nil ||
		draft.Gender == nil || draft.Phone == nil || draft.Address == nil {
		return nil, ErrDraftIncomplete
	}
	if strings.TrimSpace(*draft.FirstName) == "" || strings.TrimSpace(*draft.LastName) == "" ||
		strings.TrimSpace(*draft.Phone) == "" || strings.TrimSpace(*draft.Address) == "" {
		return nil, ErrDraftIncomplete
	}

	input := RegisterInput{
		FirstName:        *draft.FirstName,
		LastName:         *draft.LastName,
		Age:              *draft.Age,
		Gender:           *draft.Gender,
		Phone:            *draft.Phone,
		Address:          *draft.Address,
		Email:            draft.Email,
		MedicalHistory:   draft.MedicalHistory,
		EmergencyContact: draft.EmergencyContact,
		HospitalName:     draft.HospitalName,
		CollectedBy:      draft.CollectedBy,
	}
	if draft.Title != nil {
		input.Title = *draft.Title
	}
	return &input, nil
}

// titleCase normalizes an operator-typed name: trimmed, first letter of
// each word upper, rest lower.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.ToLower(strings.TrimSpace(*email))
	if e == "" {
		return nil
	}
	return &e
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
