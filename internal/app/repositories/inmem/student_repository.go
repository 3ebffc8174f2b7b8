package inmem

import (
	"context"
	"time"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/repositories"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

type studentRepository struct {
	s *Store
}

// Create enrolls a student, checking batch capacity and bumping the
// counter under the store lock. Nothing is mutated on failure.
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	batch, ok := r.s.batches[student.BatchID]
	if !ok || !batch.IsActive {
		return apperrors.ErrBatchNotFound
	}
	if !batch.HasSpace() {
		return apperrors.ErrBatchCapacityExceeded
	}
	if _, ok := r.s.sports[student.SportID]; !ok {
		return apperrors.ErrSportNotFound
	}
	for _, existing := range r.s.students {
		if existing.StudentID == student.StudentID {
			return apperrors.ErrStudentIDAlreadyExists
		}
	}

	student.ID = r.s.nextID()
	student.IsActive = true
	if student.JoiningDate.IsZero() {
		student.JoiningDate = time.Now()
	}
	student.CreatedAt = time.Now()
	clone := *student
	r.s.students[student.ID] = &clone
	batch.CurrentCapacity++
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	student, ok := r.s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	clone := *student
	return &clone, nil
}

func (r *studentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, student := range r.s.students {
		if student.StudentID == studentID {
			clone := *student
			return &clone, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *studentRepository) List(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var students []*models.Student
	for _, student := range r.s.students {
		if !filter.IncludeInactive && !student.IsActive {
			continue
		}
		if filter.SportID > 0 && student.SportID != filter.SportID {
			continue
		}
		if filter.BatchID > 0 && student.BatchID != filter.BatchID {
			continue
		}
		if filter.Search != "" && !matchesSearch(filter.Search, student.Name, student.StudentID, student.Phone) {
			continue
		}
		clone := *student
		students = append(students, &clone)
	}
	sortByID(students, func(s *models.Student) int64 { return s.ID })
	return students, nil
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.students[student.ID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	existing.Name = student.Name
	existing.Phone = student.Phone
	existing.Email = student.Email
	existing.Address = student.Address
	existing.EmergencyContact = student.EmergencyContact
	existing.MedicalNotes = student.MedicalNotes
	existing.SkillLevel = student.SkillLevel
	return nil
}

// Transfer moves an active student between batches, adjusting both
// counters atomically under the store lock.
func (r *studentRepository) Transfer(ctx context.Context, id, toBatchID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	student, ok := r.s.students[id]
	if !ok || !student.IsActive {
		return apperrors.ErrStudentNotFound
	}
	if student.BatchID == toBatchID {
		return nil
	}

	target, ok := r.s.batches[toBatchID]
	if !ok || !target.IsActive {
		return apperrors.ErrBatchNotFound
	}
	if !target.HasSpace() {
		return apperrors.ErrBatchCapacityExceeded
	}

	if source, ok := r.s.batches[student.BatchID]; ok {
		source.CurrentCapacity--
	}
	target.CurrentCapacity++
	student.BatchID = toBatchID
	return nil
}

// Deactivate soft-deletes a student and releases their batch slot.
func (r *studentRepository) Deactivate(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	student, ok := r.s.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	if !student.IsActive {
		return nil
	}
	student.IsActive = false
	if batch, ok := r.s.batches[student.BatchID]; ok {
		batch.CurrentCapacity--
	}
	return nil
}

func (r *studentRepository) CountActiveByBatch(ctx context.Context, batchID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	for _, student := range r.s.students {
		if student.BatchID == batchID && student.IsActive {
			count++
		}
	}
	return count, nil
}
