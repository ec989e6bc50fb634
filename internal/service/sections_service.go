package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/goalkeeper/internal/error_values"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/pkg/entity"
)

type SectionsService struct {
	repo repository.SectionsRepositoryI
}

func NewSectionsService(sectionsRepo repository.SectionsRepositoryI) *SectionsService {
	if sectionsRepo == nil {
		log.Fatal("provided nil sectionsRepo")
	}
	return &SectionsService{
		repo: sectionsRepo,
	}
}

func (ss *SectionsService) CreateSection(ctx context.Context, uid uuid.UUID, req CreateSectionRequest) (*entity.Section, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	id, err := ss.repo.Create(ctx, &entity.Section{
		UserID:      uid,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, repoError("sections", err)
	}
	section, err := ss.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError("sections", err)
	}
	return section, nil
}

func (ss *SectionsService) ListSections(ctx context.Context, uid uuid.UUID) ([]*entity.Section, error) {
	sections, err := ss.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, repoError("sections", err)
	}
	return sections, nil
}

// DeleteSection removes the section only. Its goals are kept and lose
// their section.
func (ss *SectionsService) DeleteSection(ctx context.Context, sectionID, uid uuid.UUID) error {
	if err := checkSectionOwner(ctx, ss.repo, sectionID, uid); err != nil {
		return err
	}
	if err := ss.repo.Delete(ctx, sectionID); err != nil {
		return repoError("sections", err)
	}
	return nil
}
