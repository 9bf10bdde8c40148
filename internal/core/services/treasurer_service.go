package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kelompok16/kas-backend/internal/core/domain"
	portsrepo "github.com/kelompok16/kas-backend/internal/core/ports/repositories"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/utils"
)

type treasurerService struct {
	BaseService
	treasurerRepo  portsrepo.TreasurerRepositoryFacade
	signatureStore portsrepo.ObjectStore
}

// NewTreasurerService creates a new treasurer profile service.
func NewTreasurerService(treasurerRepo portsrepo.TreasurerRepositoryFacade, signatureStore portsrepo.ObjectStore) portssvc.TreasurerService {
	return &treasurerService{treasurerRepo: treasurerRepo, signatureStore: signatureStore}
}

var _ portssvc.TreasurerService = (*treasurerService)(nil)

// GetTreasurer retrieves the treasurer profile.
func (s *treasurerService) GetTreasurer(ctx context.Context) (*domain.Treasurer, error) {
	treasurer, err := s.treasurerRepo.GetTreasurer(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load treasurer profile")
		return nil, err
	}
	return treasurer, nil
}

// UpdateTreasurer updates the treasurer's name and optionally replaces the
// signature image. The new image is uploaded under a fresh key before the row
// is updated; if the row update fails, the orphaned upload is deleted again so
// the bucket doesn't accumulate unreferenced objects. The old image is removed
// only after the row points at the new one.
func (s *treasurerService) UpdateTreasurer(ctx context.Context, name string, signaturePNG []byte) (*domain.Treasurer, error) {
	treasurer, err := s.treasurerRepo.GetTreasurer(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load treasurer profile")
		return nil, err
	}

	oldObject := treasurer.SignatureObject
	newObject := ""

	if len(signaturePNG) > 0 {
		suffix, err := utils.GenerateSecureRandomString(8)
		if err != nil {
			return nil, fmt.Errorf("failed to generate signature object key: %w", err)
		}
		newObject = fmt.Sprintf("signature-%d-%s.png", time.Now().Unix(), suffix)

		if err := s.signatureStore.Upload(ctx, newObject, "image/png", signaturePNG); err != nil {
			s.LogError(ctx, err, "Failed to upload signature image")
			return nil, err
		}
		treasurer.SignatureObject = newObject
	}

	treasurer.Name = name
	treasurer.LastUpdatedAt = time.Now()
	treasurer.LastUpdatedBy = actorFromContext(ctx)

	if err := s.treasurerRepo.UpdateTreasurer(ctx, *treasurer); err != nil {
		s.LogError(ctx, err, "Failed to update treasurer profile")
		if newObject != "" {
			if delErr := s.signatureStore.Delete(ctx, newObject); delErr != nil {
				s.LogWarn(ctx, "Failed to clean up orphaned signature upload", "object", newObject, "error", delErr.Error())
			}
		}
		return nil, err
	}

	if newObject != "" && oldObject != "" {
		if delErr := s.signatureStore.Delete(ctx, oldObject); delErr != nil {
			s.LogWarn(ctx, "Failed to delete replaced signature image", "object", oldObject, "error", delErr.Error())
		}
	}

	s.LogInfo(ctx, "Treasurer profile updated", "treasurer_id", treasurer.TreasurerID)
	return treasurer, nil
}

// DeleteSignature clears the signature reference on the profile row first,
// then removes the object; a failed object delete leaves an orphan in the
// bucket rather than a dangling reference in the row.
func (s *treasurerService) DeleteSignature(ctx context.Context) (*domain.Treasurer, error) {
	treasurer, err := s.treasurerRepo.GetTreasurer(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load treasurer profile")
		return nil, err
	}

	oldObject := treasurer.SignatureObject
	if oldObject == "" {
		return treasurer, nil
	}

	treasurer.SignatureObject = ""
	treasurer.LastUpdatedAt = time.Now()
	treasurer.LastUpdatedBy = actorFromContext(ctx)

	if err := s.treasurerRepo.UpdateTreasurer(ctx, *treasurer); err != nil {
		s.LogError(ctx, err, "Failed to clear signature reference")
		return nil, err
	}

	if delErr := s.signatureStore.Delete(ctx, oldObject); delErr != nil {
		s.LogWarn(ctx, "Failed to delete signature image", "object", oldObject, "error", delErr.Error())
	}

	s.LogInfo(ctx, "Treasurer signature removed", "treasurer_id", treasurer.TreasurerID)
	return treasurer, nil
}
