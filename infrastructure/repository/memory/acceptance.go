package memory

import (
	"context"

	"github.com/vfg2006/influencer-sales-api/infrastructure/repository"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
)

type acceptanceStore struct {
	*Store
}

func (s acceptanceStore) InvalidateCodes(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, code := range s.codes {
		if code.UserID == userID && !code.Used {
			code.Used = true
			s.codes[id] = code
		}
	}

	return nil
}

func (s acceptanceStore) InsertCode(_ context.Context, code *domain.VerificationCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCodeID++
	code.ID = s.nextCodeID
	s.codes[code.ID] = *code

	return nil
}

func (s acceptanceStore) FindCode(_ context.Context, userID int64, value string) (*domain.VerificationCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.VerificationCode
	for _, code := range s.codes {
		if code.UserID != userID || code.Code != value {
			continue
		}
		if latest == nil || code.ExpiresAt.After(latest.ExpiresAt) ||
			(code.ExpiresAt.Equal(latest.ExpiresAt) && code.ID > latest.ID) {
			found := code
			latest = &found
		}
	}

	return latest, nil
}

func (s acceptanceStore) MarkCodeUsed(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.codes[id]
	if !ok {
		return repository.ErrNotFound
	}

	code.Used = true
	s.codes[id] = code

	return nil
}

func (s acceptanceStore) InsertAcceptance(_ context.Context, acceptance *domain.TermsAcceptance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAcceptanceID++
	acceptance.ID = s.nextAcceptanceID
	s.acceptances = append(s.acceptances, *acceptance)

	return nil
}

func (s acceptanceStore) LatestAcceptance(_ context.Context, userID int64) (*domain.TermsAcceptance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.TermsAcceptance
	for i := range s.acceptances {
		acceptance := s.acceptances[i]
		if acceptance.UserID != userID {
			continue
		}
		if latest == nil || !acceptance.AcceptedAt.Before(latest.AcceptedAt) {
			latest = &acceptance
		}
	}

	return latest, nil
}
