package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/healthbot/internal/domain"
	"github.com/alexanderramin/healthbot/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{profiles: profiles, observer: useCaseObserverOrNoop(observers)}
}

func (s *profileService) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileRequired
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Save(ctx context.Context, p *domain.Profile) (err error) {
	start := time.Now()
	defer func() { observe(ctx, s.observer, "profile.save", p.UserID, start, nil, err) }()

	if vErr := p.Validate(); vErr != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, vErr)
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
