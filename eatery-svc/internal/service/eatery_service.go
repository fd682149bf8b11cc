package service

import (
	"context"
	"fmt"

	"eatery-reviews/eatery-svc/internal/domain"

	"go.uber.org/zap"
)

type EateryService struct {
	repository EateryRepository
	locker     EateryLocker
	qr         QRGenerator
	events     notifier
	log        *zap.Logger
}

func NewEateryService(repository EateryRepository, locker EateryLocker, publisher EventPublisher, qr QRGenerator, log *zap.Logger) *EateryService {
	return &EateryService{
		repository: repository,
		locker:     locker,
		qr:         qr,
		events:     notifier{publisher: publisher, log: log},
		log:        log,
	}
}

func (s *EateryService) List(ctx context.Context) ([]domain.Eatery, error) {
	return s.repository.ListEateries(ctx)
}

func (s *EateryService) Get(ctx context.Context, id int) (*domain.Eatery, error) {
	return s.repository.GetEatery(ctx, id)
}

func (s *EateryService) Create(ctx context.Context, in domain.CreateEateryInput) (*domain.Eatery, error) {
	in.Normalize()
	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	eatery := &domain.Eatery{
		Name:    in.Name,
		Address: in.Address,
		Contact: in.Contact,
	}
	if err := s.repository.CreateEatery(ctx, eatery); err != nil {
		return nil, fmt.Errorf("create eatery: %w", err)
	}

	s.log.Info("eatery created", zap.Int("eatery_id", eatery.ID))
	s.events.notify(ctx, eateryEvent(domain.EventEateryCreated, eatery))
	return eatery, nil
}

func (s *EateryService) Update(ctx context.Context, id int, in domain.UpdateEateryInput) (*domain.Eatery, error) {
	in.Normalize()
	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	eatery := &domain.Eatery{
		ID:      id,
		Name:    in.Name,
		Address: in.Address,
		Contact: in.Contact,
	}
	if err := s.repository.UpdateEatery(ctx, eatery); err != nil {
		return nil, err
	}

	s.events.notify(ctx, eateryEvent(domain.EventEateryUpdated, eatery))
	return eatery, nil
}

// Delete removes the eatery and every review it owns. The eatery lock keeps
// a concurrent AddReview from inserting a review that would be orphaned.
func (s *EateryService) Delete(ctx context.Context, id int) (*domain.Eatery, error) {
	unlock, err := s.locker.Lock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock eatery %d: %w", id, err)
	}
	defer unlock()

	eatery, err := s.repository.DeleteEatery(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info("eatery deleted", zap.Int("eatery_id", id))
	s.events.notify(ctx, eateryEvent(domain.EventEateryDeleted, eatery))
	return eatery, nil
}

func (s *EateryService) Flag(ctx context.Context, id int, in domain.FlagInput) (*domain.Eatery, error) {
	in.Normalize()
	if err := domain.Validate(in); err != nil {
		return nil, err
	}

	eatery, err := s.repository.FlagEatery(ctx, id, in.Reason)
	if err != nil {
		return nil, err
	}

	s.events.notify(ctx, eateryEvent(domain.EventEateryFlagged, eatery))
	return eatery, nil
}

func (s *EateryService) Unflag(ctx context.Context, id int) (*domain.Eatery, error) {
	eatery, err := s.repository.UnflagEatery(ctx, id)
	if err != nil {
		return nil, err
	}

	s.events.notify(ctx, eateryEvent(domain.EventEateryUnflagged, eatery))
	return eatery, nil
}

// ReviewQRCode renders a PNG QR code pointing patrons at the eatery's
// review form.
func (s *EateryService) ReviewQRCode(ctx context.Context, id int) ([]byte, error) {
	if _, err := s.repository.GetEatery(ctx, id); err != nil {
		return nil, err
	}
	png, err := s.qr.Generate(id)
	if err != nil {
		return nil, fmt.Errorf("generate qr code for eatery %d: %w", id, err)
	}
	return png, nil
}
