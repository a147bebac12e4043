package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"homefix_api/internal/domain/entities"
	"homefix_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceID   = errors.New("invalid service id")
	ErrServiceNameEmpty   = errors.New("service name is required")
	ErrServiceUnavailable = errors.New("service catalog unavailable")
)

// IServiceUseCase exposes the offered-services catalog operations.
type IServiceUseCase interface {
	Create(ctx context.Context, name, description string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	repo     interfaces.IServiceRepository
	counters interfaces.ICounterRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, counters interfaces.ICounterRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, counters: counters}
}

func (u *ServiceUseCase) Create(ctx context.Context, name, description string) (entities.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Service{}, ErrServiceNameEmpty
	}

	seq, err := u.counters.NextSequence(ctx, entities.CounterFieldService)
	if err != nil {
		log.Printf("[service][usecase] service id allocation failed err=%v", err)
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:          uuid.NewString(),
		ServiceID:   entities.FormatServiceID(seq),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[service][usecase] create failed name=%q err=%v", name, err)
		return entities.Service{}, err
	}
	log.Printf("[service][usecase] create success id=%s service_id=%s", created.ID, created.ServiceID)
	return created, nil
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[service][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	log.Printf("[service][usecase] delete success id=%s", id)
	return nil
}
