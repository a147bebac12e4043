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
	ErrPortfolioNotFound   = errors.New("portfolio entry not found")
	ErrInvalidPortfolioID  = errors.New("invalid portfolio id")
	ErrPortfolioImageReq   = errors.New("portfolio image is required")
	ErrPortfolioTitleEmpty = errors.New("portfolio title is required")
)

// CreatePortfolioInput is the payload for a new showcase entry.
type CreatePortfolioInput struct {
	Title         string
	Description   string
	ImageFile     []byte
	ImageFilename string
}

// IPortfolioUseCase exposes the showcase-portfolio operations.
type IPortfolioUseCase interface {
	Create(ctx context.Context, in CreatePortfolioInput) (entities.Portfolio, error)
	List(ctx context.Context) ([]entities.Portfolio, error)
	Delete(ctx context.Context, id string) error
}

type PortfolioUseCase struct {
	repo    interfaces.IPortfolioRepository
	uploads interfaces.IUploadGateway
}

var _ IPortfolioUseCase = (*PortfolioUseCase)(nil)

func NewPortfolioUseCase(repo interfaces.IPortfolioRepository, uploads interfaces.IUploadGateway) *PortfolioUseCase {
	return &PortfolioUseCase{repo: repo, uploads: uploads}
}

// Create uploads the showcase image first, then allocates the portfolio
// sequence and inserts the entry in one all-or-nothing repository call. An
// image failure therefore never burns an identifier.
func (u *PortfolioUseCase) Create(ctx context.Context, in CreatePortfolioInput) (entities.Portfolio, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Portfolio{}, ErrPortfolioTitleEmpty
	}
	if len(in.ImageFile) == 0 {
		return entities.Portfolio{}, ErrPortfolioImageReq
	}
	if u.uploads == nil {
		return entities.Portfolio{}, ErrUploadsNotConfigured
	}

	res, err := u.uploads.UploadImage(ctx, in.ImageFile, in.ImageFilename)
	if err != nil {
		log.Printf("[portfolio][usecase] image upload failed title=%q err=%v", title, err)
		return entities.Portfolio{}, err
	}

	now := time.Now().UTC()
	p := entities.Portfolio{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		ImageURL:       res.URL,
		ImagePublicKey: res.PublicKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.CreateWithSequence(ctx, p)
	if err != nil {
		// The entry was never inserted; clean up the freshly uploaded image.
		if delErr := u.uploads.DeleteByKey(ctx, res.PublicKey); delErr != nil {
			log.Printf("[portfolio][usecase] orphan image cleanup failed key=%s err=%v", res.PublicKey, delErr)
		}
		log.Printf("[portfolio][usecase] create failed title=%q err=%v", title, err)
		return entities.Portfolio{}, err
	}
	log.Printf("[portfolio][usecase] create success id=%s portfolio_id=%s", created.ID, created.PortfolioID)
	return created, nil
}

func (u *PortfolioUseCase) List(ctx context.Context) ([]entities.Portfolio, error) {
	return u.repo.List(ctx)
}

func (u *PortfolioUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPortfolioID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPortfolioNotFound
	}

	if p.ImagePublicKey != "" && u.uploads != nil {
		if err := u.uploads.DeleteByKey(ctx, p.ImagePublicKey); err != nil {
			log.Printf("[portfolio][usecase] image cleanup failed id=%s key=%s err=%v", p.ID, p.ImagePublicKey, err)
		}
	}
	if err := u.repo.Delete(ctx, p.ID); err != nil {
		log.Printf("[portfolio][usecase] delete failed id=%s err=%v", p.ID, err)
		return err
	}
	log.Printf("[portfolio][usecase] delete success id=%s", p.ID)
	return nil
}
