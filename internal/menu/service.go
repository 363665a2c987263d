package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("menu item not found")
	ErrValidation = errors.New("invalid menu item")
	ErrUpload     = errors.New("image upload failed")
)

// Storage hosts item images and returns a public URL.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

func validateItem(item *Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(item.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, item.Category)
	}
	return nil
}

// ListAll returns every item, active or not (admin view).
func (s *Service) ListAll(ctx context.Context) ([]Item, error) {
	return s.repo.ListAll(ctx)
}

// ListActive returns customer-visible items partitioned by category.
func (s *Service) ListActive(ctx context.Context) (map[Category][]Item, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(items), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, item *Item) (*Item, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, item *Item) (*Item, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	item.ID = id
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ToggleActive flips customer visibility and leaves every other field alone.
func (s *Service) ToggleActive(ctx context.Context, id string) (bool, error) {
	return s.repo.ToggleActive(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// --------------------------------------------------
// Image upload (runs BEFORE create/update; the catalog
// itself never stores image bytes)
// --------------------------------------------------
func (s *Service) UploadImage(
	ctx context.Context,
	file multipart.File,
	filename string,
) (string, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", fmt.Errorf("%w: file extension missing", ErrUpload)
	}

	key := fmt.Sprintf("menu/%s%s", uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return url, nil
}
