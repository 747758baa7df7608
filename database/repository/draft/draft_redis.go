package draftRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"consultly/models"
	"consultly/utils"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound is returned when a draft is missing or expired.
var ErrNotFound = errors.New("booking draft not found")

// DraftRepository stores in-progress booking drafts.
type DraftRepository interface {
	Save(ctx context.Context, draft *models.BookingDraft) error
	Get(ctx context.Context, id string) (*models.BookingDraft, error)
	Delete(ctx context.Context, id string) error
}

// RedisDraftRepo keeps drafts as JSON values that expire after ttl.
type RedisDraftRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftRepo(client *redis.Client, ttl time.Duration) *RedisDraftRepo {
	return &RedisDraftRepo{client: client, ttl: ttl}
}

func draftKey(id string) string {
	return utils.DraftPrefix + id
}

// Save writes the draft and refreshes its TTL.
func (r *RedisDraftRepo) Save(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := r.client.Set(ctx, draftKey(draft.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft %s: %w", draft.ID, err)
	}
	return nil
}

func (r *RedisDraftRepo) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	data, err := r.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load draft %s: %w", id, err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft %s: %w", id, err)
	}
	return &draft, nil
}

func (r *RedisDraftRepo) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, draftKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
