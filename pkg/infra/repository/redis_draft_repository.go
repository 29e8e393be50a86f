package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/teatime-labs/moodgate/pkg/domain"
	"github.com/teatime-labs/moodgate/pkg/domain/draft"
)

const (
	DraftKeyPattern     = "draft:%s"
	DetectingKeyPattern = "draft:%s:detecting"
)

type DraftRepositoryOpts struct {
	DraftTTL time.Duration
	LockTTL  time.Duration
}

type redisDraftRepository struct {
	client   *redis.Client
	draftTTL time.Duration
	lockTTL  time.Duration
}

func NewRedisDraftRepository(client *redis.Client, opts DraftRepositoryOpts) draft.Repository {
	if opts.DraftTTL <= 0 {
		opts.DraftTTL = 24 * time.Hour
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = 2 * time.Minute
	}
	return &redisDraftRepository{
		client:   client,
		draftTTL: opts.DraftTTL,
		lockTTL:  opts.LockTTL,
	}
}

func (r *redisDraftRepository) Save(ctx context.Context, d *draft.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	return r.client.Set(ctx, fmt.Sprintf(DraftKeyPattern, d.ID), payload, r.draftTTL).Err()
}

func (r *redisDraftRepository) Get(ctx context.Context, id uuid.UUID) (*draft.Draft, error) {
	raw, err := r.client.Get(ctx, fmt.Sprintf(DraftKeyPattern, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.NewNotFoundError("draft", id)
		}
		return nil, err
	}
	d := new(draft.Draft)
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return d, nil
}

func (r *redisDraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, fmt.Sprintf(DraftKeyPattern, id), fmt.Sprintf(DetectingKeyPattern, id)).Err()
}

// AcquireDetection takes the per-draft lock with SETNX. The lock expires on
// its own if the holder dies mid-call.
func (r *redisDraftRepository) AcquireDetection(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.SetNX(ctx, fmt.Sprintf(DetectingKeyPattern, id), "1", r.lockTTL).Result()
}

func (r *redisDraftRepository) ReleaseDetection(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, fmt.Sprintf(DetectingKeyPattern, id)).Err()
}

func (r *redisDraftRepository) IsDetecting(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.client.Exists(ctx, fmt.Sprintf(DetectingKeyPattern, id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
