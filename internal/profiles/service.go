// Package profiles stores account profile records in the shared KV
// blob store, one JSON blob mapping user id to profile.
package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shilpokotha/shilpokotha-backend/pkg/errors"
	"github.com/shilpokotha/shilpokotha-backend/pkg/keyedmutex"
	"github.com/shilpokotha/shilpokotha-backend/pkg/kvstore"
	"github.com/shilpokotha/shilpokotha-backend/pkg/types"
)

// Profile is one user's account profile.
type Profile struct {
	Email       string        `json:"email"`
	DisplayName string        `json:"display_name"`
	PhoneNumber string        `json:"phone_number"`
	Address     types.Address `json:"address"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// UpdateInput holds optional profile mutations. Nil fields are left
// untouched, matching the merge semantics of the storefront settings
// form.
type UpdateInput struct {
	DisplayName *string
	PhoneNumber *string
	Address     *types.Address
}

// Service exposes profile operations.
type Service interface {
	Get(ctx context.Context, userID string) (Profile, error)
	Save(ctx context.Context, userID string, profile Profile) (Profile, error)
	Update(ctx context.Context, userID string, input UpdateInput) (Profile, error)
}

type service struct {
	kv    kvstore.Store
	locks *keyedmutex.KeyedMutex
	now   func() time.Time
}

// NewService wires the profile service.
func NewService(kv kvstore.Store) (Service, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv store is required")
	}
	return &service{
		kv:    kv,
		locks: keyedmutex.New(),
		now:   time.Now,
	}, nil
}

// Get returns the stored profile, or NotFound when the user has never
// saved one.
func (s *service) Get(ctx context.Context, userID string) (Profile, error) {
	if userID == "" {
		return Profile{}, errors.New(errors.CodeNotLoggedIn, "login required")
	}

	profiles, err := s.readBlob(ctx)
	if err != nil {
		return Profile{}, err
	}

	profile, ok := profiles[userID]
	if !ok {
		return Profile{}, errors.New(errors.CodeNotFound, "profile not found")
	}
	return profile, nil
}

// Save upserts the whole profile record.
func (s *service) Save(ctx context.Context, userID string, profile Profile) (Profile, error) {
	if userID == "" {
		return Profile{}, errors.New(errors.CodeNotLoggedIn, "login required")
	}

	return s.mutate(ctx, userID, func(existing *Profile, found bool) {
		created := existing.CreatedAt
		if !found {
			created = s.now().UTC()
		}
		*existing = profile
		existing.CreatedAt = created
		existing.UpdatedAt = s.now().UTC()
	})
}

// Update merges the provided fields into the stored profile. A user
// with no stored profile yet gets one created from the input.
func (s *service) Update(ctx context.Context, userID string, input UpdateInput) (Profile, error) {
	if userID == "" {
		return Profile{}, errors.New(errors.CodeNotLoggedIn, "login required")
	}

	return s.mutate(ctx, userID, func(existing *Profile, found bool) {
		if !found {
			existing.CreatedAt = s.now().UTC()
		}
		if input.DisplayName != nil {
			existing.DisplayName = *input.DisplayName
		}
		if input.PhoneNumber != nil {
			existing.PhoneNumber = *input.PhoneNumber
		}
		if input.Address != nil {
			existing.Address = *input.Address
		}
		existing.UpdatedAt = s.now().UTC()
	})
}

func (s *service) mutate(ctx context.Context, userID string, apply func(*Profile, bool)) (Profile, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	profiles, err := s.readBlob(ctx)
	if err != nil {
		return Profile{}, err
	}

	current, found := profiles[userID]
	apply(&current, found)
	profiles[userID] = current

	if err := s.writeBlob(ctx, profiles); err != nil {
		return Profile{}, err
	}
	return current, nil
}

func (s *service) readBlob(ctx context.Context) (map[string]Profile, error) {
	raw, err := s.kv.Get(ctx, kvstore.ProfilesKey())
	if err != nil {
		if err == kvstore.ErrNotFound {
			return map[string]Profile{}, nil
		}
		return nil, errors.Wrap(errors.CodeStorageRead, err, "reading profiles blob")
	}

	profiles := map[string]Profile{}
	if err := json.Unmarshal([]byte(raw), &profiles); err != nil {
		return nil, errors.Wrap(errors.CodeStorageRead, err, "decoding profiles blob")
	}
	return profiles, nil
}

func (s *service) writeBlob(ctx context.Context, profiles map[string]Profile) error {
	raw, err := json.Marshal(profiles)
	if err != nil {
		return errors.Wrap(errors.CodeStorageWrite, err, "encoding profiles blob")
	}
	if err := s.kv.Set(ctx, kvstore.ProfilesKey(), string(raw)); err != nil {
		return errors.Wrap(errors.CodeStorageWrite, err, "writing profiles blob")
	}
	return nil
}
