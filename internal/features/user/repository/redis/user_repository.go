package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"lyra-coin-backend/internal/features/user/models"
	"lyra-coin-backend/internal/features/user/repository"
)

type userRepository struct {
	client redis.Cmdable
}

func NewUserRepository(client redis.Cmdable) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, userKey(user.ID), userJSON, 0).Err()
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	userJSON, err := r.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
