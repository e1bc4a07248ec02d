package repository

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taskhive/todo-service/internal/models"
	"github.com/taskhive/todo-service/internal/redis"
)

const (
	userViewKeyPrefix  = "user:view:"
	userEmailKeyPrefix = "user:email:"
)

// UserReadRepository serves user lookups from Redis first, falling back to
// PostgreSQL on a miss. Views are indexed both by id and by email so that
// todo assignee resolution stays cheap; the email index holds the first
// match, consistent with UserRepository.GetByEmail.
type UserReadRepository struct {
	users *UserRepository
	cache *redis.ViewCache[models.User]
}

func NewUserReadRepository(users *UserRepository, redisClient *goredis.Client) *UserReadRepository {
	return &UserReadRepository{
		users: users,
		cache: redis.NewViewCache[models.User](redisClient, 0),
	}
}

// GetByID returns a user from Redis first, then PostgreSQL.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if user, ok := r.cache.Get(ctx, userViewKeyPrefix+id); ok {
		return user, nil
	}
	user, err := r.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, userViewKeyPrefix+id, user)
	return user, nil
}

// GetByEmail returns the first user for the given email, Redis first.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := r.cache.Get(ctx, userEmailKeyPrefix+email); ok {
		return user, nil
	}
	user, err := r.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, userEmailKeyPrefix+email, user)
	r.cache.Set(ctx, userViewKeyPrefix+user.ID, user)
	return user, nil
}

// CacheUser refreshes the id entry and drops the email entry for a user.
// Called by the service after every mutation so renames are visible on the
// next read. The email entry is invalidated rather than overwritten because
// email is not unique: only GetByEmail may populate it, with the store's
// first match.
func (r *UserReadRepository) CacheUser(ctx context.Context, user *models.User) {
	r.cache.Set(ctx, userViewKeyPrefix+user.ID, user)
	r.cache.Delete(ctx, userEmailKeyPrefix+user.Email)
}

// InvalidateUser removes both index entries for a deleted user.
func (r *UserReadRepository) InvalidateUser(ctx context.Context, user *models.User) {
	r.cache.Delete(ctx, userViewKeyPrefix+user.ID, userEmailKeyPrefix+user.Email)
}
