package seed

import (
	"fmt"

	"huddle/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configures the demo seeder.
type Options struct {
	NumUsers       int
	NumCommunities int
	PostsPerUser   int
}

// DefaultOptions returns a small demo data set suitable for local
// development.
func DefaultOptions() Options {
	return Options{
		NumUsers:       8,
		NumCommunities: 3,
		PostsPerUser:   2,
	}
}

// Demo populates the database with a connected set of users, communities,
// memberships, posts and comments. Idempotence is coarse: seeding is
// skipped entirely when any user already exists.
func Demo(db *gorm.DB, opts Options) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return nil
	}

	communities := make([]*models.Community, 0, opts.NumCommunities)
	for i := 0; i < opts.NumCommunities; i++ {
		creator := users[i%len(users)]
		community, err := f.CreateCommunity(creator)
		if err != nil {
			return fmt.Errorf("seed community: %w", err)
		}
		communities = append(communities, community)
	}
	if len(communities) == 0 {
		return nil
	}

	for _, user := range users {
		community := communities[gofakeit.Number(0, len(communities)-1)]
		if err := f.CreateMembership(community, user); err != nil {
			return fmt.Errorf("seed membership: %w", err)
		}

		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(user, community)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			commenter := users[gofakeit.Number(0, len(users)-1)]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	return nil
}
