// Package seed provides helpers to create demo data for development
// environments. Never run against production data.
package seed

import (
	"fmt"
	"time"

	"huddle/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password assigned to every generated account.
const DemoPassword = "demo-password"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	phone := gofakeit.Phone()
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashed),
		Phone:    &phone,
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCommunity constructs and persists a sample community owned by the
// given creator.
func (f *Factory) CreateCommunity(creator *models.User, overrides ...func(*models.Community)) (*models.Community, error) {
	community := &models.Community{
		Name:        fmt.Sprintf("%s-%d", gofakeit.Word(), gofakeit.Number(100, 999)),
		Description: gofakeit.Sentence(8),
		CreatorID:   creator.ID,
	}
	for _, override := range overrides {
		override(community)
	}
	if err := f.db.Create(community).Error; err != nil {
		return nil, err
	}
	return community, nil
}

// CreateMembership enrolls a user into a community.
func (f *Factory) CreateMembership(community *models.Community, user *models.User) error {
	membership := &models.Membership{
		CommunityID: community.ID,
		UserID:      user.ID,
	}
	return f.db.Create(membership).Error
}

// CreatePost constructs and persists a sample post.
func (f *Factory) CreatePost(author *models.User, community *models.Community, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:       gofakeit.Sentence(5),
		Content:     gofakeit.Paragraph(1, 3, 8, "\n"),
		UserID:      author.ID,
		CommunityID: community.ID,
	}
	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment.
func (f *Factory) CreateComment(author *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(10),
		Votes:   gofakeit.Number(-3, 25),
		PostID:  post.ID,
		UserID:  author.ID,
	}
	for _, override := range overrides {
		override(comment)
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
