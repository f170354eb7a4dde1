package models

import "time"

// Transfer objects returned at the API boundary. Entities never leave the
// service layer directly; these flatten foreign keys into the names and
// emails clients actually render.

// Profile is the public shape of a user account.
type Profile struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	AvatarName string    `json:"avatar_name,omitempty"`
	AvatarType string    `json:"avatar_type,omitempty"`
	Avatar     []byte    `json:"avatar,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewProfile maps a User entity to its public shape.
func NewProfile(u *User) *Profile {
	p := &Profile{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		AvatarName: u.AvatarName,
		AvatarType: u.AvatarType,
		Avatar:     u.Avatar,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	return p
}

// CommunityView is the public shape of a community.
type CommunityView struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CreatorName  string    `json:"creator_name"`
	CreatorEmail string    `json:"creator_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewCommunityView maps a Community (with Creator preloaded) to its public shape.
func NewCommunityView(cm *Community) *CommunityView {
	return &CommunityView{
		ID:           cm.ID,
		Name:         cm.Name,
		Description:  cm.Description,
		CreatorName:  cm.Creator.Username,
		CreatorEmail: cm.Creator.Email,
		CreatedAt:    cm.CreatedAt,
	}
}

// NewCommunityViews maps a slice of communities.
func NewCommunityViews(communities []Community) []*CommunityView {
	views := make([]*CommunityView, 0, len(communities))
	for i := range communities {
		views = append(views, NewCommunityView(&communities[i]))
	}
	return views
}

// PostView is the public shape of a post with its author and community
// flattened.
type PostView struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Username      string    `json:"username"`
	UserEmail     string    `json:"user_email"`
	CommunityName string    `json:"community_name"`
	ImageName     string    `json:"image_name,omitempty"`
	ImageType     string    `json:"image_type,omitempty"`
	Image         []byte    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewPostView maps a Post (with User and Community preloaded) to its public shape.
func NewPostView(p *Post) *PostView {
	view := &PostView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Username:  p.User.Username,
		UserEmail: p.User.Email,
		ImageName: p.ImageName,
		ImageType: p.ImageType,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
	if p.Community != nil {
		view.CommunityName = p.Community.Name
	}
	return view
}

// NewPostViews maps a slice of posts.
func NewPostViews(posts []*Post) []*PostView {
	views := make([]*PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, NewPostView(p))
	}
	return views
}

// CommentView is the public shape of a comment.
type CommentView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	PostID    uint      `json:"post_id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Votes     int       `json:"votes"`
	Edited    bool      `json:"edited"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentView maps a Comment (with User preloaded) to its public shape.
func NewCommentView(cm *Comment) *CommentView {
	return &CommentView{
		ID:        cm.ID,
		Content:   cm.Content,
		PostID:    cm.PostID,
		UserID:    cm.UserID,
		Username:  cm.User.Username,
		Votes:     cm.Votes,
		Edited:    cm.Edited,
		CreatedAt: cm.CreatedAt,
	}
}

// NewCommentViews maps a slice of comments.
func NewCommentViews(comments []*Comment) []*CommentView {
	views := make([]*CommentView, 0, len(comments))
	for _, cm := range comments {
		views = append(views, NewCommentView(cm))
	}
	return views
}
