package dto

import (
	"time"

	"blogapi/internal/model"
)

// excerptLen caps the content projected into list items.
const excerptLen = 100

type CreateTagDto struct {
	Name  string  `json:"name" validate:"required,min=1,max=50"`
	Color *string `json:"color" validate:"omitempty,max=7"`
}

type CreateSeoMetadataDto struct {
	MetaTitle       *string  `json:"meta_title" validate:"omitempty,max=70"`
	MetaDescription *string  `json:"meta_description" validate:"omitempty,max=160"`
	Keywords        []string `json:"keywords" validate:"omitempty,max=10"`
}

type CreatePostSettingsDto struct {
	AllowComments      bool `json:"allow_comments"`
	Featured           bool `json:"featured"`
	ReadingTimeMinutes *int `json:"reading_time_minutes" validate:"omitempty,min=1,max=60"`
}

type CreatePostMetadataDto struct {
	Tags     []CreateTagDto         `json:"tags" validate:"omitempty,max=10,dive"`
	Seo      *CreateSeoMetadataDto  `json:"seo"`
	Settings *CreatePostSettingsDto `json:"settings"`
}

type CreatePostDto struct {
	Title     string                 `json:"title" validate:"required,min=3,max=255"`
	Content   string                 `json:"content" validate:"required,min=10"`
	AuthorID  uint                   `json:"author_id" validate:"required,min=1"`
	Metadata  *CreatePostMetadataDto `json:"metadata"`
	Published bool                   `json:"published"`
}

// UpdatePostDto applies a partial update. A present metadata field replaces
// the whole stored document; there is no field-level merge.
type UpdatePostDto struct {
	Title     *string                `json:"title" validate:"omitempty,min=3,max=255"`
	Content   *string                `json:"content" validate:"omitempty,min=10"`
	Metadata  *CreatePostMetadataDto `json:"metadata"`
	Published *bool                  `json:"published"`
}

// ToMetadata converts the request document into the stored shape, filling
// absent parts with their defaults. A nil receiver yields the empty document.
func (d *CreatePostMetadataDto) ToMetadata() model.Metadata {
	metadata := model.NewMetadata()
	if d == nil {
		return metadata
	}

	for _, tag := range d.Tags {
		metadata.Tags = append(metadata.Tags, model.Tag{Name: tag.Name, Color: tag.Color})
	}
	if d.Seo != nil {
		keywords := d.Seo.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		metadata.Seo = &model.SeoMetadata{
			MetaTitle:       d.Seo.MetaTitle,
			MetaDescription: d.Seo.MetaDescription,
			Keywords:        keywords,
		}
	}
	if d.Settings != nil {
		metadata.Settings = &model.PostSettings{
			AllowComments:      d.Settings.AllowComments,
			Featured:           d.Settings.Featured,
			ReadingTimeMinutes: d.Settings.ReadingTimeMinutes,
		}
	}
	return metadata
}

type TagResponse struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type SeoMetadataResponse struct {
	MetaTitle       *string  `json:"meta_title"`
	MetaDescription *string  `json:"meta_description"`
	Keywords        []string `json:"keywords"`
}

type PostSettingsResponse struct {
	AllowComments      bool `json:"allow_comments"`
	Featured           bool `json:"featured"`
	ReadingTimeMinutes *int `json:"reading_time_minutes"`
}

type PostMetadataResponse struct {
	Tags     []TagResponse         `json:"tags"`
	Seo      *SeoMetadataResponse  `json:"seo"`
	Settings *PostSettingsResponse `json:"settings"`
}

// AuthorResponse is the reduced author view embedded in post responses.
type AuthorResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type PostResponse struct {
	ID        uint                 `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Published bool                 `json:"published"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt *time.Time           `json:"updated_at"`
	Author    AuthorResponse       `json:"author"`
	Metadata  PostMetadataResponse `json:"metadata"`
}

// PostListItemResponse is the lighter projection used by collection
// listings: content shortened to an excerpt, metadata reduced to tags.
type PostListItemResponse struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Excerpt   string         `json:"excerpt"`
	Published bool           `json:"published"`
	CreatedAt time.Time      `json:"created_at"`
	Author    AuthorResponse `json:"author"`
	Tags      []TagResponse  `json:"tags"`
}

func NewAuthorResponse(user model.User) AuthorResponse {
	return AuthorResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func NewPostResponse(post model.Post, author model.User) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		Author:    NewAuthorResponse(author),
		Metadata:  newMetadataResponse(post.Metadata),
	}
}

func NewPostListItemResponse(post model.Post, author model.User) PostListItemResponse {
	return PostListItemResponse{
		ID:        post.ID,
		Title:     post.Title,
		Excerpt:   excerpt(post.Content),
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		Author:    NewAuthorResponse(author),
		Tags:      newTagResponses(post.Metadata.Tags),
	}
}

func newMetadataResponse(metadata model.Metadata) PostMetadataResponse {
	response := PostMetadataResponse{Tags: newTagResponses(metadata.Tags)}
	if metadata.Seo != nil {
		keywords := metadata.Seo.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		response.Seo = &SeoMetadataResponse{
			MetaTitle:       metadata.Seo.MetaTitle,
			MetaDescription: metadata.Seo.MetaDescription,
			Keywords:        keywords,
		}
	}
	if metadata.Settings != nil {
		response.Settings = &PostSettingsResponse{
			AllowComments:      metadata.Settings.AllowComments,
			Featured:           metadata.Settings.Featured,
			ReadingTimeMinutes: metadata.Settings.ReadingTimeMinutes,
		}
	}
	return response
}

func newTagResponses(tags []model.Tag) []TagResponse {
	responses := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, TagResponse{Name: tag.Name, Color: tag.Color})
	}
	return responses
}

// excerpt returns the first 100 characters of content, with an ellipsis
// marker when truncated. Counted in runes so multi-byte text never splits.
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLen {
		return content
	}
	return string(runes[:excerptLen]) + "..."
}
