package handler

import (
	"github.com/gin-gonic/gin"

	"blogapi/internal/app"
	"blogapi/internal/dto"
	"blogapi/internal/pagination"
	"blogapi/internal/transport/http/response"
	"blogapi/internal/validation"
)

type PostHandler struct {
	postService *app.PostService
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) List(c *gin.Context) {
	query, ok := bindPagination(c)
	if !ok {
		return
	}

	posts, total, err := h.postService.List(query)
	if err != nil {
		response.BusinessError(c, err)
		return
	}

	items := make([]dto.PostListItemResponse, 0, len(posts))
	for _, pwa := range posts {
		items = append(items, dto.NewPostListItemResponse(pwa.Post, pwa.Author))
	}
	response.Paginated(c, items, pagination.NewMeta(total, query))
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.postService.Get(id)
	if err != nil {
		response.BusinessError(c, err)
		return
	}
	response.OK(c, dto.NewPostResponse(result.Post, result.Author))
}

func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	if violations := validation.Check(req); len(violations) > 0 {
		response.ValidationFailed(c, violations)
		return
	}

	result, err := h.postService.Create(req)
	if err != nil {
		response.BusinessError(c, err)
		return
	}
	response.Created(c, dto.NewPostResponse(result.Post, result.Author))
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	if violations := validation.Check(req); len(violations) > 0 {
		response.ValidationFailed(c, violations)
		return
	}

	result, err := h.postService.Update(id, req)
	if err != nil {
		response.BusinessError(c, err)
		return
	}
	response.OK(c, dto.NewPostResponse(result.Post, result.Author))
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(id); err != nil {
		response.BusinessError(c, err)
		return
	}
	response.NoContent(c)
}
