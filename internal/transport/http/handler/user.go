package handler

import (
	"github.com/gin-gonic/gin"

	"blogapi/internal/app"
	"blogapi/internal/dto"
	"blogapi/internal/pagination"
	"blogapi/internal/transport/http/response"
	"blogapi/internal/validation"
)

type UserHandler struct {
	userService *app.UserService
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	query, ok := bindPagination(c)
	if !ok {
		return
	}

	users, total, err := h.userService.List(query)
	if err != nil {
		response.BusinessError(c, err)
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, dto.NewUserResponse(user))
	}
	response.Paginated(c, items, pagination.NewMeta(total, query))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		response.BusinessError(c, err)
		return
	}
	response.OK(c, dto.NewUserResponse(*user))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	if violations := validation.Check(req); len(violations) > 0 {
		response.ValidationFailed(c, violations)
		return
	}

	user, err := h.userService.Create(req)
	if err != nil {
		response.BusinessError(c, err)
		return
	}
	response.Created(c, dto.NewUserResponse(*user))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}
	if violations := validation.Check(req); len(violations) > 0 {
		response.ValidationFailed(c, violations)
		return
	}

	user, err := h.userService.Update(id, req)
	if err != nil {
		response.BusinessError(c, err)
		return
	}
	response.OK(c, dto.NewUserResponse(*user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		response.BusinessError(c, err)
		return
	}
	response.NoContent(c)
}
