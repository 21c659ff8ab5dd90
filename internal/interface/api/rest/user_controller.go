package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-records-api/internal/application/ports"
	domain "user-records-api/internal/domain/user"
	"user-records-api/internal/interface/api/rest/dto/user"
	"user-records-api/internal/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.POST(RouteUsers, uc.CreateUserHandler)
	r.GET(RouteUsers, uc.GetUsersHandler)
	r.DELETE(RouteUsers, uc.DeleteUserHandler)
	r.PATCH(RouteUsers, uc.UpdateUsersHandler)
	r.POST(RouteUserDeactivate, uc.DeactivateUserHandler)

	return uc
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), body)
	if err != nil {
		uc.respondError(c, "create user", err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

// GetUsersHandler accepts zero or one of the user_id, mob_num and
// manager_id query selectors; when several are supplied the service
// resolves them by fixed precedence in that order.
func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context(), querySelectors(c, "user_id", "mob_num", "manager_id"))
	if err != nil {
		uc.respondError(c, "get users", err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	_, err := uc.userService.DeleteUser(c.Request.Context(), querySelectors(c, "user_id", "mob_num"))
	if err != nil {
		uc.respondError(c, "delete user", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) UpdateUsersHandler(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	updated, err := uc.userService.UpdateUsers(c.Request.Context(), body)
	if err != nil {
		uc.respondError(c, "update users", err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(updated),
	})
}

func (uc *UserController) DeactivateUserHandler(c *gin.Context) {
	userID, ok := validator.UUIDv4(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID v4"},
		)
		return
	}

	u, err := uc.userService.DeactivateUser(c.Request.Context(), userID)
	if err != nil {
		uc.respondError(c, "deactivate user", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

// respondError maps the typed failures of the core to transport status
// signals; anything unexpected is logged and reported generically.
func (uc *UserController) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrManagerNotFound),
		errors.Is(err, domain.ErrManagerInactive):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateActiveMobile),
		errors.Is(err, domain.ErrAmbiguousMobile):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to " + op},
		)
		uc.logger.Error(op+" error", zap.Error(err))
	}
}

func querySelectors(c *gin.Context, keys ...string) map[string]any {
	body := make(map[string]any, len(keys))
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			body[k] = v
		}
	}

	return body
}
