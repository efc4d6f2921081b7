package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lyra-coin-backend/internal/common/middleware"
	appstore "lyra-coin-backend/internal/features/appstore/service"
	"lyra-coin-backend/internal/features/tasks/service"
)

type TaskHandler struct {
	controller *service.Controller
}

func NewTaskHandler(controller *service.Controller) *TaskHandler {
	return &TaskHandler{controller: controller}
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup, wrap func(gin.HandlerFunc) gin.HandlerFunc) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", wrap(h.list))
		tasks.POST("/:id/start", wrap(h.start))
		tasks.POST("/:id/claim", wrap(h.claim))
		tasks.DELETE("/:id/countdown", wrap(h.cancel))
	}
}

// @Summary List tasks
// @Description Seeds the catalog on first use and returns tasks grouped by platform with their lifecycle state
// @Tags tasks
// @Produce json
// @Security TelegramInitData
// @Success 200 {object} models.ListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) list(c *gin.Context) {
	resp, err := h.controller.List(c.Request.Context(), middleware.InstallationID(c))
	if err != nil {
		_ = c.Error(appstore.ToAppError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Start a task
// @Description Moves an idle task to completing and starts its countdown. The returned link should be opened by the client.
// @Tags tasks
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Task ID"
// @Success 200 {object} models.StartResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Task completed or already in progress"
// @Router /tasks/{id}/start [post]
func (h *TaskHandler) start(c *gin.Context) {
	resp, err := h.controller.Start(c.Request.Context(), middleware.InstallationID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(appstore.ToAppError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Claim a reward
// @Description Completes a claimable task and credits its reward
// @Tags tasks
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Task ID"
// @Success 200 {object} models.ClaimResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Reward not claimable"
// @Router /tasks/{id}/claim [post]
func (h *TaskHandler) claim(c *gin.Context) {
	resp, err := h.controller.Claim(c.Request.Context(), middleware.InstallationID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(appstore.ToAppError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel a countdown
// @Description Stops a running countdown and returns the task to idle
// @Tags tasks
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Task ID"
// @Success 200 {object} models.TaskView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /tasks/{id}/countdown [delete]
func (h *TaskHandler) cancel(c *gin.Context) {
	resp, err := h.controller.Cancel(c.Request.Context(), middleware.InstallationID(c), c.Param("id"))
	if err != nil {
		_ = c.Error(appstore.ToAppError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}
