package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tareas/task-lifecycle-api/internal/dto"
	apierrors "github.com/tareas/task-lifecycle-api/internal/errors"
	"github.com/tareas/task-lifecycle-api/internal/middleware"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"github.com/tareas/task-lifecycle-api/internal/services"
	"github.com/tareas/task-lifecycle-api/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a new task assigned to the user named in the body
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
	}, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ListAllTasks returns every task (administrators only)
func (h *TaskHandler) ListAllTasks(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	filter, ok := bindTaskFilter(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListAll(c.Request.Context(), actor, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// ListCreatedByMe returns the tasks the current user created
func (h *TaskHandler) ListCreatedByMe(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	filter, ok := bindTaskFilter(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListCreatedBy(c.Request.Context(), actor.ID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// ListAssignedToMe returns the tasks assigned to the current user
func (h *TaskHandler) ListAssignedToMe(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	filter, ok := bindTaskFilter(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListAssignedTo(c.Request.Context(), actor.ID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateStatus changes the status of a task
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	task, err := h.taskService.UpdateStatus(c.Request.Context(), taskID, req.Status, actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, exists := middleware.GetActor(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, actor); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func bindTaskFilter(c *gin.Context) (services.TaskFilter, bool) {
	var query dto.TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return services.TaskFilter{}, false
	}

	var filter services.TaskFilter
	if query.Status != "" {
		status := models.TaskStatus(query.Status)
		filter.Status = &status
	}
	if query.DueDate != "" {
		day, err := utils.ParseCalendarDate(query.DueDate)
		if err != nil {
			apierrors.BadRequest(c, "Invalid dueDate, expected YYYY-MM-DD")
			return services.TaskFilter{}, false
		}
		filter.DueDate = &day
	}
	return filter, true
}
