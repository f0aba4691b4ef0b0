package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/todo-service/internal/app"
	"github.com/jsamuelsen/todo-service/internal/platform/logging"
)

// Generic messages for unexpected todo failures.
const (
	msgFetchTodosFailed = "Failed to fetch todos"
	msgCreateTodoFailed = "Failed to create todo"
	msgUpdateTodoFailed = "Failed to update todo"
	msgDeleteTodoFailed = "Failed to delete todo"
)

// TodoHandler handles todo endpoints.
type TodoHandler struct {
	service *app.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(service *app.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// ListTodos handles GET /api/todos.
//
// @Summary List all todos, newest first
// @Tags todos
// @Produce json
// @Success 200 {array} dto.TodoResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/todos [get]
func (h *TodoHandler) ListTodos(c *gin.Context) {
	todos, err := h.service.ListTodos(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err, msgFetchTodosFailed)
		return
	}

	c.JSON(http.StatusOK, dto.NewTodoResponses(todos))
}

// CreateTodo handles POST /api/todos.
//
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Success 201 {object} dto.TodoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/todos [post]
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err, msgCreateTodoFailed)
		return
	}

	todo, err := h.service.CreateTodo(c.Request.Context(), req.Text)
	if err != nil {
		dto.HandleError(c, err, msgCreateTodoFailed)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTodoResponse(todo))
}

// UpdateTodo handles PATCH /api/todos/:id.
//
// @Summary Change a todo's text and/or completion
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/todos/{id} [patch]
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	var param dto.TodoIDParam
	if err := dto.BindURIAndValidate(c, &param); err != nil {
		dto.HandleError(c, err, msgUpdateTodoFailed)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		dto.HandleError(c, bindingErr(err), msgUpdateTodoFailed)
		return
	}

	patch, err := dto.DecodeTodoPatch(body)
	if err != nil {
		dto.HandleError(c, err, msgUpdateTodoFailed)
		return
	}

	ctx := logging.WithTodoID(c.Request.Context(), param.ID)

	todo, err := h.service.UpdateTodo(ctx, param.ID, patch)
	if err != nil {
		dto.HandleError(c, err, msgUpdateTodoFailed)
		return
	}

	c.JSON(http.StatusOK, dto.NewTodoResponse(todo))
}

// DeleteTodo handles DELETE /api/todos/:id.
//
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.DeleteTodoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	var param dto.TodoIDParam
	if err := dto.BindURIAndValidate(c, &param); err != nil {
		dto.HandleError(c, err, msgDeleteTodoFailed)
		return
	}

	ctx := logging.WithTodoID(c.Request.Context(), param.ID)

	if err := h.service.DeleteTodo(ctx, param.ID); err != nil {
		dto.HandleError(c, err, msgDeleteTodoFailed)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTodoResponse{Message: dto.MessageTodoDeleted, ID: param.ID})
}

// RegisterTodoRoutes registers todo routes on rg.
func (h *TodoHandler) RegisterTodoRoutes(rg *gin.RouterGroup) {
	todos := rg.Group("/todos")
	todos.GET("", h.ListTodos)
	todos.POST("", h.CreateTodo)
	todos.PATCH("/:id", h.UpdateTodo)
	todos.DELETE("/:id", h.DeleteTodo)
}

func bindingErr(err error) error {
	return fmt.Errorf("%w: reading body: %w", dto.ErrBinding, err)
}
