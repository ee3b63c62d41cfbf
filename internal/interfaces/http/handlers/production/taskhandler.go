package production

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"provisio/internal/application/production/usecases"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/errors"
	"provisio/internal/shared/logger"
	"provisio/internal/shared/utils"
)

type TaskHandler struct {
	listTasksUC  *usecases.ListTasksUseCase
	updateTaskUC *usecases.UpdateTaskUseCase
	logger       logger.Interface
}

func NewTaskHandler(
	listTasksUC *usecases.ListTasksUseCase,
	updateTaskUC *usecases.UpdateTaskUseCase,
) *TaskHandler {
	return &TaskHandler{
		listTasksUC:  listTasksUC,
		updateTaskUC: updateTaskUC,
		logger:       logger.NewLogger(),
	}
}

// ListTasks handles GET /api/production-taches?production_id=
func (h *TaskHandler) ListTasks(c *gin.Context) {
	raw := c.Query("production_id")
	productionID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || productionID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("production_id is required"))
		return
	}

	result, err := h.listTasksUC.Execute(c.Request.Context(), usecases.ListTasksQuery{
		ProductionID: uint(productionID),
		Actor:        authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"data": result})
}

// UpdateTask handles PUT /api/production-taches/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update task", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := authorization.ActorFromContext(c)
	result, err := h.updateTaskUC.Execute(c.Request.Context(), req.ToCommand(taskID, actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := gin.H{"data": result.Task}
	if result.StatusComment != nil {
		response["commentaire"] = result.StatusComment
	}
	utils.SuccessResponse(c, http.StatusOK, response)
}
