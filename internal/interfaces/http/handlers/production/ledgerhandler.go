package production

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provisio/internal/application/production/usecases"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/logger"
	"provisio/internal/shared/utils"
)

// LedgerHandler serves the per-task comment and attachment endpoints.
type LedgerHandler struct {
	addCommentUC   *usecases.AddCommentUseCase
	listCommentsUC *usecases.ListCommentsUseCase
	uploadFileUC   *usecases.UploadFileUseCase
	deleteFileUC   *usecases.DeleteFileUseCase
	listFilesUC    *usecases.ListFilesUseCase
	getFileUC      *usecases.GetFileUseCase
	logger         logger.Interface
}

func NewLedgerHandler(
	addCommentUC *usecases.AddCommentUseCase,
	listCommentsUC *usecases.ListCommentsUseCase,
	uploadFileUC *usecases.UploadFileUseCase,
	deleteFileUC *usecases.DeleteFileUseCase,
	listFilesUC *usecases.ListFilesUseCase,
	getFileUC *usecases.GetFileUseCase,
) *LedgerHandler {
	return &LedgerHandler{
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		uploadFileUC:   uploadFileUC,
		deleteFileUC:   deleteFileUC,
		listFilesUC:    listFilesUC,
		getFileUC:      getFileUC,
		logger:         logger.NewLogger(),
	}
}

// ListComments handles GET /api/production-tache-commentaires?production_tache_id=
func (h *LedgerHandler) ListComments(c *gin.Context) {
	taskID, err := parseTaskScope(c, 0)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"data": result})
}

// AddComment handles POST /api/production-tache-commentaires
func (h *LedgerHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	taskID, err := parseTaskScope(c, req.ProductionTacheID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TaskID: taskID,
		Body:   req.Contenu,
		Actor:  authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListFiles handles GET /api/production-tache-fichiers?production_tache_id=
func (h *LedgerHandler) ListFiles(c *gin.Context) {
	taskID, err := parseTaskScope(c, 0)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listFilesUC.Execute(c.Request.Context(), usecases.ListFilesQuery{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"data": result})
}

// UploadFile handles POST /api/production-tache-fichiers
func (h *LedgerHandler) UploadFile(c *gin.Context) {
	var req UploadFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for upload file", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	taskID, err := parseTaskScope(c, req.ProductionTacheID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uploadFileUC.Execute(c.Request.Context(), usecases.UploadFileCommand{
		TaskID:   taskID,
		FileName: req.NomFichier,
		MimeType: req.TypeMime,
		Content:  req.Contenu,
		Actor:    authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// GetFile handles GET /api/production-tache-fichiers/:id
func (h *LedgerHandler) GetFile(c *gin.Context) {
	fileID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getFileUC.Execute(c.Request.Context(), usecases.GetFileQuery{FileID: fileID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteFile handles DELETE /api/production-tache-fichiers/:id
func (h *LedgerHandler) DeleteFile(c *gin.Context) {
	fileID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteFileUC.Execute(c.Request.Context(), usecases.DeleteFileCommand{
		FileID: fileID,
		Actor:  authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"commentaire": result})
}
