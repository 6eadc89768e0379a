package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/avc/drop-service/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxCheckSize предел размера изображения чека
const MaxCheckSize = 10 << 20

type ChecksHandler struct {
	checkService domain.CheckService
	logger       *zap.Logger
}

func NewChecksHandler(checkService domain.CheckService, logger *zap.Logger) *ChecksHandler {
	return &ChecksHandler{
		checkService: checkService,
		logger:       logger,
	}
}

// SubmitCheck принимает multipart-форму: файл image и необязательные
// поля deal_id или requisite_id
func (h *ChecksHandler) SubmitCheck(w http.ResponseWriter, r *http.Request) {
	sess, ok := GetSession(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxCheckSize+1<<20)
	if err := r.ParseMultipartForm(MaxCheckSize); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, MaxCheckSize+1))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if len(image) > MaxCheckSize {
		http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
		return
	}

	checkContext, ok := parseCheckContext(r)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	check, err := h.checkService.SubmitCheck(r.Context(), sess, domain.SubmitCheckInput{
		Image:    image,
		FileName: header.Filename,
		Context:  checkContext,
	})
	if err != nil {
		writeError(w, h.logger, "failed to submit check", err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, check)
}

func parseCheckContext(r *http.Request) (domain.CheckContext, bool) {
	var checkContext domain.CheckContext

	dealID, ok := optionalUUID(r.FormValue("deal_id"))
	if !ok {
		return checkContext, false
	}
	requisiteID, ok := optionalUUID(r.FormValue("requisite_id"))
	if !ok {
		return checkContext, false
	}

	checkContext.DealID = dealID
	checkContext.RequisiteID = requisiteID
	return checkContext, true
}

func optionalUUID(value string) (*uuid.UUID, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, true
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, false
	}
	return &id, true
}
