package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/avc/drop-service/internal/domain"
	"github.com/avc/drop-service/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultCheckExt расширение, если у файла его нет
const defaultCheckExt = "jpg"

// Типы привязки чека
const (
	bindingDeal       = "deal"
	bindingRequisite  = "requisite"
	bindingStandalone = "standalone"
)

// DealAdvancer переводит сделку в check_sent
type DealAdvancer interface {
	AdvanceOnCheck(ctx context.Context, dealID uuid.UUID) (*domain.Deal, error)
}

// CheckService реализует domain.CheckService
type CheckService struct {
	dealRepo    domain.DealRepository
	checkRepo   domain.CheckRepository
	catalogRepo domain.CatalogRepository
	blobs       domain.BlobStore
	advancer    DealAdvancer
	metrics     *metrics.DealMetrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewCheckService создает новый CheckService
func NewCheckService(
	dealRepo domain.DealRepository,
	checkRepo domain.CheckRepository,
	catalogRepo domain.CatalogRepository,
	blobs domain.BlobStore,
	advancer DealAdvancer,
	dealMetrics *metrics.DealMetrics,
	logger *zap.Logger,
) *CheckService {
	return &CheckService{
		dealRepo:    dealRepo,
		checkRepo:   checkRepo,
		catalogRepo: catalogRepo,
		blobs:       blobs,
		advancer:    advancer,
		metrics:     dealMetrics,
		logger:      logger,
		now:         time.Now,
	}
}

// SubmitCheck сохраняет изображение чека, создает запись и,
// если чек привязан к сделке, переводит ее в check_sent.
// Сохранение чека и перевод статуса не атомарны: недошедший перевод
// догоняет фоновый воркер.
func (s *CheckService) SubmitCheck(ctx context.Context, sess *domain.Session, in domain.SubmitCheckInput) (*domain.Check, error) {
	binding, err := validateCheckInput(in)
	if err != nil {
		return nil, err
	}

	if in.Context.DealID != nil {
		if err := s.ensureDealPayable(ctx, sess, *in.Context.DealID); err != nil {
			return nil, err
		}
	}
	if in.Context.RequisiteID != nil {
		if err := s.ensureRequisiteExists(ctx, *in.Context.RequisiteID); err != nil {
			return nil, err
		}
	}

	blobPath := CheckBlobPath(sess.TelegramID, in.FileName, s.now())
	fileID, err := s.blobs.Put(ctx, blobPath, in.Image)
	if err != nil {
		var storageErr *domain.StorageError
		if errors.As(err, &storageErr) {
			return nil, err
		}
		return nil, &domain.StorageError{Op: "put " + blobPath, Err: err}
	}

	check, err := s.checkRepo.CreateCheck(ctx, &domain.Check{
		UserID:      sess.User.ID,
		TelegramID:  sess.TelegramID,
		FileID:      fileID,
		DealID:      in.Context.DealID,
		RequisiteID: in.Context.RequisiteID,
	})
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("check service: failed to create check for user %d: %w", sess.TelegramID, err)
	}

	s.metrics.RecordCheckSubmitted(binding)
	s.logger.Info("check submitted",
		zap.String("check_id", check.ID.String()),
		zap.String("binding", binding),
		zap.Int64("telegram_id", sess.TelegramID),
	)

	if check.DealID != nil {
		if _, err := s.advancer.AdvanceOnCheck(ctx, *check.DealID); err != nil {
			s.logger.Warn("failed to advance deal after check, left to reconciler",
				zap.String("deal_id", check.DealID.String()),
				zap.Error(err),
			)
		}
	}

	return check, nil
}

// ensureDealPayable проверяет, что сделка принадлежит заявителю и уже взята мерчантом
func (s *CheckService) ensureDealPayable(ctx context.Context, sess *domain.Session, dealID uuid.UUID) error {
	deal, err := s.dealRepo.GetDealByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			return domain.ErrDealNotFound
		}
		return fmt.Errorf("check service: failed to get deal %s: %w", dealID, err)
	}

	if deal.UserTelegramID != sess.TelegramID {
		return domain.ErrDealNotFound
	}
	if deal.Status == domain.DealStatusPendingMerchants {
		return domain.NewValidationError("deal_id", "deal is not claimed yet")
	}

	return nil
}

// ensureRequisiteExists не дает сохранить файл чека к несуществующему реквизиту
func (s *CheckService) ensureRequisiteExists(ctx context.Context, requisiteID uuid.UUID) error {
	if _, err := s.catalogRepo.GetRequisiteByID(ctx, requisiteID); err != nil {
		if errors.Is(err, domain.ErrRequisiteNotFound) {
			return domain.ErrRequisiteNotFound
		}
		return fmt.Errorf("check service: failed to get requisite %s: %w", requisiteID, err)
	}
	return nil
}

func validateCheckInput(in domain.SubmitCheckInput) (string, error) {
	if in.Context.DealID != nil && in.Context.RequisiteID != nil {
		return "", domain.NewValidationError("context", "deal and requisite are mutually exclusive")
	}
	if len(in.Image) == 0 {
		return "", domain.NewValidationError("image", "empty file")
	}
	if contentType := http.DetectContentType(in.Image); !strings.HasPrefix(contentType, "image/") {
		return "", domain.NewValidationError("image", "unsupported content type "+contentType)
	}

	switch {
	case in.Context.DealID != nil:
		return bindingDeal, nil
	case in.Context.RequisiteID != nil:
		return bindingRequisite, nil
	}
	return bindingStandalone, nil
}

// CheckBlobPath строит путь изображения чека: <telegram_id>/<unix nanos>-<uuid>.<ext>
func CheckBlobPath(telegramID int64, fileName string, now time.Time) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(fileName)), ".")
	if ext == "" {
		ext = defaultCheckExt
	}

	return fmt.Sprintf("%d/%d-%s.%s", telegramID, now.UnixNano(), uuid.NewString(), ext)
}
