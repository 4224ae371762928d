//go:generate mockery --name VocabularyService --output ./mocks --outpkg mocks --structname MockVocabularyService --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_kanji_srs/internal/config"
	"go_5_kanji_srs/internal/middleware"
	"go_5_kanji_srs/internal/model"
	"go_5_kanji_srs/internal/repository"

	"gorm.io/gorm"
)

// VocabularyService インターフェース
type VocabularyService interface {
	RegisterVocabulary(ctx context.Context, req *model.RegisterVocabularyRequest) (*model.Vocabulary, bool, error)
	GetVocabulary(ctx context.Context, vocabID uint) (*model.Vocabulary, error)
	SearchVocabulary(ctx context.Context, query string) ([]*model.Vocabulary, error)
	ListVocabularyByStatus(ctx context.Context, status string, limit int) ([]*model.Vocabulary, error)
	UpdateVocabularyStatus(ctx context.Context, vocabID uint, status string) (*model.Vocabulary, error)
	DeleteVocabulary(ctx context.Context, vocabID uint) error
}

type vocabularyService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
	cfg       *config.Config
}

func NewVocabularyService(db *gorm.DB, vocabRepo repository.VocabularyRepository, cfg *config.Config) VocabularyService {
	return &vocabularyService{
		db:        db,
		vocabRepo: vocabRepo,
		cfg:       cfg,
	}
}

// RegisterVocabulary は初出なら行を作成し、既出なら遭遇回数を加算します。
// 戻り値のboolは新規作成ならtrue。
// 語彙は通常運用では物理削除しない（ステータスによるソフトライフサイクル）
func (s *vocabularyService) RegisterVocabulary(ctx context.Context, req *model.RegisterVocabularyRequest) (*model.Vocabulary, bool, error) {
	logger := middleware.GetLogger(ctx).With("word", req.Word)

	var vocab *model.Vocabulary
	created := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.vocabRepo.FindByWord(ctx, tx, req.Word)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding vocabulary by word in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "語彙の確認中にエラーが発生しました。", "", err)
		}

		now := time.Now()
		if existing != nil {
			// --- 再遭遇 ---
			if encErr := s.vocabRepo.RecordEncounter(ctx, tx, existing.VocabID, now); encErr != nil {
				logger.Error("Error recording encounter in transaction", "error", encErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "遭遇回数の更新に失敗しました。", "", encErr)
			}
			reloaded, findErr := s.vocabRepo.FindByID(ctx, tx, existing.VocabID)
			if findErr != nil {
				logger.Error("Error reloading vocabulary in transaction", "error", findErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "語彙の取得に失敗しました。", "", findErr)
			}
			vocab = reloaded
			return nil
		}

		// --- 初出 ---
		created = true
		newVocab := &model.Vocabulary{
			Word:           req.Word,
			Reading:        req.Reading,
			Romaji:         req.Romaji,
			Meaning:        req.Meaning,
			PartOfSpeech:   req.PartOfSpeech,
			JLPTLevel:      req.JLPTLevel,
			StudyStatus:    model.StatusNew,
			EncounterCount: 1,
			LastSeenAt:     now,
		}
		if createErr := s.vocabRepo.Create(ctx, tx, newVocab); createErr != nil {
			logger.Error("Error creating vocabulary in transaction", "error", createErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "語彙の登録に失敗しました。", "", createErr)
		}
		vocab = newVocab
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	logger.Info("Vocabulary registered", "vocab_id", vocab.VocabID, "created", created)
	return vocab, created, nil
}

func (s *vocabularyService) GetVocabulary(ctx context.Context, vocabID uint) (*model.Vocabulary, error) {
	vocab, err := s.vocabRepo.FindByID(ctx, s.db, vocabID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", fmt.Sprintf("vocabulary id %d not found", vocabID), "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "語彙の取得に失敗しました。", "", err)
	}
	return vocab, nil
}

// SearchVocabulary は表記・読み・意味の部分一致検索です。
// 上限は設定値（既定50件）でキャップする
func (s *vocabularyService) SearchVocabulary(ctx context.Context, query string) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx).With("query", query)

	vocabs, err := s.vocabRepo.Search(ctx, s.db, query, s.cfg.App.SearchLimit)
	if err != nil {
		logger.Error("Failed to search vocabulary from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "語彙の検索に失敗しました。", "", err)
	}

	logger.Info("Successfully searched vocabulary", "count", len(vocabs))
	return vocabs, nil
}

// ListVocabularyByStatus はステータス別一覧を返します。limitは設定の上限でキャップ
func (s *vocabularyService) ListVocabularyByStatus(ctx context.Context, status string, limit int) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx).With("status", status)

	st := model.StudyStatus(status)
	if !st.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("invalid status %q: must be one of new, learning, reviewing, mastered, suspended", status), "status", model.ErrInvalidInput)
	}

	if limit <= 0 || limit > s.cfg.App.ListLimit {
		limit = s.cfg.App.ListLimit
	}

	vocabs, err := s.vocabRepo.ListByStatus(ctx, s.db, st, limit)
	if err != nil {
		logger.Error("Failed to list vocabulary from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "語彙一覧の取得に失敗しました。", "", err)
	}

	return vocabs, nil
}

// UpdateVocabularyStatus はステータス遷移を行い、更新後の行を返します。
// 無効な値は変更なしで失敗。0行更新はNOT_FOUNDとして報告する
func (s *vocabularyService) UpdateVocabularyStatus(ctx context.Context, vocabID uint, status string) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx).With("vocab_id", vocabID, "status", status)

	st := model.StudyStatus(status)
	if !st.IsValid() {
		return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("invalid status %q: must be one of new, learning, reviewing, mastered, suspended", status), "status", model.ErrInvalidInput)
	}

	var updated *model.Vocabulary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.vocabRepo.UpdateStatus(ctx, tx, vocabID, st, time.Now()); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", fmt.Sprintf("vocabulary id %d not found", vocabID), "", model.ErrNotFound)
			}
			logger.Error("Error updating vocabulary status in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ステータスの更新に失敗しました。", "", err)
		}

		reloaded, err := s.vocabRepo.FindByID(ctx, tx, vocabID)
		if err != nil {
			logger.Error("Error reloading vocabulary in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "更新後の語彙の取得に失敗しました。", "", err)
		}
		updated = reloaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Vocabulary status updated")
	return updated, nil
}

// DeleteVocabulary は物理削除です。FKカスケードで配下のカードも消える
func (s *vocabularyService) DeleteVocabulary(ctx context.Context, vocabID uint) error {
	logger := middleware.GetLogger(ctx).With("vocab_id", vocabID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.vocabRepo.Delete(ctx, tx, vocabID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", fmt.Sprintf("vocabulary id %d not found", vocabID), "", model.ErrNotFound)
			}
			logger.Error("Error deleting vocabulary in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "語彙の削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Vocabulary deleted")
	return nil
}
