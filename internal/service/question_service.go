package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"
	"question_bank_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	TagRepo      *repository.TagRepository
	CategoryRepo *repository.CategoryRepository
	UserRepo     *repository.UserRepository
	Redis        *redis.Client
}

func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	tagRepo *repository.TagRepository,
	categoryRepo *repository.CategoryRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		TagRepo:      tagRepo,
		CategoryRepo: categoryRepo,
		UserRepo:     userRepo,
		Redis:        rdb,
	}
}

// CreateQuestionRequest 创建题目请求
type CreateQuestionRequest struct {
	Type        model.QuestionType       `json:"type" binding:"required,oneof=single multiple judge fill short coding"`
	Title       string                   `json:"title" binding:"required,max=255"`
	Content     string                   `json:"content" binding:"required"`
	Options     []model.QuestionOption   `json:"options"`
	Answer      model.JSONValue          `json:"answer" binding:"required"`
	Explanation string                   `json:"explanation"`
	Difficulty  model.QuestionDifficulty `json:"difficulty" binding:"required,oneof=easy medium hard"`
	CategoryID  *string                  `json:"categoryId" binding:"omitempty,uuid"`
	TagIDs      []string                 `json:"tagIds" binding:"omitempty,dive,uuid"`
	IsPublic    *bool                    `json:"isPublic" binding:"required"`
}

// UpdateQuestionRequest 更新题目请求，nil 字段表示不修改
type UpdateQuestionRequest struct {
	Title       *string                   `json:"title" binding:"omitempty,max=255"`
	Content     *string                   `json:"content"`
	Options     []model.QuestionOption    `json:"options"`
	Answer      model.JSONValue           `json:"answer"`
	Explanation *string                   `json:"explanation"`
	Difficulty  *model.QuestionDifficulty `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	CategoryID  *string                   `json:"categoryId" binding:"omitempty,uuid"`
	TagIDs      *[]string                 `json:"tagIds" binding:"omitempty,dive,uuid"`
	IsPublic    *bool                     `json:"isPublic"`
	Status      *model.QuestionStatus     `json:"status" binding:"omitempty,oneof=draft published archived under_review"`
}

// QuestionQuery 列表查询参数，省略的字段表示不做约束
type QuestionQuery struct {
	Page       int      `form:"page,default=1" binding:"omitempty,min=1"`
	Limit      int      `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Type       string   `form:"type" binding:"omitempty,oneof=single multiple judge fill short coding"`
	Difficulty string   `form:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	CategoryID string   `form:"categoryId" binding:"omitempty,uuid"`
	TagIDs     []string `form:"tagIds" binding:"omitempty,dive,uuid"`
	Search     string   `form:"search"`
	IsPublic   *bool    `form:"isPublic"`
	CreatedBy  string   `form:"createdBy" binding:"omitempty,uuid"`
	SortOrder  string   `form:"sortOrder" binding:"omitempty,oneof=ASC DESC"`
}

func (s *QuestionService) Create(userID string, req CreateQuestionRequest) (*model.Question, error) {
	if req.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*req.CategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrCategoryNotFound
			}
			return nil, err
		}
	}

	tags, err := s.resolveTags(req.TagIDs)
	if err != nil {
		return nil, err
	}

	question := &model.Question{
		Type:        req.Type,
		Title:       req.Title,
		Content:     req.Content,
		Options:     marshalOptions(req.Options),
		Answer:      req.Answer,
		Explanation: req.Explanation,
		Difficulty:  req.Difficulty,
		CategoryID:  req.CategoryID,
		Tags:        tags,
		CreatedBy:   userID,
		IsPublic:    *req.IsPublic,
		Status:      model.StatusPublished,
	}

	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}

	// 出题奖励贡献分，失败只记日志
	if err := s.UserRepo.AddContribution(userID, 1); err != nil {
		logger.Log.Warn("failed to add contribution score", zap.String("user", userID), zap.Error(err))
	}

	return s.GetByID(question.ID)
}

func (s *QuestionService) GetByID(id string) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrQuestionNotFound
	}
	return question, err
}

func (s *QuestionService) FindAll(query QuestionQuery) ([]model.Question, util.PageMeta, error) {
	page := query.Page
	if page < 1 {
		page = util.DefaultPage
	}
	limit := query.Limit
	if limit < 1 || limit > util.MaxLimit {
		limit = util.DefaultLimit
	}

	filter := repository.QuestionFilter{
		Type:       model.QuestionType(query.Type),
		Difficulty: model.QuestionDifficulty(query.Difficulty),
		CategoryID: query.CategoryID,
		TagIDs:     query.TagIDs,
		Search:     query.Search,
		IsPublic:   query.IsPublic,
		CreatedBy:  query.CreatedBy,
		SortOrder:  query.SortOrder,
	}

	questions, total, err := s.QuestionRepo.FindWithPagination((page-1)*limit, limit, filter)
	if err != nil {
		return nil, util.PageMeta{}, err
	}

	return questions, util.NewPageMeta(total, page, limit), nil
}

func (s *QuestionService) Update(id, userID string, userRole model.UserRole, req UpdateQuestionRequest) (*model.Question, error) {
	question, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	// 权限检查先于任何写入
	if question.CreatedBy != userID && userRole != model.RoleAdmin {
		return nil, util.ErrPermissionDenied
	}

	if req.Title != nil {
		question.Title = *req.Title
	}
	if req.Content != nil {
		question.Content = *req.Content
	}
	if req.Options != nil {
		question.Options = marshalOptions(req.Options)
	}
	if req.Answer != nil {
		question.Answer = req.Answer
	}
	if req.Explanation != nil {
		question.Explanation = *req.Explanation
	}
	if req.Difficulty != nil {
		question.Difficulty = *req.Difficulty
	}
	if req.CategoryID != nil {
		if _, err := s.CategoryRepo.FindByID(*req.CategoryID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrCategoryNotFound
			}
			return nil, err
		}
		question.CategoryID = req.CategoryID
	}
	if req.IsPublic != nil {
		question.IsPublic = *req.IsPublic
	}
	if req.Status != nil {
		question.Status = *req.Status
	}

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}

	if req.TagIDs != nil {
		tags, err := s.resolveTags(*req.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.QuestionRepo.ReplaceTags(question, tags); err != nil {
			return nil, err
		}
	}

	return s.GetByID(id)
}

func (s *QuestionService) Delete(id, userID string, userRole model.UserRole) error {
	question, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if question.CreatedBy != userID && userRole != model.RoleAdmin {
		return util.ErrPermissionDenied
	}

	return s.QuestionRepo.Delete(id)
}

// IncrementView 浏览量 +1，同一用户（或游客 IP）10 分钟内只记一次
func (s *QuestionService) IncrementView(questionID, userID, ip string) error {
	if _, err := s.GetByID(questionID); err != nil {
		return err
	}

	var key string
	if userID != "" {
		key = fmt.Sprintf("question_v:%s:u:%s", questionID, userID)
	} else {
		key = fmt.Sprintf("question_v:%s:ip:%s", questionID, ip)
	}

	isNewVisit := true
	if s.Redis != nil {
		isNewVisit, _ = s.Redis.SetNX(context.Background(), key, "1", 10*time.Minute).Result()
	}

	if isNewVisit {
		return s.QuestionRepo.IncrementViewCount(questionID)
	}
	return nil
}

func marshalOptions(options []model.QuestionOption) model.JSONValue {
	if len(options) == 0 {
		return nil
	}
	data, err := json.Marshal(options)
	if err != nil {
		return nil
	}
	return model.JSONValue(data)
}

func (s *QuestionService) resolveTags(tagIDs []string) ([]model.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	tags, err := s.TagRepo.FindByIDs(tagIDs)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, util.ErrTagNotFound
	}
	return tags, nil
}
