package service

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"gorm.io/gorm"
)

type PracticeService struct {
	PracticeRepo *repository.PracticeRepository
	QuestionRepo *repository.QuestionRepository
}

func NewPracticeService(
	practiceRepo *repository.PracticeRepository,
	questionRepo *repository.QuestionRepository,
) *PracticeService {
	return &PracticeService{
		PracticeRepo: practiceRepo,
		QuestionRepo: questionRepo,
	}
}

// SubmitAnswerRequest 提交答案请求
type SubmitAnswerRequest struct {
	QuestionID string          `json:"questionId" binding:"required,uuid"`
	UserAnswer model.JSONValue `json:"userAnswer" binding:"required"`
	TimeSpent  int             `json:"timeSpent" binding:"omitempty,min=0"` // 秒，缺省为 0
}

// SubmitAnswer 判题并写入练习记录。记录只增不改，
// 题目的 correct_rate 不在这条路径上重算。
func (s *PracticeService) SubmitAnswer(userID string, req SubmitAnswerRequest) (*model.PracticeRecord, error) {
	question, err := s.QuestionRepo.FindByID(req.QuestionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	record := &model.PracticeRecord{
		UserID:     userID,
		QuestionID: req.QuestionID,
		UserAnswer: req.UserAnswer,
		IsCorrect:  GradeAnswer(question.Type, question.Answer, req.UserAnswer),
		TimeSpent:  req.TimeSpent,
	}

	if err := s.PracticeRepo.CreateRecord(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *PracticeService) GetRecords(userID string) ([]model.PracticeRecord, error) {
	return s.PracticeRepo.FindRecordsByUser(userID)
}

func (s *PracticeService) AddFavorite(userID, questionID string) (*model.Favorite, error) {
	exists, err := s.PracticeRepo.HasFavorited(userID, questionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyFavorited
	}

	ok, err := s.QuestionRepo.Exists(questionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrQuestionNotFound
	}

	favorite := &model.Favorite{UserID: userID, QuestionID: questionID}
	if err := s.PracticeRepo.CreateFavorite(favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *PracticeService) RemoveFavorite(userID, questionID string) error {
	err := s.PracticeRepo.DeleteFavorite(userID, questionID)
	if err == gorm.ErrRecordNotFound {
		return util.ErrFavoriteNotFound
	}
	return err
}

func (s *PracticeService) GetFavorites(userID string) ([]model.Favorite, error) {
	return s.PracticeRepo.FindFavoritesByUser(userID)
}

// GradeAnswer 按题型判定答案是否正确。
// 单选/填空/简答/编程题比较去除首尾空白后的字符串；
// 多选题按集合比较，不受选项顺序影响；判断题比较布尔值；
// 其余形状回退到结构相等（对象键序无关，数组顺序敏感）。
func GradeAnswer(qType model.QuestionType, stored, submitted model.JSONValue) bool {
	switch qType {
	case model.QuestionSingle, model.QuestionFill, model.QuestionShort, model.QuestionCoding:
		var want, got string
		if json.Unmarshal(stored, &want) == nil && json.Unmarshal(submitted, &got) == nil {
			return strings.TrimSpace(want) == strings.TrimSpace(got)
		}
	case model.QuestionMultiple:
		var want, got []string
		if json.Unmarshal(stored, &want) == nil && json.Unmarshal(submitted, &got) == nil {
			if len(want) != len(got) {
				return false
			}
			sort.Strings(want)
			sort.Strings(got)
			return reflect.DeepEqual(want, got)
		}
	case model.QuestionJudge:
		var want, got bool
		if json.Unmarshal(stored, &want) == nil && json.Unmarshal(submitted, &got) == nil {
			return want == got
		}
	}
	return structurallyEqual(stored, submitted)
}

func structurallyEqual(a, b model.JSONValue) bool {
	var av, bv interface{}
	if err := json.Unmarshal(a, &av); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bv); err != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}
