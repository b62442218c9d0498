package service

import (
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeAnswer(t *testing.T) {
	tests := []struct {
		name      string
		qType     model.QuestionType
		stored    string
		submitted string
		want      bool
	}{
		{"单选正确", model.QuestionSingle, `"A"`, `"A"`, true},
		{"单选错误", model.QuestionSingle, `"A"`, `"B"`, false},
		{"单选忽略首尾空白", model.QuestionSingle, `"A"`, `" A "`, true},
		{"多选顺序无关", model.QuestionMultiple, `["A","C"]`, `["C","A"]`, true},
		{"多选漏选", model.QuestionMultiple, `["A","C"]`, `["A"]`, false},
		{"多选多选了", model.QuestionMultiple, `["A","C"]`, `["A","B","C"]`, false},
		{"判断正确", model.QuestionJudge, `true`, `true`, true},
		{"判断错误", model.QuestionJudge, `true`, `false`, false},
		{"填空去空白", model.QuestionFill, `"42"`, `"  42  "`, true},
		{"编程题字符串比较", model.QuestionCoding, `"func main() {}"`, `"func main() {}"`, true},
		{"形状不符回退结构比较", model.QuestionSingle, `["A"]`, `["A"]`, true},
		{"结构比较键序无关", model.QuestionShort, `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"非法 JSON 判错", model.QuestionJudge, `true`, `not-json`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GradeAnswer(tt.qType, model.JSONValue(tt.stored), model.JSONValue(tt.submitted))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGradeAnswerStructuralFallback(t *testing.T) {
	// 对象形状的答案走结构相等，键序无关
	stored := model.JSONValue(`{"a":1,"b":[1,2]}`)
	submitted := model.JSONValue(`{"b":[1,2],"a":1}`)
	assert.True(t, GradeAnswer(model.QuestionSingle, stored, submitted))

	// 数组顺序敏感
	assert.False(t, GradeAnswer(model.QuestionSingle,
		model.JSONValue(`{"a":[1,2]}`), model.JSONValue(`{"a":[2,1]}`)))
}

func TestSubmitAnswer(t *testing.T) {
	db := setupTestDB(t)
	svc := newPracticeService(db)

	user := createTestUser(t, db, "alice@example.com", model.RoleUser)
	question := createTestQuestion(t, db, user.ID, model.QuestionSingle, `"A"`)

	// 第一次答对
	record, err := svc.SubmitAnswer(user.ID, SubmitAnswerRequest{
		QuestionID: question.ID,
		UserAnswer: model.JSONValue(`"A"`),
		TimeSpent:  30,
	})
	require.NoError(t, err)
	assert.True(t, record.IsCorrect)
	assert.Equal(t, 30, record.TimeSpent)

	// 第二次答错，timeSpent 缺省为 0
	record, err = svc.SubmitAnswer(user.ID, SubmitAnswerRequest{
		QuestionID: question.ID,
		UserAnswer: model.JSONValue(`"B"`),
	})
	require.NoError(t, err)
	assert.False(t, record.IsCorrect)
	assert.Equal(t, 0, record.TimeSpent)

	// 两条独立记录，answer_count 同步累加
	records, err := svc.GetRecords(user.ID)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	var q model.Question
	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	assert.Equal(t, 2, q.AnswerCount)
}

func TestSubmitAnswerQuestionNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newPracticeService(db)

	user := createTestUser(t, db, "alice@example.com", model.RoleUser)

	_, err := svc.SubmitAnswer(user.ID, SubmitAnswerRequest{
		QuestionID: model.GenerateUUID(),
		UserAnswer: model.JSONValue(`"A"`),
	})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestFavoriteLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := newPracticeService(db)

	user := createTestUser(t, db, "alice@example.com", model.RoleUser)
	question := createTestQuestion(t, db, user.ID, model.QuestionSingle, `"A"`)

	_, err := svc.AddFavorite(user.ID, question.ID)
	require.NoError(t, err)

	var q model.Question
	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	assert.Equal(t, 1, q.FavoriteCount)

	// 重复收藏报冲突
	_, err = svc.AddFavorite(user.ID, question.ID)
	assert.ErrorIs(t, err, util.ErrAlreadyFavorited)

	favorites, err := svc.GetFavorites(user.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	require.NoError(t, svc.RemoveFavorite(user.ID, question.ID))
	require.NoError(t, db.First(&q, "id = ?", question.ID).Error)
	assert.Equal(t, 0, q.FavoriteCount)

	// 再删报不存在
	assert.ErrorIs(t, svc.RemoveFavorite(user.ID, question.ID), util.ErrFavoriteNotFound)

	// 收藏不存在的题目
	_, err = svc.AddFavorite(user.ID, model.GenerateUUID())
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}
