package model

type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
	QuestionJudge    QuestionType = "judge"
	QuestionFill     QuestionType = "fill"
	QuestionShort    QuestionType = "short"
	QuestionCoding   QuestionType = "coding"
)

type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "easy"
	DifficultyMedium QuestionDifficulty = "medium"
	DifficultyHard   QuestionDifficulty = "hard"
)

type QuestionStatus string

const (
	StatusDraft       QuestionStatus = "draft"
	StatusPublished   QuestionStatus = "published"
	StatusArchived    QuestionStatus = "archived"
	StatusUnderReview QuestionStatus = "under_review"
)

// QuestionOption 选择题的一个选项，key 如 "A"、"B"
type QuestionOption struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// swagger:model Question
type Question struct {
	UUIDBase
	Type        QuestionType       `gorm:"size:20;not null;index" json:"type"`
	Title       string             `gorm:"size:255;not null" json:"title"`
	Content     string             `gorm:"type:text;not null" json:"content"`
	Options     JSONValue          `json:"options,omitempty"`
	Answer      JSONValue          `gorm:"not null" json:"answer"`
	Explanation string             `gorm:"type:text" json:"explanation,omitempty"`
	Difficulty  QuestionDifficulty `gorm:"size:20;not null;index" json:"difficulty"`
	CategoryID  *string            `gorm:"index;type:varchar(36)" json:"categoryId"`
	Category    *Category          `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags        []Tag              `gorm:"many2many:question_tags" json:"tags"`
	CreatedBy   string             `gorm:"index;type:varchar(36);not null" json:"createdBy"`
	Creator     *User              `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	IsPublic    bool               `gorm:"default:true" json:"isPublic"`
	Status      QuestionStatus     `gorm:"size:20;default:'published'" json:"status"`

	// 冗余计数，必须与对应子表行数保持一致
	ViewCount     int     `gorm:"default:0" json:"viewCount"`
	LikeCount     int     `gorm:"default:0" json:"likeCount"`
	FavoriteCount int     `gorm:"default:0" json:"favoriteCount"`
	AnswerCount   int     `gorm:"default:0" json:"answerCount"`
	CorrectRate   float64 `gorm:"type:decimal(5,2);default:0" json:"correctRate"`
}

func (Question) TableName() string {
	return "questions"
}
