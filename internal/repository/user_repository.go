package repository

import (
	"question_bank_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "email = ?", email).Error
	return &user, err
}

// FindByEmailOrUsername 注册查重用
func (r *UserRepository) FindByEmailOrUsername(email, username string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "email = ? OR username = ?", email, username).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// UserFilter 管理端用户列表的筛选条件
type UserFilter struct {
	Role   string
	Search string
}

func (r *UserRepository) FindWithPagination(offset, limit int, filter UserFilter) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.DB.Model(&model.User{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	if filter.Search != "" {
		query = query.Where("username LIKE ? OR email LIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// AddContribution 贡献分累加
func (r *UserRepository) AddContribution(userID string, delta int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("contribution_score", gorm.Expr("contribution_score + ?", delta)).
		Error
}
