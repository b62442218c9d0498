package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrAlreadyFavorited   = errors.New("question already favorited")
	ErrCategoryCycle      = errors.New("category parent would create a cycle")
	ErrParentMismatch     = errors.New("parent comment belongs to a different question")
)
