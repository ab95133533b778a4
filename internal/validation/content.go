package validation

import "fmt"

const (
	// MaxTitleLen максимальная длина заголовка поста
	MaxTitleLen = 200
	// MaxBodyLen максимальная длина тела поста
	MaxBodyLen = 100_000
	// MaxCommentLen максимальная длина комментария
	MaxCommentLen = 10_000
)

// ValidatePostTitle проверяет, что заголовок поста не пустой и не превышает лимит
func ValidatePostTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d bytes", MaxTitleLen)
	}

	return nil
}

// ValidatePostBody проверяет тело поста. Пустое тело допустимо (черновик).
func ValidatePostBody(body string) error {
	if len(body) > MaxBodyLen {
		return fmt.Errorf("body must not exceed %d bytes", MaxBodyLen)
	}

	return nil
}

// ValidateCommentContent проверяет текст комментария
func ValidateCommentContent(content string) error {
	if content == "" {
		return fmt.Errorf("comment content cannot be empty")
	}

	if len(content) > MaxCommentLen {
		return fmt.Errorf("comment content must not exceed %d bytes", MaxCommentLen)
	}

	return nil
}

// ValidateBindingID проверяет id сущности, к которой привязан комментарий.
// Привязка к placeholder id (<= 0) допустима: комментарий может ссылаться на
// ещё не синхронизированный пост, binding перепишется при remap.
func ValidateBindingID(bindingID int64) error {
	if bindingID == 0 {
		return fmt.Errorf("binding id cannot be zero")
	}

	return nil
}
