package api

import "time"

// Post представляет пост в wire формате сервиса
type Post struct {
	CreateTime time.Time `json:"create_time"`
	ModifyTime time.Time `json:"modify_time"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	ID         int64     `json:"id"`
}

// Comment представляет комментарий в wire формате сервиса
type Comment struct {
	CreateTime time.Time `json:"create_time"`
	ModifyTime time.Time `json:"modify_time"`
	Content    string    `json:"content"`
	ID         int64     `json:"id"`
	BindingID  int64     `json:"binding_id"`
	IsReply    bool      `json:"is_reply"`
}

// PostList представляет ответ со списком постов
type PostList struct {
	Posts []Post `json:"posts"`
}

// CommentList представляет ответ со списком комментариев
type CommentList struct {
	Comments []Comment `json:"comments"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
