package apimodels

type Response struct {
	Success bool   `json:"success"`           //результат обработки
	Message string `json:"message,omitempty"` //сообщение для пользователя
}

func NewError(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

func NewResponse(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // Записей на странице
	Page  int `json:"page" query:"page"`   // Страница (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

type PaginationView struct {
	Current int   `json:"current"` // текущая страница
	Pages   int64 `json:"pages"`   // всего страниц, учитывая фильтр
	Total   int64 `json:"total"`   // всего записей, учитывая фильтр
}

func NewPaginationView(page, limit int, total int64) PaginationView {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return PaginationView{
		Current: page,
		Pages:   pages,
		Total:   total,
	}
}
