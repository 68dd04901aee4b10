package repositories

import "errors"

// ErrNotFound - общий сентинел "записи нет". Репозитории переводят
// gorm.ErrRecordNotFound в него, чтобы вызывающий код не зависел от ORM.
var ErrNotFound = errors.New("record not found")
