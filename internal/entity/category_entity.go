package entity

type Category struct {
	Id   int64
	Name string
}
