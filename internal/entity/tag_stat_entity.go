package entity

type TagStat struct {
	UserId int64
	Name   string
	Count  int
}
