package entity

type User struct {
	Id             int64
	Username       string
	Email          string
	Password       string
	Nickname       *string
	AvatarUrl      *string
	ThemeId        int
	NavbarPosition string
	NavbarVisible  bool
}
