package entity

type Profile struct {
	BaseNoDelete
	Email     string  `db:"email"`
	Education *string `db:"education"`
	Location  *string `db:"location"`
	Phone     *string `db:"phone"`
	LinkedIn  *string `db:"linkedin"`
}
